package settings

import (
	"context"
	"errors"
	"fintrack/internal/adapters"
	"fintrack/internal/domain"
	"fintrack/internal/platform/validation"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Service struct {
	repo     adapters.SettingsRepository
	cache    adapters.SettingsCache
	validate *validator.Validate
}

// Get returns the user's settings, or the defaults when nothing was stored yet.
func (s *Service) Get(ctx context.Context, userID string) (domain.UserSettings, error) {
	if cached, ok := s.cache.Get(userID); ok {
		return cached, nil
	}

	stored, err := s.repo.Get(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrSettingsNotFound):
		return domain.DefaultSettings(), nil
	case err != nil:
		return domain.UserSettings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	s.cache.Set(userID, stored)
	return stored, nil
}

// Update applies patch on top of the current settings. Every patched field must
// belong to its enumeration; the whole update is rejected otherwise.
func (s *Service) Update(ctx context.Context, userID string, patch domain.SettingsPatch) (domain.UserSettings, error) {
	if err := s.check(patch); err != nil {
		return domain.UserSettings{}, err
	}

	current, err := s.Get(ctx, userID)
	if err != nil {
		return domain.UserSettings{}, err
	}

	merged := Apply(current, patch)
	if err := s.check(merged); err != nil {
		return domain.UserSettings{}, err
	}

	if err := s.repo.Save(ctx, userID, merged); err != nil {
		return domain.UserSettings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	s.cache.Del(userID)

	logrus.WithField("user_id", userID).Debug("Settings updated")
	return merged, nil
}

func (s *Service) check(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := validation.Fields(err)
	if len(fields) == 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidSettings, err)
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidSettings, strings.Join(fields, ", "))
}

// Apply copies every non-nil patch field onto base.
func Apply(base domain.UserSettings, p domain.SettingsPatch) domain.UserSettings {
	set(&base.FirstName, p.FirstName)
	set(&base.LastName, p.LastName)
	set(&base.Email, p.Email)
	set(&base.Currency, p.Currency)
	set(&base.Timezone, p.Timezone)
	set(&base.Theme, p.Theme)
	set(&base.DefaultView, p.DefaultView)
	set(&base.EmailNotifications, p.EmailNotifications)
	set(&base.PushNotifications, p.PushNotifications)
	set(&base.BudgetAlerts, p.BudgetAlerts)
	set(&base.GoalReminders, p.GoalReminders)
	set(&base.WeeklyReports, p.WeeklyReports)
	set(&base.DataSharing, p.DataSharing)
	set(&base.AnalyticsTracking, p.AnalyticsTracking)
	set(&base.MarketingEmails, p.MarketingEmails)
	set(&base.CompactView, p.CompactView)
	set(&base.ShowBalances, p.ShowBalances)
	return base
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func NewService(repo adapters.SettingsRepository, cache adapters.SettingsCache) *Service {
	return &Service{repo: repo, cache: cache, validate: validation.New()}
}
