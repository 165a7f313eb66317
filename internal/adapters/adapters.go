package adapters

import (
	"context"
	"fintrack/internal/domain"
)

type RateClient interface {
	FetchRates(ctx context.Context) (domain.RateTable, error)
}

type SettingsRepository interface {
	Get(ctx context.Context, userID string) (domain.UserSettings, error)
	Save(ctx context.Context, userID string, settings domain.UserSettings) error
}

type SettingsCache interface {
	Get(userID string) (domain.UserSettings, bool)
	Set(userID string, settings domain.UserSettings)
	Del(userID string)
}
