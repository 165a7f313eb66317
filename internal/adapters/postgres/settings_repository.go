package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fintrack/internal/domain"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository struct {
	pool *pgxpool.Pool
}

func (r *SettingsRepository) Get(ctx context.Context, userID string) (domain.UserSettings, error) {
	const q = `select settings from user_settings where user_id = $1;`

	var raw []byte
	if err := r.pool.QueryRow(ctx, q, userID).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserSettings{}, domain.ErrSettingsNotFound
		}
		return domain.UserSettings{}, fmt.Errorf("failed to select settings for user %q: %w", userID, err)
	}

	// unmarshal over defaults so columns added after the row was written keep their default
	settings := domain.DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		return domain.UserSettings{}, fmt.Errorf("failed to decode settings for user %q: %w", userID, err)
	}
	return settings, nil
}

func (r *SettingsRepository) Save(ctx context.Context, userID string, settings domain.UserSettings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	const q = `
		insert into user_settings(user_id, settings, updated_at)
		values ($1, $2::jsonb, now())
		on conflict (user_id) do update
		set settings = excluded.settings, updated_at = now();
	`
	if _, err = r.pool.Exec(ctx, q, userID, string(payload)); err != nil {
		return fmt.Errorf("failed to save settings for user %q: %w", userID, err)
	}
	return nil
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}
