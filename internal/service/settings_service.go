package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	app_errors "agribrain/backend/internal/errors"
)

const keyDefaultCity = "default_city"

// Settings holds the dashboard settings stored in the settings table.
type Settings struct {
	DefaultCity string `json:"default_city" validate:"required,max=100" example:"London"`
}

type SettingsService struct {
	db *sql.DB
}

func NewSettingsService(db *sql.DB) *SettingsService {
	return &SettingsService{db: db}
}

// InitAndGet loads the settings and fills in missing values from the
// configured defaults, saving them so later reads are stable.
func (s *SettingsService) InitAndGet(ctx context.Context, defaultCity string) (*Settings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings.DefaultCity != "" {
		slog.Debug("Found existing settings in database.")
		return settings, nil
	}

	slog.Info("No default city stored, using configured default.", "city", defaultCity)
	settings.DefaultCity = defaultCity
	if err := s.save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save initial settings: %w", err)
	}
	return settings, nil
}

// Get reads the current settings. Missing keys are left empty.
func (s *SettingsService) Get(ctx context.Context) (*Settings, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Warn("Failed to close settings rows", "error", err)
		}
	}()

	settings := &Settings{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		switch key {
		case keyDefaultCity:
			settings.DefaultCity = value
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return settings, nil
}

// Save validates and stores the settings.
func (s *SettingsService) Save(ctx context.Context, settings *Settings) error {
	settings.DefaultCity = strings.TrimSpace(settings.DefaultCity)
	if settings.DefaultCity == "" {
		return fmt.Errorf("%w: default city cannot be empty", app_errors.ErrValidation)
	}
	return s.save(ctx, settings)
}

// DefaultCity returns the stored default city, or fallback when none is
// stored or the database cannot be read.
func (s *SettingsService) DefaultCity(ctx context.Context, fallback string) string {
	settings, err := s.Get(ctx)
	if err != nil {
		slog.Warn("Could not read default city, using fallback", "error", err, "fallback", fallback)
		return fallback
	}
	if settings.DefaultCity == "" {
		return fallback
	}
	return settings.DefaultCity
}

func (s *SettingsService) save(ctx context.Context, settings *Settings) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				slog.Error("Failed to rollback settings transaction", "error", rbErr)
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	if err != nil {
		return fmt.Errorf("failed to prepare settings statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	if _, err = stmt.ExecContext(ctx, keyDefaultCity, settings.DefaultCity); err != nil {
		return fmt.Errorf("failed to save %s: %w", keyDefaultCity, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	return nil
}
