package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/telemetry"
)

// ConversionConfig describes the conversion reported for a booking.
type ConversionConfig struct {
	ActionName string
	Value      float64
	Currency   string
	Timeout    time.Duration
}

// ConversionUploader reports bookings to the ad platform in the
// background. Failures are logged and counted, never returned.
type ConversionUploader struct {
	platform port.AdPlatform
	cfg      ConversionConfig
	logger   *slog.Logger
	metrics  *telemetry.Metrics

	group   singleflight.Group
	mu      sync.Mutex
	actions map[string]string
	wg      sync.WaitGroup
}

func NewConversionUploader(platform port.AdPlatform, cfg ConversionConfig, logger *slog.Logger, m *telemetry.Metrics) *ConversionUploader {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	return &ConversionUploader{
		platform: platform,
		cfg:      cfg,
		logger:   logger,
		metrics:  m,
		actions:  make(map[string]string),
	}
}

// Upload starts uploading a conversion for the click and returns at once.
func (u *ConversionUploader) Upload(clickID string, at time.Time) {
	if clickID == "" {
		return
	}
	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), u.cfg.Timeout)
		defer cancel()

		log := u.logger.With(slog.String("gclid", clickID))
		if !u.platform.IsConfigured() {
			u.metrics.Conversion("skipped")
			log.Info("conversion upload skipped", slog.Any("error", &domain.ConfigurationError{
				Component: "ad platform",
				Missing:   u.platform.MissingSettings(),
			}))
			return
		}
		if err := u.upload(ctx, clickID, at); err != nil {
			u.metrics.Conversion("failed")
			log.Error("conversion upload failed", slog.Any("error", err))
			return
		}
		u.metrics.Conversion("uploaded")
		log.Info("conversion uploaded")
	}()
}

func (u *ConversionUploader) upload(ctx context.Context, clickID string, at time.Time) error {
	action, err := u.action(ctx, u.cfg.ActionName)
	if err != nil {
		return fmt.Errorf("conversion action %q: %w", u.cfg.ActionName, err)
	}
	return u.platform.UploadClickConversion(ctx, port.ClickConversion{
		ConversionAction: action,
		GCLID:            clickID,
		At:               at,
		Value:            u.cfg.Value,
		Currency:         u.cfg.Currency,
	})
}

// action resolves the conversion action once per name. Concurrent first
// lookups share a single platform call.
func (u *ConversionUploader) action(ctx context.Context, name string) (string, error) {
	u.mu.Lock()
	id, ok := u.actions[name]
	u.mu.Unlock()
	if ok {
		return id, nil
	}

	v, err, _ := u.group.Do(name, func() (any, error) {
		u.mu.Lock()
		id, ok := u.actions[name]
		u.mu.Unlock()
		if ok {
			return id, nil
		}
		id, err := u.platform.FindOrCreateConversionAction(ctx, name)
		if err != nil {
			return "", err
		}
		u.mu.Lock()
		u.actions[name] = id
		u.mu.Unlock()
		return id, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Wait blocks until pending uploads finish or ctx is done.
func (u *ConversionUploader) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		u.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
