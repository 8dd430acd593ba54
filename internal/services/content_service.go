package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"portfolio/internal/models"
	"portfolio/internal/source"
	"portfolio/internal/source/static"
)

// ContentService decides, per section, whether backend data or the static
// fallback is used. No method returns an error for data availability; only
// a project that exists nowhere is reported, as ErrProjectNotFound.
type ContentService struct {
	repo     source.Repository
	fallback *static.Dataset
	timeout  time.Duration
	logger   zerolog.Logger
}

func NewContentService(repo source.Repository, fallback *static.Dataset, timeout time.Duration, logger zerolog.Logger) *ContentService {
	return &ContentService{
		repo:     repo,
		fallback: fallback,
		timeout:  timeout,
		logger:   logger.With().Str("backend", repo.Name()).Logger(),
	}
}

// Backend names the configured backend.
func (s *ContentService) Backend() string {
	return s.repo.Name()
}

func (s *ContentService) SiteSettings(ctx context.Context) models.SiteSettings {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res := s.repo.SiteSettings(ctx)
	var settings *models.SiteSettings
	switch res.Status {
	case source.StatusOK:
		settings = res.Value
	case source.StatusNotFound:
		s.logger.Info().Str("singleton", string(source.SingletonSiteSettings)).Msg("no record, using defaults")
	case source.StatusUnavailable:
		s.logUnavailable(res.Err, "singleton", string(source.SingletonSiteSettings))
	}
	return resolveSiteSettings(settings, s.fallback.Site)
}

// Home resolves every home section. All sections of the result are non-nil.
func (s *ContentService) Home(ctx context.Context) models.HomeContent {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res := s.repo.Home(ctx)
	var home *models.HomeContent
	switch res.Status {
	case source.StatusOK:
		home = res.Value
	case source.StatusNotFound:
		s.logger.Info().Str("singleton", string(source.SingletonHome)).Msg("no record, using defaults")
	case source.StatusUnavailable:
		s.logUnavailable(res.Err, "singleton", string(source.SingletonHome))
	}
	return resolveHome(home, s.fallback.Home)
}

func (s *ContentService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *ContentService) logUnavailable(err error, kind, name string) {
	ev := s.logger.Warn()
	if errors.Is(err, source.ErrNotConfigured) {
		ev = s.logger.Debug()
	}
	ev.Err(err).Str(kind, name).Msg("backend unavailable, using static fallback")
}
