package service

import (
	"context"
	"errors"
	"time"

	"plate-registry/internal/metrics"
	"plate-registry/internal/model"
	"plate-registry/internal/repository"
	"plate-registry/internal/validator"
)

var ErrRepositoryRequired = errors.New("plate repository is required")

type RegistrationService struct {
	repo    repository.PlateRepository
	metrics *metrics.Metrics
}

type Option func(*RegistrationService)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *RegistrationService) {
		s.metrics = m
	}
}

func NewRegistrationService(repo repository.PlateRepository, opts ...Option) (*RegistrationService, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	s := &RegistrationService{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Register validates plate for the category and stores it when it is free.
// Rejections are reported as outcomes; only repository faults are errors and
// they are returned unchanged.
func (s *RegistrationService) Register(ctx context.Context, plate string, category model.CustomerCategory) (model.RegistrationOutcome, error) {
	start := time.Now()
	outcome, err := s.register(ctx, plate, category)
	if s.metrics != nil {
		s.metrics.ObserveRegistration(start)
		if err != nil {
			s.metrics.IncrementError(category)
		} else {
			s.metrics.IncrementOutcome(category, outcome)
		}
	}
	return outcome, err
}

func (s *RegistrationService) register(ctx context.Context, plate string, category model.CustomerCategory) (model.RegistrationOutcome, error) {
	if !validator.Validate(plate, category) {
		return model.RegistrationOutcomeInvalidFormat, nil
	}

	available, err := s.repo.IsAvailable(ctx, plate)
	if err != nil {
		return "", err
	}
	if !available {
		return model.RegistrationOutcomeNotAvailable, nil
	}

	if err := s.repo.Save(ctx, plate); err != nil {
		return "", err
	}
	return model.RegistrationOutcomeSuccess, nil
}

func (s *RegistrationService) CountRegistered(ctx context.Context) (int64, error) {
	return s.repo.CountRegistered(ctx)
}
