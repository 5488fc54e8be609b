//go:build integration

package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"plate-registry/internal/model"
	"plate-registry/internal/repository"
)

type GormPlateRepositorySuite struct {
	suite.Suite
	db   *gorm.DB
	repo *repository.GormPlateRepository
}

func TestGormPlateRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if os.Getenv("PLATE_REGISTRY_TEST_DSN") == "" {
		t.Skip("PLATE_REGISTRY_TEST_DSN not set")
	}
	suite.Run(t, new(GormPlateRepositorySuite))
}

func (s *GormPlateRepositorySuite) SetupSuite() {
	db, err := gorm.Open(postgres.Open(os.Getenv("PLATE_REGISTRY_TEST_DSN")), &gorm.Config{TranslateError: true})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(&model.RegisteredPlate{}))
	s.db = db
	s.repo = repository.NewGormPlateRepository(db)
}

func (s *GormPlateRepositorySuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE registered_plates").Error)
}

func (s *GormPlateRepositorySuite) TestSaveMakesPlateUnavailable() {
	ctx := context.Background()

	available, err := s.repo.IsAvailable(ctx, "ABC 123")
	s.Require().NoError(err)
	s.True(available)

	s.Require().NoError(s.repo.Save(ctx, "ABC 123"))

	available, err = s.repo.IsAvailable(ctx, "ABC 123")
	s.Require().NoError(err)
	s.False(available)

	count, err := s.repo.CountRegistered(ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func (s *GormPlateRepositorySuite) TestDuplicateSaveReturnsPlateExists() {
	ctx := context.Background()

	s.Require().NoError(s.repo.Save(ctx, "ABC 123"))
	s.ErrorIs(s.repo.Save(ctx, "ABC 123"), repository.ErrPlateExists)
}
