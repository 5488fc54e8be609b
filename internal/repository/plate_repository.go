package repository

//go:generate mockgen -source=plate_repository.go -destination=mocks/plate_repository_mock.go -package=mocks PlateRepository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"plate-registry/internal/model"
)

var (
	// ErrRepository marks a storage fault the caller cannot recover from.
	ErrRepository = errors.New("repository failure")
	// ErrPlateExists is returned by Save when the plate was registered concurrently.
	ErrPlateExists = errors.New("plate already registered")
)

type PlateRepository interface {
	IsAvailable(ctx context.Context, plate string) (bool, error)
	Save(ctx context.Context, plate string) error
	CountRegistered(ctx context.Context) (int64, error)
}

type GormPlateRepository struct {
	db *gorm.DB
}

func NewGormPlateRepository(db *gorm.DB) *GormPlateRepository {
	return &GormPlateRepository{db: db}
}

func (r *GormPlateRepository) IsAvailable(ctx context.Context, plate string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.RegisteredPlate{}).
		Where("plate_number = ?", plate).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check plate availability: %w", err)
	}
	return count == 0, nil
}

func (r *GormPlateRepository) Save(ctx context.Context, plate string) error {
	record := &model.RegisteredPlate{PlateNumber: plate}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrPlateExists
		}
		return fmt.Errorf("save plate: %w", err)
	}
	return nil
}

func (r *GormPlateRepository) CountRegistered(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.RegisteredPlate{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count registered plates: %w", err)
	}
	return count, nil
}
