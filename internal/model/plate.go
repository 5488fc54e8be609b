package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUnknownCategory = errors.New("unknown customer category")

type CustomerCategory string

const (
	CustomerCategoryNormal        CustomerCategory = "NORMAL"
	CustomerCategoryTaxi          CustomerCategory = "TAXI"
	CustomerCategoryAdvertisement CustomerCategory = "ADVERTISEMENT"
	CustomerCategoryDiplomat      CustomerCategory = "DIPLOMAT"
)

func (c CustomerCategory) IsValid() bool {
	switch c {
	case CustomerCategoryNormal, CustomerCategoryTaxi, CustomerCategoryAdvertisement, CustomerCategoryDiplomat:
		return true
	}
	return false
}

// ParseCustomerCategory accepts category names in any letter case.
func ParseCustomerCategory(raw string) (CustomerCategory, error) {
	c := CustomerCategory(strings.ToUpper(strings.TrimSpace(raw)))
	if !c.IsValid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

type RegistrationOutcome string

const (
	RegistrationOutcomeSuccess       RegistrationOutcome = "SUCCESS"
	RegistrationOutcomeInvalidFormat RegistrationOutcome = "INVALID_FORMAT"
	RegistrationOutcomeNotAvailable  RegistrationOutcome = "NOT_AVAILABLE"
)

// PlateRecord is the input of a single validation request.
type PlateRecord struct {
	Plate    string
	Category CustomerCategory
}

type RegisteredPlate struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	PlateNumber string    `gorm:"type:varchar(16);uniqueIndex;not null" json:"plate_number"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RegisteredPlate) TableName() string {
	return "registered_plates"
}

func (p *RegisteredPlate) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
