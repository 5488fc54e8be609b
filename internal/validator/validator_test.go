package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plate-registry/internal/model"
)

func TestValidLetters(t *testing.T) {
	assert.Equal(t, "ABCDEFGHJKLMNOPRSTUWXYZ", ValidLetters())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		plate    string
		category model.CustomerCategory
		want     bool
	}{
		{"normal digits", "ABC 123", model.CustomerCategoryNormal, true},
		{"normal trailing letter", "ABC 12B", model.CustomerCategoryNormal, true},
		{"normal letter in digit slot", "ABC X23", model.CustomerCategoryNormal, false},
		{"swedish letter excluded", "ÅBC 123", model.CustomerCategoryNormal, false},
		{"Q excluded", "QBC 123", model.CustomerCategoryNormal, false},
		{"I excluded", "IBC 123", model.CustomerCategoryNormal, false},
		{"V excluded as last char", "ABC 12V", model.CustomerCategoryNormal, false},
		{"U allowed", "UUU 12U", model.CustomerCategoryNormal, true},
		{"digit in letter slot", "1BC 123", model.CustomerCategoryNormal, false},
		{"double space", "ABC  123", model.CustomerCategoryNormal, false},
		{"lowercase", "abc 123", model.CustomerCategoryNormal, false},
		{"leading space", " ABC 123", model.CustomerCategoryNormal, false},
		{"trailing space", "ABC 123 ", model.CustomerCategoryNormal, false},
		{"too long", "ABC 1234", model.CustomerCategoryNormal, false},
		{"too short", "ABC 12", model.CustomerCategoryNormal, false},
		{"empty", "", model.CustomerCategoryNormal, false},

		{"advertisement prefix for normal", "MLB 123", model.CustomerCategoryNormal, false},
		{"advertisement prefix for taxi", "MLB 456", model.CustomerCategoryTaxi, false},
		{"advertisement prefix for advertisement", "MLB 123", model.CustomerCategoryAdvertisement, true},
		{"advertisement plain plate", "ABC 12B", model.CustomerCategoryAdvertisement, true},

		{"taxi suffix for normal", "ABC 12T", model.CustomerCategoryNormal, false},
		{"taxi suffix for advertisement", "CCC 77T", model.CustomerCategoryAdvertisement, false},
		{"taxi suffix for taxi", "ABC 12T", model.CustomerCategoryTaxi, true},
		{"taxi plain plate", "ABC 123", model.CustomerCategoryTaxi, true},
		{"taxi bad format", "ABC  123", model.CustomerCategoryTaxi, false},
		{"both reservations for taxi", "MLB 12T", model.CustomerCategoryTaxi, false},
		{"both reservations for advertisement", "MLB 12T", model.CustomerCategoryAdvertisement, false},

		{"diplomat", "AA 111 A", model.CustomerCategoryDiplomat, true},
		{"diplomat other", "CD 777 X", model.CustomerCategoryDiplomat, true},
		{"diplomat may use Q", "QQ 123 V", model.CustomerCategoryDiplomat, true},
		{"diplomat skips taxi reservation", "AB 123 T", model.CustomerCategoryDiplomat, true},
		{"diplomat skips advertisement reservation", "ML 123 B", model.CustomerCategoryDiplomat, true},
		{"normal plate for diplomat", "ABC 123", model.CustomerCategoryDiplomat, false},
		{"normal plate with letter for diplomat", "ABC 12B", model.CustomerCategoryDiplomat, false},
		{"diplomat digit in country code", "A8 111 A", model.CustomerCategoryDiplomat, false},
		{"diplomat letter in serial", "CD A77 X", model.CustomerCategoryDiplomat, false},
		{"diplomat plate for normal", "AA 111 A", model.CustomerCategoryNormal, false},

		{"unknown category", "ABC 123", model.CustomerCategory("PRIVATE"), false},
		{"empty category", "ABC 123", model.CustomerCategory(""), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Validate(tc.plate, tc.category))
		})
	}
}

func TestValidateMatchesDefinition(t *testing.T) {
	plates := []string{"ABC 123", "ABC 12T", "MLB 123", "MLB 12T", "ABC  123", "AA 111 A", "XYZ 99Z", "MLB 99T"}
	categories := []model.CustomerCategory{
		model.CustomerCategoryNormal,
		model.CustomerCategoryTaxi,
		model.CustomerCategoryAdvertisement,
	}

	for _, plate := range plates {
		for _, category := range categories {
			want := normalPlate.MatchString(plate) &&
				(category == model.CustomerCategoryTaxi || plate[len(plate)-1] != 'T') &&
				(category == model.CustomerCategoryAdvertisement || len(plate) < 3 || plate[:3] != "MLB")
			assert.Equal(t, want, Validate(plate, category), "plate %q category %s", plate, category)
		}
	}
}

func TestViolations(t *testing.T) {
	t.Run("valid plate has none", func(t *testing.T) {
		assert.Empty(t, Violations("ABC 123", model.CustomerCategoryNormal))
		assert.Empty(t, Violations("AA 111 A", model.CustomerCategoryDiplomat))
	})

	t.Run("reports every failed rule in order", func(t *testing.T) {
		got := Violations("MLB 12T", model.CustomerCategoryNormal)
		require.Len(t, got, 2)
		assert.Equal(t, []string{RuleReservedForTaxi, RuleReservedForAdvertisement}, got)
	})

	t.Run("format failure", func(t *testing.T) {
		assert.Equal(t, []string{RuleNormalFormat}, Violations("ABC  123", model.CustomerCategoryTaxi))
	})

	t.Run("diplomat format", func(t *testing.T) {
		assert.Equal(t, []string{RuleDiplomatFormat}, Violations("ABC 123", model.CustomerCategoryDiplomat))
	})

	t.Run("unknown category", func(t *testing.T) {
		assert.Equal(t, []string{RuleUnknownCategory}, Violations("ABC 123", model.CustomerCategory("BUS")))
	})
}
