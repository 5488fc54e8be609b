// Package validator checks plate text against the format and reservation
// rules of each customer category.
package validator

import (
	"regexp"
	"strings"

	"plate-registry/internal/model"
)

const (
	RuleDiplomatFormat           = "diplomat-format"
	RuleNormalFormat             = "normal-format"
	RuleReservedForTaxi          = "reserved-for-taxi"
	RuleReservedForAdvertisement = "reserved-for-advertisement"
	RuleUnknownCategory          = "unknown-category"
)

const (
	allLetters      = "ABCDEFGHIJKLMNOPQRSTUVWXYZÅÄÖ"
	excludedLetters = "IQVÅÄÖ"

	taxiSuffix          = "T"
	advertisementPrefix = "MLB"
)

var (
	diplomatPlate = regexp.MustCompile(`^[A-Z]{2} [0-9]{3} [A-Z]$`)
	normalPlate   = regexp.MustCompile(normalPlatePattern())
)

// Rule is a single predicate over a plate record. Check must be pure.
type Rule struct {
	Name  string
	Check func(model.PlateRecord) bool
}

// normalRules apply to every category except diplomats. Order is only the
// order violations are reported in.
var normalRules = []Rule{
	{
		Name: RuleNormalFormat,
		Check: func(r model.PlateRecord) bool {
			return normalPlate.MatchString(r.Plate)
		},
	},
	{
		Name: RuleReservedForTaxi,
		Check: func(r model.PlateRecord) bool {
			return r.Category == model.CustomerCategoryTaxi || !strings.HasSuffix(r.Plate, taxiSuffix)
		},
	},
	{
		Name: RuleReservedForAdvertisement,
		Check: func(r model.PlateRecord) bool {
			return r.Category == model.CustomerCategoryAdvertisement || !strings.HasPrefix(r.Plate, advertisementPrefix)
		},
	},
}

// Validate reports whether plate is acceptable for the category.
func Validate(plate string, category model.CustomerCategory) bool {
	record := model.PlateRecord{Plate: plate, Category: category}

	switch category {
	case model.CustomerCategoryDiplomat:
		return diplomatPlate.MatchString(plate)
	case model.CustomerCategoryNormal, model.CustomerCategoryTaxi, model.CustomerCategoryAdvertisement:
		for _, rule := range normalRules {
			if !rule.Check(record) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Violations returns the names of every rule the plate breaks, in evaluation
// order. An empty result means the plate is valid.
func Violations(plate string, category model.CustomerCategory) []string {
	record := model.PlateRecord{Plate: plate, Category: category}

	switch category {
	case model.CustomerCategoryDiplomat:
		if diplomatPlate.MatchString(plate) {
			return nil
		}
		return []string{RuleDiplomatFormat}
	case model.CustomerCategoryNormal, model.CustomerCategoryTaxi, model.CustomerCategoryAdvertisement:
		var failed []string
		for _, rule := range normalRules {
			if !rule.Check(record) {
				failed = append(failed, rule.Name)
			}
		}
		return failed
	default:
		return []string{RuleUnknownCategory}
	}
}

// ValidLetters is the plate alphabet: Latin and Swedish letters without the
// ones too easily confused with others.
func ValidLetters() string {
	var b strings.Builder
	for _, r := range allLetters {
		if !strings.ContainsRune(excludedLetters, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func normalPlatePattern() string {
	letters := ValidLetters()
	return "^[" + letters + "]{3} [0-9]{2}[" + letters + "0-9]$"
}
