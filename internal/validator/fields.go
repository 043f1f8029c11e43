package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/patrolsync/nibrs/internal/codes"
	"github.com/patrolsync/nibrs/internal/fieldassist"
	"github.com/patrolsync/nibrs/internal/models"
	"github.com/patrolsync/nibrs/internal/templates"
)

// validateFields is the template/field layer: per-offense required
// sub-fields, property classification quality, loss-type range, age
// sanity, temporal validity, and multi-offense victim-class consistency.
func validateFields(segments models.NibrsSegments, result *models.ValidationResult) {
	for _, fieldErr := range templates.ValidateDetailed(segments) {
		result.Errors = append(result.Errors, fieldErr.Message())
		result.MissingFields = append(result.MissingFields, fieldErr.MissingField())
	}

	checkPropertyQuality(segments, result)
	checkLossTypes(segments, result)
	checkTemporal(segments, result)
	checkVictimClasses(segments, result)

	if len(result.MissingFields) > 0 {
		result.CorrectionContext.FieldExamples = fieldassist.ExamplesForAll(result.MissingFields)
	}
}

// checkPropertyQuality flags properties left at the generic "Other" code,
// suggesting specific codes derived from description keywords, and
// enforces the drug-property invariants.
func checkPropertyQuality(segments models.NibrsSegments, result *models.ValidationResult) {
	for i, p := range segments.Properties {
		if p.DescriptionCode == codes.PropertyGeneric {
			suggested := suggestPropertyCodes(p.Description)
			result.Warnings = append(result.Warnings, fmt.Sprintf("property %d (%q) uses the generic description code; consider a specific code", i+1, p.Description))
			result.CorrectionContext.PropertySuggestions = append(result.CorrectionContext.PropertySuggestions, models.PropertySuggestion{
				Index:          i,
				CurrentCode:    p.DescriptionCode,
				Description:    p.Description,
				SuggestedCodes: suggested,
			})
		}

		if p.DescriptionCode == codes.PropertyDrugs {
			if !p.Seized {
				result.Errors = append(result.Errors, fmt.Sprintf("drug property %d must be marked seized", i+1))
			}
			if p.Value == 0 {
				result.Warnings = append(result.Warnings, fmt.Sprintf("drug property %d has no value recorded", i+1))
			}
		}
	}
}

// suggestPropertyCodes derives candidate specific codes from keywords in
// the description, preserving table order and deduplicating.
func suggestPropertyCodes(description string) []string {
	lower := strings.ToLower(description)
	seen := map[string]bool{}
	var suggested []string
	for _, e := range codes.Properties {
		if e.Code == codes.PropertyGeneric || seen[e.Code] {
			continue
		}
		if strings.Contains(lower, e.Keyword) {
			seen[e.Code] = true
			suggested = append(suggested, e.Code)
		}
	}
	return suggested
}

func checkLossTypes(segments models.NibrsSegments, result *models.ValidationResult) {
	for i, p := range segments.Properties {
		if p.LossType < models.LossTypeMin || p.LossType > models.LossTypeMax {
			result.Errors = append(result.Errors, fmt.Sprintf("property %d loss type %d is outside [%d, %d]", i+1, p.LossType, models.LossTypeMin, models.LossTypeMax))
		}
	}
}

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"January 2, 2006",
	time.RFC3339,
}

func parseableDate(value string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

func checkTemporal(segments models.NibrsSegments, result *models.ValidationResult) {
	admin := segments.Administrative

	if admin.IncidentDate != "" && !parseableDate(admin.IncidentDate) {
		result.Errors = append(result.Errors, fmt.Sprintf("incident date %q is not a parseable date", admin.IncidentDate))
	}

	if admin.ClearedExceptionally == "Y" {
		if admin.ExceptionalClearanceDate == "" {
			result.Errors = append(result.Errors, "exceptional clearance date is required when the record is cleared exceptionally")
			result.MissingFields = append(result.MissingFields, "exceptional_clearance_date")
		} else if !parseableDate(admin.ExceptionalClearanceDate) {
			result.Errors = append(result.Errors, fmt.Sprintf("exceptional clearance date %q is not a parseable date", admin.ExceptionalClearanceDate))
		}
	}

	for i, a := range segments.Arrestees {
		if a.ArrestDate != "" && !parseableDate(a.ArrestDate) {
			result.Errors = append(result.Errors, fmt.Sprintf("arrestee %d arrest date %q is not a parseable date", i+1, a.ArrestDate))
		}
	}
}

// checkVictimClasses cross-checks that each distinct
// offense-victimlessness class present in the record is matched by at
// least one victim of the corresponding type.
func checkVictimClasses(segments models.NibrsSegments, result *models.ValidationResult) {
	classes := map[bool]string{}
	for _, o := range segments.Offenses {
		victimless := codes.IsVictimless(o.Code)
		if _, ok := classes[victimless]; !ok {
			classes[victimless] = o.Code
		}
	}

	for victimless, code := range classes {
		matched := false
		for _, v := range segments.Victims {
			if victimless && v.Type == models.VictimTypeSociety {
				matched = true
			}
			if !victimless && (v.Type == models.VictimTypeIndividual || v.Type == models.VictimTypeBusiness) {
				matched = true
			}
		}
		if !matched {
			result.Warnings = append(result.Warnings, fmt.Sprintf("no victim type matches the victimlessness class of offense %s", code))
		}
	}
}
