package templates

import (
	"fmt"
	"strings"

	"github.com/patrolsync/nibrs/internal/models"
)

// FieldError is one missing required attribute found by template
// validation.
type FieldError struct {
	Role        string // "Victim", "Offender", "Property", "Evidence"
	Field       string // attribute name, empty for property/evidence presence
	OffenseCode string
}

// Message renders the error in the canonical
// "<Role> <attribute> is required for offense <code>" form.
func (e FieldError) Message() string {
	if e.Field == "" {
		return fmt.Sprintf("%s information is required for offense %s", e.Role, e.OffenseCode)
	}
	return fmt.Sprintf("%s %s is required for offense %s", e.Role, e.Field, e.OffenseCode)
}

// MissingField renders the error as a correction-context field key, e.g.
// "victim.age".
func (e FieldError) MissingField() string {
	if e.Field == "" {
		return strings.ToLower(e.Role)
	}
	return strings.ToLower(e.Role) + "." + e.Field
}

// Validate applies each offense's template to the record and returns one
// error per missing required attribute, in the form
// "<Role> <attribute> is required for offense <code>".
func Validate(segments models.NibrsSegments) []string {
	detailed := ValidateDetailed(segments)
	if len(detailed) == 0 {
		return nil
	}
	errs := make([]string, len(detailed))
	for i, e := range detailed {
		errs[i] = e.Message()
	}
	return errs
}

// ValidateDetailed is Validate with structured results, used to build
// machine-actionable correction contexts.
func ValidateDetailed(segments models.NibrsSegments) []FieldError {
	var errs []FieldError

	for _, offense := range segments.Offenses {
		tpl := For(offense.Code)

		// Victimless offenses carry no victim/offender attribute demands.
		if !tpl.Victimless {
			errs = append(errs, checkVictims(tpl, segments.Victims)...)
			errs = append(errs, checkOffenders(tpl, segments.Offenders)...)
		}

		if tpl.RequiresProperty && !hasProperty(segments) {
			errs = append(errs, FieldError{Role: "Property", OffenseCode: offense.Code})
		}

		if tpl.RequiresEvidence && segments.Evidence == nil {
			errs = append(errs, FieldError{Role: "Evidence", OffenseCode: offense.Code})
		}
	}

	return errs
}

func checkVictims(tpl OffenseTemplate, victims []models.Victim) []FieldError {
	var errs []FieldError
	for _, field := range tpl.RequiredVictimFields {
		satisfied := false
		for _, v := range victims {
			if victimFieldPresent(v, field) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			errs = append(errs, FieldError{Role: "Victim", Field: field, OffenseCode: tpl.Code})
		}
	}
	return errs
}

func checkOffenders(tpl OffenseTemplate, offenders []models.Offender) []FieldError {
	var errs []FieldError
	for _, field := range tpl.RequiredOffenderFields {
		satisfied := false
		for _, o := range offenders {
			if offenderFieldPresent(o, field) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			errs = append(errs, FieldError{Role: "Offender", Field: field, OffenseCode: tpl.Code})
		}
	}
	return errs
}

func victimFieldPresent(v models.Victim, field string) bool {
	switch field {
	case FieldAge:
		return v.Age != models.AgeUnknown
	case FieldSex:
		return v.Sex != ""
	case FieldRace:
		return v.Race != ""
	case FieldInjury:
		return v.InjuryCode != ""
	default:
		return true
	}
}

func offenderFieldPresent(o models.Offender, field string) bool {
	switch field {
	case FieldAge:
		return o.Age != models.AgeUnknown
	case FieldSex:
		return o.Sex != ""
	case FieldRace:
		return o.Race != ""
	case FieldRelationship:
		return o.Relationship != ""
	default:
		return true
	}
}

// hasProperty reports whether the record carries any property evidence: a
// property entry with a positive value, any property entry at all, or an
// evidence block.
func hasProperty(segments models.NibrsSegments) bool {
	for _, p := range segments.Properties {
		if p.Value > 0 {
			return true
		}
	}
	return len(segments.Properties) > 0 || segments.Evidence != nil
}
