package validator

import (
	"fmt"

	"github.com/patrolsync/nibrs/internal/codes"
	"github.com/patrolsync/nibrs/internal/models"
)

// validateProfessional applies the cross-segment consistency rules. The
// victim/offense analysis runs across the full offense list, not
// per-offense, because one incident can mix victimless and victimed
// offenses.
func validateProfessional(segments models.NibrsSegments, result *models.ValidationResult) {
	hasGroupA := false
	hasVictimless := false
	var firstVictimless, firstNonVictimless string

	for _, o := range segments.Offenses {
		if codes.IsGroupA(o.Code) {
			hasGroupA = true
		}
		if codes.IsVictimless(o.Code) {
			hasVictimless = true
			if firstVictimless == "" {
				firstVictimless = o.Code
			}
		} else if firstNonVictimless == "" {
			firstNonVictimless = o.Code
		}
	}

	if !hasGroupA {
		result.Errors = append(result.Errors, "record contains no Group A offense")
	}

	hasSociety := false
	hasPersonal := false
	for _, v := range segments.Victims {
		switch v.Type {
		case models.VictimTypeSociety:
			hasSociety = true
		case models.VictimTypeIndividual, models.VictimTypeBusiness:
			hasPersonal = true
		}
	}

	if hasVictimless && !hasSociety {
		result.Errors = append(result.Errors, fmt.Sprintf("victimless offense %s requires a Society victim", firstVictimless))
		result.MissingFields = append(result.MissingFields, "victims")
		result.CorrectionContext.MissingVictimOffense = firstVictimless
	}
	if firstNonVictimless != "" && !hasPersonal {
		result.Errors = append(result.Errors, fmt.Sprintf("offense %s requires an Individual or Business victim", firstNonVictimless))
		result.MissingFields = append(result.MissingFields, "victims")
		if result.CorrectionContext.MissingVictimOffense == "" {
			result.CorrectionContext.MissingVictimOffense = firstNonVictimless
		}
	}

	if segments.Administrative.IncidentNumber == "" {
		result.Errors = append(result.Errors, "incident number is required")
		result.MissingFields = append(result.MissingFields, "incident_number")
	}

	if segments.Administrative.IncidentDate == "" {
		result.Errors = append(result.Errors, "incident date is required")
		result.MissingFields = append(result.MissingFields, "incident_date")
	}

	if segments.LocationCode == "" || segments.LocationCode == codes.LocationDefault {
		result.Warnings = append(result.Warnings, "location code is generic; a more specific location improves the record")
	}

	for _, o := range segments.Offenses {
		if codes.IsSerious(o.Code) && len(segments.Offenders) == 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("offense %s requires at least one offender segment", o.Code))
			result.MissingFields = append(result.MissingFields, "offenders")
			break
		}
	}

	// A narrative describing a collision with no surviving offense is a
	// contradiction: a bare collision is not NIBRS-reportable.
	if len(segments.Offenses) == 0 &&
		codes.ContainsAny(segments.Narrative, codes.TrafficPhrases) &&
		!codes.ContainsAny(segments.Narrative, codes.ImpairmentVocabulary) {
		result.Errors = append(result.Errors, "narrative describes a traffic collision but no reportable offense; collisions alone are not NIBRS-reportable")
	}
}
