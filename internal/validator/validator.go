// Package validator layers the record checks: structural schema
// conformance, cross-segment professional rules, and template-driven
// required fields. Structural failures are fatal and short-circuit the
// remaining layers; everything downstream accumulates into one result.
package validator

import (
	"github.com/patrolsync/nibrs/internal/models"
)

// ValidatePayload runs all validation layers over a mapped record and
// returns the composed result plus the layer that produced the first
// fatal failure.
func ValidatePayload(segments models.NibrsSegments) (models.ValidationResult, models.RequiredLevel) {
	result := models.ValidationResult{
		Errors:        []string{},
		Warnings:      []string{},
		MissingFields: []string{},
	}

	if errs := validateStructural(segments); len(errs) > 0 {
		result.Errors = errs
		return result, models.LevelSchema
	}

	validateProfessional(segments, &result)
	professionalErrs := len(result.Errors)

	validateFields(segments, &result)

	result.MissingFields = dedupe(result.MissingFields)

	if len(result.Errors) == 0 {
		result.OK = true
		return result, ""
	}
	if professionalErrs > 0 {
		return result, models.LevelProfessional
	}
	return result, models.LevelFields
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
