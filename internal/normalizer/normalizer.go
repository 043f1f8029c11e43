// Package normalizer collapses every failure shape the pipeline can
// produce into the single StandardErrorResponse contract. Pure field
// renaming and aggregation; no branching logic beyond it.
package normalizer

import (
	"github.com/patrolsync/nibrs/internal/fieldassist"
	"github.com/patrolsync/nibrs/internal/mapper"
	"github.com/patrolsync/nibrs/internal/models"
)

// FromMappingFailure converts a fatal classification failure.
func FromMappingFailure(failure *mapper.MappingFailure) models.StandardErrorResponse {
	missing := []string{"offenses"}
	return models.StandardErrorResponse{
		Error:         failure.Reason,
		MissingFields: missing,
		Warnings:      orEmpty(failure.Warnings),
		Suggestions:   []string{fieldassist.SuggestionFor("offenses")},
		RequiredLevel: models.LevelMapping,
		CorrectionContext: models.CorrectionContext{
			FieldExamples: fieldassist.ExamplesForAll(missing),
		},
	}
}

// FromMapReport converts a failed mapping report.
func FromMapReport(report mapper.MapReport) models.StandardErrorResponse {
	message := "mapping failed"
	if len(report.Errors) > 0 {
		message = report.Errors[0]
	}
	return models.StandardErrorResponse{
		Error:         message,
		MissingFields: orEmpty(report.MissingFields),
		Warnings:      orEmpty(report.Warnings),
		Suggestions:   suggestionsFor(report.MissingFields),
		NibrsData:     report.Segments,
		RequiredLevel: models.LevelMapping,
		CorrectionContext: models.CorrectionContext{
			FieldExamples: fieldassist.ExamplesForAll(report.MissingFields),
		},
	}
}

// FromValidation converts a failed validation result, carrying the
// partially mapped record so the caller can request just the missing
// pieces.
func FromValidation(result models.ValidationResult, level models.RequiredLevel, segments *models.NibrsSegments) models.StandardErrorResponse {
	message := "validation failed"
	if len(result.Errors) > 0 {
		message = result.Errors[0]
	}
	return models.StandardErrorResponse{
		Error:             message,
		MissingFields:     orEmpty(result.MissingFields),
		Warnings:          orEmpty(result.Warnings),
		Suggestions:       suggestionsFor(result.MissingFields),
		NibrsData:         segments,
		RequiredLevel:     level,
		CorrectionContext: result.CorrectionContext,
	}
}

func suggestionsFor(fields []string) []string {
	suggestions := make([]string, 0, len(fields))
	for _, f := range fields {
		suggestions = append(suggestions, fieldassist.SuggestionFor(f))
	}
	return suggestions
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
