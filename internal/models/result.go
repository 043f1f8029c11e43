package models

// MappingResult is the outcome of a single classification call.
type MappingResult struct {
	Code          string  `json:"code"`
	Confidence    float64 `json:"confidence"` // 0-1 scale
	OriginalInput string  `json:"original_input"`
}

// Matched reports whether the classifier produced a usable code.
func (r MappingResult) Matched() bool {
	return r.Code != "" && r.Confidence > 0
}

// ConfidenceLevel provides human-readable confidence assessment.
type ConfidenceLevel string

const (
	ConfidenceLow      ConfidenceLevel = "low"      // 0.0-0.3
	ConfidenceMedium   ConfidenceLevel = "medium"   // 0.3-0.6
	ConfidenceHigh     ConfidenceLevel = "high"     // 0.6-0.85
	ConfidenceVerified ConfidenceLevel = "verified" // 0.85-1.0
)

// Level derives the confidence level from the numeric score.
func (r MappingResult) Level() ConfidenceLevel {
	return DeriveConfidenceLevel(r.Confidence)
}

// DeriveConfidenceLevel buckets a 0-1 score into a ConfidenceLevel.
func DeriveConfidenceLevel(score float64) ConfidenceLevel {
	switch {
	case score >= 0.85:
		return ConfidenceVerified
	case score >= 0.6:
		return ConfidenceHigh
	case score >= 0.3:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// PropertySuggestion proposes specific description codes for a property
// left at the generic code, keyed by its position in the record.
type PropertySuggestion struct {
	Index          int      `json:"index"`
	CurrentCode    string   `json:"current_code"`
	Description    string   `json:"description"`
	SuggestedCodes []string `json:"suggested_codes"`
}

// CorrectionContext carries machine-actionable hints for a guided
// correction flow: which property to reclassify, which offense triggered a
// missing-victim error, and example values for absent fields.
type CorrectionContext struct {
	PropertySuggestions  []PropertySuggestion `json:"property_suggestions,omitempty"`
	MissingVictimOffense string               `json:"missing_victim_offense,omitempty"`
	FieldExamples        map[string][]string  `json:"field_examples,omitempty"`
}

// Empty reports whether the context carries no suggestions at all.
func (c CorrectionContext) Empty() bool {
	return len(c.PropertySuggestions) == 0 && c.MissingVictimOffense == "" && len(c.FieldExamples) == 0
}

// ValidationResult is the composed output of all validation layers.
type ValidationResult struct {
	OK                bool              `json:"ok"`
	Errors            []string          `json:"errors"`
	Warnings          []string          `json:"warnings"`
	MissingFields     []string          `json:"missing_fields"`
	CorrectionContext CorrectionContext `json:"correction_context"`
}

// RequiredLevel identifies the validation layer that produced a failure.
type RequiredLevel string

const (
	LevelMapping      RequiredLevel = "mapping"
	LevelSchema       RequiredLevel = "schema"
	LevelProfessional RequiredLevel = "professional"
	LevelFields       RequiredLevel = "fields"
)

// StandardErrorResponse is the single external error shape. Every failure,
// whichever layer produced it, is normalized into this record.
type StandardErrorResponse struct {
	Error             string            `json:"error"`
	MissingFields     []string          `json:"missing_fields"`
	Warnings          []string          `json:"warnings"`
	Suggestions       []string          `json:"suggestions"`
	NibrsData         *NibrsSegments    `json:"nibrs_data,omitempty"`
	RequiredLevel     RequiredLevel     `json:"required_level"`
	CorrectionContext CorrectionContext `json:"correction_context"`
}
