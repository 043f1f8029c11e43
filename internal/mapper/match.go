package mapper

import (
	"strings"

	"github.com/patrolsync/nibrs/internal/codes"
	"github.com/patrolsync/nibrs/internal/models"
)

// findBestMatch is the generic fuzzy scorer behind location, weapon, and
// property mapping. Tiers, best score wins:
//
//	exact keyword match            1.0
//	substring containment          0.8-0.9, weighted by length ratio
//	token overlap (Jaccard)        0.6-0.9
//	fallback keyword dictionary    0.7
//
// When nothing reaches the acceptance floor the table's first entry is
// returned at confidence 0.2: a deliberately low score that always trips
// the review threshold instead of leaving the field empty.
func findBestMatch(input string, table codes.Table, fallback codes.Table) models.MappingResult {
	result := models.MappingResult{OriginalInput: input}

	norm := strings.ToLower(strings.TrimSpace(input))
	if norm == "" {
		first := table.First()
		result.Code = first.Code
		result.Confidence = confidenceLastResort
		return result
	}

	bestScore := 0.0
	bestCode := ""

	inputTokens := tokenize(norm)

	for _, e := range table {
		score := scoreCandidate(norm, inputTokens, e.Keyword)
		if score > bestScore {
			bestScore = score
			bestCode = e.Code
		}
	}

	if bestScore < confidenceFallback {
		for _, e := range fallback {
			if strings.Contains(norm, e.Keyword) {
				bestScore = confidenceFallback
				bestCode = e.Code
				break
			}
		}
	}

	if bestScore >= matchAcceptanceFloor {
		result.Code = bestCode
		result.Confidence = bestScore
		return result
	}

	first := table.First()
	result.Code = first.Code
	result.Confidence = confidenceLastResort
	return result
}

func scoreCandidate(input string, inputTokens []string, keyword string) float64 {
	if input == keyword {
		return 1.0
	}

	// Containment, weighted by how much of the longer string the shorter
	// one covers.
	if strings.Contains(input, keyword) || strings.Contains(keyword, input) {
		shorter, longer := len(keyword), len(input)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		ratio := float64(shorter) / float64(longer)
		return 0.8 + 0.1*ratio
	}

	// Token overlap: require at least a third of the union shared so a
	// single stray common word does not qualify.
	overlap := jaccard(inputTokens, tokenize(keyword))
	if overlap >= 0.34 {
		return 0.6 + 0.3*overlap
	}

	return 0.0
}

func tokenize(s string) []string {
	fields := strings.Fields(s)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?\"'()")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	intersection := 0
	union := len(set)
	seen := make(map[string]bool, len(b))
	for _, t := range b {
		if seen[t] {
			continue
		}
		seen[t] = true
		if set[t] {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
