package fieldassist

import (
	"fmt"
	"strings"

	"github.com/patrolsync/nibrs/internal/models"
)

// ReviewThreshold separates auto-accepted mappings from ones that need
// human review. Any classification scoring below it is surfaced as a
// warning rather than silently accepted.
const ReviewThreshold = 0.5

// NeedsReview reports whether a mapping's confidence calls for review.
func NeedsReview(result models.MappingResult) bool {
	return result.Confidence < ReviewThreshold
}

// Factor is one named contribution to a composite confidence assessment.
type Factor struct {
	Name   string
	Weight float64
	Score  float64
}

// CompositeScore computes the weighted average of the factors, clamped to
// [0, 1].
func CompositeScore(factors []Factor) float64 {
	total := 0.0
	weight := 0.0
	for _, f := range factors {
		total += f.Score * f.Weight
		weight += f.Weight
	}
	if weight == 0 {
		return 0
	}
	score := total / weight
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// BuildReasoning generates a human-readable explanation for a composite
// score, calling out unusually strong and weak factors.
func BuildReasoning(factors []Factor, finalScore float64) string {
	parts := []string{}
	for _, f := range factors {
		if f.Score > 0.7 {
			parts = append(parts, fmt.Sprintf("High %s (%.2f)", f.Name, f.Score))
		} else if f.Score < 0.4 {
			parts = append(parts, fmt.Sprintf("Low %s (%.2f)", f.Name, f.Score))
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("Final score: %.2f. Moderate confidence across all factors", finalScore)
	}
	return fmt.Sprintf("Final score: %.2f. %s", finalScore, strings.Join(parts, "; "))
}
