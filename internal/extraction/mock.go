package extraction

import (
	"context"

	"github.com/patrolsync/nibrs/internal/models"
)

// MockExtractor returns canned extracts for tests and local development.
type MockExtractor struct {
	Result models.DescriptiveExtract
	Err    error
}

// Extract returns the configured result with the narrative passed
// through, mirroring the real client's behavior.
func (m *MockExtractor) Extract(_ context.Context, narrative string) (models.DescriptiveExtract, error) {
	if m.Err != nil {
		return models.DescriptiveExtract{}, m.Err
	}
	result := m.Result
	result.Narrative = narrative
	return result, nil
}
