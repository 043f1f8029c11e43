package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/patrolsync/nibrs/internal/models"
)

const extractJSON = `{"incident_number":"2026-001234","incident_date":"2026-08-14","offenses":[{"description":"possession of marijuana","attempted":false}],"location":"traffic stop","victims":[],"offenders":[{"age":-1,"sex":"M"}],"narrative":"model echo"}`

func TestParseExtractResponsePlainJSON(t *testing.T) {
	extract, err := ParseExtractResponse(extractJSON)
	if err != nil {
		t.Fatalf("ParseExtractResponse returned error: %v", err)
	}

	if extract.IncidentNumber != "2026-001234" {
		t.Errorf("incident number = %q", extract.IncidentNumber)
	}
	if len(extract.Offenses) != 1 || extract.Offenses[0].Description != "possession of marijuana" {
		t.Errorf("offenses = %+v", extract.Offenses)
	}
	if len(extract.Offenders) != 1 || extract.Offenders[0].Age != -1 {
		t.Errorf("offenders = %+v", extract.Offenders)
	}
}

func TestParseExtractResponseRecoversWrappedJSON(t *testing.T) {
	wrapped := []string{
		"Here is the extraction:\n```json\n" + extractJSON + "\n```",
		"Sure! " + extractJSON + " Let me know if you need anything else.",
	}

	for _, response := range wrapped {
		extract, err := ParseExtractResponse(response)
		if err != nil {
			t.Fatalf("ParseExtractResponse(%q) returned error: %v", response[:20], err)
		}
		if extract.IncidentNumber != "2026-001234" {
			t.Errorf("incident number = %q", extract.IncidentNumber)
		}
	}
}

func TestParseExtractResponseHandlesEscapedBraces(t *testing.T) {
	response := `prefix {"incident_number":"X","narrative":"he said \"{take it}\" twice","offenses":[]} suffix`

	extract, err := ParseExtractResponse(response)
	if err != nil {
		t.Fatalf("ParseExtractResponse returned error: %v", err)
	}
	if extract.IncidentNumber != "X" {
		t.Errorf("incident number = %q", extract.IncidentNumber)
	}
}

func TestParseExtractResponseRejectsNonJSON(t *testing.T) {
	if _, err := ParseExtractResponse("I could not extract anything."); err == nil {
		t.Fatal("expected error for a response with no JSON object")
	}
	if _, err := ParseExtractResponse("{not valid json}"); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestMockExtractorPassesNarrativeThrough(t *testing.T) {
	mock := &MockExtractor{Result: models.DescriptiveExtract{IncidentNumber: "2026-001234"}}

	extract, err := mock.Extract(context.Background(), "the raw narrative")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if extract.Narrative != "the raw narrative" {
		t.Errorf("narrative = %q, want pass-through", extract.Narrative)
	}
	if extract.IncidentNumber != "2026-001234" {
		t.Errorf("incident number = %q", extract.IncidentNumber)
	}
}

func TestMockExtractorReturnsConfiguredError(t *testing.T) {
	wantErr := errors.New("upstream unavailable")
	mock := &MockExtractor{Err: wantErr}

	if _, err := mock.Extract(context.Background(), "x"); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}

func TestClientRejectsEmptyNarrative(t *testing.T) {
	client := NewClient("test-key", Config{})
	if _, err := client.Extract(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty narrative")
	}
}
