package mapper

import (
	"testing"

	"github.com/patrolsync/nibrs/internal/models"
)

func TestAssignVictimsVictimless(t *testing.T) {
	m := New()

	victims := m.AssignVictims([]models.Offense{{Code: "35A"}}, models.DescriptiveExtract{})
	if len(victims) != 1 {
		t.Fatalf("expected exactly one Society victim, got %d", len(victims))
	}
	if victims[0].Type != models.VictimTypeSociety {
		t.Errorf("victim type = %s, want %s", victims[0].Type, models.VictimTypeSociety)
	}
	if victims[0].Age != models.AgeUnknown {
		t.Errorf("victim age = %d, want unknown sentinel", victims[0].Age)
	}
}

func TestAssignVictimsUsesExtractedVictims(t *testing.T) {
	m := New()

	extract := models.DescriptiveExtract{
		Victims: []models.PersonDescription{
			{Age: 34, Sex: "female", Race: "white", Injury: "minor bruising"},
			{Age: models.AgeUnknown, Sex: "m"},
		},
	}

	victims := m.AssignVictims([]models.Offense{{Code: "13A"}}, extract)
	if len(victims) != 2 {
		t.Fatalf("expected 2 victims, got %d", len(victims))
	}
	if victims[0].Type != models.VictimTypeIndividual {
		t.Errorf("victim type = %s, want %s", victims[0].Type, models.VictimTypeIndividual)
	}
	if victims[0].Sex != "F" || victims[0].Race != "W" {
		t.Errorf("demographics not normalized: %+v", victims[0])
	}
	if victims[0].InjuryCode != "M" {
		t.Errorf("injury code = %q, want M", victims[0].InjuryCode)
	}
	if victims[1].Sex != "M" {
		t.Errorf("second victim sex = %q, want M", victims[1].Sex)
	}
}

func TestAssignVictimsSynthesizesForViolentOffense(t *testing.T) {
	m := New()

	victims := m.AssignVictims([]models.Offense{{Code: "13A"}}, models.DescriptiveExtract{})
	if len(victims) != 1 {
		t.Fatalf("expected a synthesized victim, got %d", len(victims))
	}
	v := victims[0]
	if v.Type != models.VictimTypeIndividual || v.Sex != "U" || v.InjuryCode != "M" {
		t.Errorf("synthesized victim = %+v", v)
	}
	if v.Age != models.AgeUnknown {
		t.Errorf("synthesized victim age = %d, want unknown sentinel", v.Age)
	}
}

func TestAssignVictimsNonViolentWithoutExtraction(t *testing.T) {
	m := New()

	victims := m.AssignVictims([]models.Offense{{Code: "23H"}}, models.DescriptiveExtract{})
	if len(victims) != 0 {
		t.Fatalf("expected no victims for a non-violent offense without extraction, got %d", len(victims))
	}
}

func TestAssignVictimsMixedRecord(t *testing.T) {
	m := New()

	victims := m.AssignVictims([]models.Offense{{Code: "35A"}, {Code: "13A"}}, models.DescriptiveExtract{})
	if len(victims) != 2 {
		t.Fatalf("expected Society plus synthesized Individual, got %d", len(victims))
	}
	if victims[0].Type != models.VictimTypeSociety {
		t.Errorf("first victim type = %s, want %s", victims[0].Type, models.VictimTypeSociety)
	}
	if victims[1].Type != models.VictimTypeIndividual {
		t.Errorf("second victim type = %s, want %s", victims[1].Type, models.VictimTypeIndividual)
	}
}

func TestNormalizeDemographics(t *testing.T) {
	sexTests := map[string]string{
		"male": "M", "F": "F", "woman": "F", "": "", "nonbinary": "U",
	}
	for input, want := range sexTests {
		if got := normalizeSex(input); got != want {
			t.Errorf("normalizeSex(%q) = %q, want %q", input, got, want)
		}
	}

	raceTests := map[string]string{
		"caucasian": "W", "african american": "B", "Asian": "A", "": "", "other": "U",
	}
	for input, want := range raceTests {
		if got := normalizeRace(input); got != want {
			t.Errorf("normalizeRace(%q) = %q, want %q", input, got, want)
		}
	}

	ethnicityTests := map[string]string{
		"hispanic": "H", "not hispanic": "N", "": "", "declined": "U",
	}
	for input, want := range ethnicityTests {
		if got := normalizeEthnicity(input); got != want {
			t.Errorf("normalizeEthnicity(%q) = %q, want %q", input, got, want)
		}
	}
}
