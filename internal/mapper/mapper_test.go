package mapper

import (
	"errors"
	"strings"
	"testing"

	"github.com/patrolsync/nibrs/internal/models"
)

func drugStopExtract() models.DescriptiveExtract {
	return models.DescriptiveExtract{
		IncidentNumber: "2026-001234",
		IncidentDate:   "2026-08-14",
		IncidentTime:   "22:15",
		Offenses:       []models.OffenseDescription{{Description: "possession of marijuana"}},
		Location:       "traffic stop on Highway 9",
		Narrative: "Officers responded to a traffic stop on Highway 9. The driver was found " +
			"in possession of 28 grams of marijuana and was taken into custody.",
	}
}

func TestMapExtractDrugIncident(t *testing.T) {
	m := New()

	segments, warnings, err := m.MapExtract(drugStopExtract())
	if err != nil {
		t.Fatalf("MapExtract returned error: %v (warnings: %v)", err, warnings)
	}

	if len(segments.Offenses) != 1 {
		t.Fatalf("expected 1 offense, got %d", len(segments.Offenses))
	}
	offense := segments.Offenses[0]
	if offense.Code != "35A" {
		t.Errorf("offense code = %s, want 35A", offense.Code)
	}
	if offense.Confidence < 0.85 {
		t.Errorf("offense confidence = %.2f, want >= 0.85", offense.Confidence)
	}
	if offense.SequenceNumber != 1 || offense.AttemptedCompleted != "C" {
		t.Errorf("offense not normalized: %+v", offense)
	}

	if len(segments.Victims) != 1 || segments.Victims[0].Type != models.VictimTypeSociety {
		t.Fatalf("expected exactly one Society victim, got %+v", segments.Victims)
	}

	if segments.Administrative.ClearedBy != "A" {
		t.Errorf("cleared by = %q, want A", segments.Administrative.ClearedBy)
	}
	if segments.Administrative.ClearedExceptionally != "N" {
		t.Errorf("exceptional clearance = %q, want N", segments.Administrative.ClearedExceptionally)
	}

	if len(segments.Arrestees) != 1 {
		t.Fatalf("expected 1 arrestee, got %d", len(segments.Arrestees))
	}
	arrestee := segments.Arrestees[0]
	if arrestee.ArrestType != models.ArrestTypeTakenIntoCustody {
		t.Errorf("arrest type = %s, want %s", arrestee.ArrestType, models.ArrestTypeTakenIntoCustody)
	}
	if len(arrestee.OffenseCodes) != 1 || arrestee.OffenseCodes[0] != "35A" {
		t.Errorf("arrestee offense codes = %v, want [35A]", arrestee.OffenseCodes)
	}
	if arrestee.ArrestDate != "2026-08-14" {
		t.Errorf("arrest date = %q, want incident date", arrestee.ArrestDate)
	}

	if segments.Evidence == nil || len(segments.Evidence.Items) == 0 {
		t.Error("expected seized-item evidence from the narrative")
	}

	if segments.LocationCode != "13" {
		t.Errorf("location code = %s, want 13", segments.LocationCode)
	}
}

func TestMapExtractTrafficOnlyFails(t *testing.T) {
	m := New()

	extract := models.DescriptiveExtract{
		IncidentNumber: "2026-004567",
		IncidentDate:   "2026-08-15",
		Offenses:       []models.OffenseDescription{{Description: "rear-ended another vehicle"}},
		Location:       "intersection of 5th and Main",
		Narrative:      "Driver rear-ended another vehicle at the intersection. Both parties exchanged information.",
	}

	_, warnings, err := m.MapExtract(extract)
	if err == nil {
		t.Fatal("expected a mapping failure for a collision-only report")
	}

	var failure *MappingFailure
	if !errors.As(err, &failure) {
		t.Fatalf("error type = %T, want *MappingFailure", err)
	}
	if len(warnings) == 0 {
		t.Error("expected a warning explaining the dropped offense")
	}
}

func TestMapExtractDropsGroupBWithoutArrest(t *testing.T) {
	m := New()

	extract := models.DescriptiveExtract{
		IncidentDate: "2026-08-15",
		Offenses:     []models.OffenseDescription{{Description: "criminal trespassing"}},
		Narrative:    "Complainant reported a subject walking across the posted lot. Subject left before officers arrived.",
	}

	_, warnings, err := m.MapExtract(extract)
	if err == nil {
		t.Fatal("expected failure once the only offense was dropped")
	}

	found := false
	for _, w := range warnings {
		if strings.Contains(w, "Group B") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a Group B drop warning, got %v", warnings)
	}
}

func TestMapExtractWeaponsAttachToFirstOffense(t *testing.T) {
	m := New()

	extract := models.DescriptiveExtract{
		IncidentDate: "2026-08-15",
		Offenses: []models.OffenseDescription{
			{Description: "aggravated assault with a knife"},
			{Description: "burglary of the residence"},
		},
		Weapons:   []string{"kitchen knife", "a knife"},
		Victims:   []models.PersonDescription{{Age: 30, Sex: "M", Injury: "laceration"}},
		Narrative: "Officers responded to the residence and observed the victim bleeding.",
	}

	segments, _, err := m.MapExtract(extract)
	if err != nil {
		t.Fatalf("MapExtract returned error: %v", err)
	}

	if len(segments.Offenses) != 2 {
		t.Fatalf("expected 2 offenses, got %d", len(segments.Offenses))
	}
	if got := segments.Offenses[0].WeaponCodes; len(got) != 1 || got[0] != "15" {
		t.Errorf("first offense weapon codes = %v, want deduplicated [15]", got)
	}
	if len(segments.Offenses[1].WeaponCodes) != 0 {
		t.Errorf("weapons leaked onto a later offense: %v", segments.Offenses[1].WeaponCodes)
	}
}

func TestMapExtractAttemptedOffense(t *testing.T) {
	m := New()

	extract := models.DescriptiveExtract{
		IncidentDate: "2026-08-15",
		Offenses:     []models.OffenseDescription{{Description: "attempted burglary, suspect pried open the back door", Attempted: true}},
		Narrative:    "Officers observed pry marks on the rear door.",
	}

	segments, _, err := m.MapExtract(extract)
	if err != nil {
		t.Fatalf("MapExtract returned error: %v", err)
	}
	if segments.Offenses[0].AttemptedCompleted != "A" {
		t.Errorf("attempted flag = %q, want A", segments.Offenses[0].AttemptedCompleted)
	}
}

func TestValidateAndMapSuccess(t *testing.T) {
	m := New()

	report := m.ValidateAndMap(drugStopExtract())
	if !report.OK {
		t.Fatalf("expected OK report, got errors %v", report.Errors)
	}
	if report.Segments == nil {
		t.Fatal("expected segments on a successful report")
	}
}

func TestValidateAndMapFailure(t *testing.T) {
	m := New()

	report := m.ValidateAndMap(models.DescriptiveExtract{
		Offenses:  []models.OffenseDescription{{Description: "vehicle sustained minor damage"}},
		Narrative: "Vehicle sustained minor damage in the lot.",
	})

	if report.OK {
		t.Fatal("expected failed report")
	}
	if len(report.Errors) == 0 {
		t.Error("expected an error explaining the failure")
	}
	if len(report.MissingFields) != 1 || report.MissingFields[0] != "offenses" {
		t.Errorf("missing fields = %v, want [offenses]", report.MissingFields)
	}
}
