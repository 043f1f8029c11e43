package mapper

import (
	"reflect"
	"testing"
	"time"

	"github.com/patrolsync/nibrs/internal/models"
)

func fixedMapper(unix int64) *Mapper {
	return &Mapper{now: func() time.Time { return time.Unix(unix, 0) }}
}

func TestFillRequiredDefaultsGeneratesIncidentNumber(t *testing.T) {
	m := fixedMapper(1700000000)

	out := m.FillRequiredDefaults(models.NibrsSegments{
		Offenses: []models.Offense{{Code: "220", Description: "burglary"}},
	})

	if out.Administrative.IncidentNumber != "IN-1700000000" {
		t.Errorf("incident number = %q, want IN-1700000000", out.Administrative.IncidentNumber)
	}
	if out.Administrative.ClearedExceptionally != "N" {
		t.Errorf("clearance flag = %q, want N", out.Administrative.ClearedExceptionally)
	}
	if out.Offenses[0].AttemptedCompleted != "C" {
		t.Errorf("attempted/completed = %q, want C", out.Offenses[0].AttemptedCompleted)
	}
}

func TestFillRequiredDefaultsPreservesExistingValues(t *testing.T) {
	m := fixedMapper(1700000000)

	out := m.FillRequiredDefaults(models.NibrsSegments{
		Administrative: models.Administrative{
			IncidentNumber:       "2026-001234",
			ClearedExceptionally: "Y",
		},
		Offenses: []models.Offense{{Code: "220", Description: "burglary", AttemptedCompleted: "A"}},
	})

	if out.Administrative.IncidentNumber != "2026-001234" {
		t.Errorf("incident number overwritten: %q", out.Administrative.IncidentNumber)
	}
	if out.Administrative.ClearedExceptionally != "Y" {
		t.Errorf("clearance flag overwritten: %q", out.Administrative.ClearedExceptionally)
	}
	if out.Offenses[0].AttemptedCompleted != "A" {
		t.Errorf("attempted flag overwritten: %q", out.Offenses[0].AttemptedCompleted)
	}
}

func TestFillRequiredDefaultsDropsPriorIncidentSegments(t *testing.T) {
	m := fixedMapper(1700000000)

	out := m.FillRequiredDefaults(models.NibrsSegments{
		Offenses: []models.Offense{
			{Code: "35A", Description: "history of drug arrests"},
			{Code: "220", Description: "burglary of the residence"},
		},
		Narrative: "subject has a history of drug arrests",
	})

	if len(out.Offenses) != 1 {
		t.Fatalf("expected 1 surviving offense, got %d", len(out.Offenses))
	}
	if out.Offenses[0].Code != "220" {
		t.Errorf("surviving code = %s, want 220", out.Offenses[0].Code)
	}
	if out.Offenses[0].SequenceNumber != 1 {
		t.Errorf("sequence not re-derived: %d", out.Offenses[0].SequenceNumber)
	}
}

func TestFillRequiredDefaultsClampsAges(t *testing.T) {
	m := fixedMapper(1700000000)

	out := m.FillRequiredDefaults(models.NibrsSegments{
		Offenses: []models.Offense{{Code: "13A", Description: "assault"}},
		Victims: []models.Victim{
			{Type: models.VictimTypeIndividual, Age: 200},
			{Type: models.VictimTypeIndividual, Age: models.AgeUnknown},
			{Type: models.VictimTypeIndividual, Age: -5},
		},
		Offenders: []models.Offender{{Age: 45}},
	})

	if out.Victims[0].Age != models.AgeMax {
		t.Errorf("over-range age = %d, want %d", out.Victims[0].Age, models.AgeMax)
	}
	if out.Victims[1].Age != models.AgeUnknown {
		t.Errorf("unknown sentinel clamped: %d", out.Victims[1].Age)
	}
	if out.Victims[2].Age != models.AgeMin {
		t.Errorf("under-range age = %d, want %d", out.Victims[2].Age, models.AgeMin)
	}
	if out.Offenders[0].Age != 45 {
		t.Errorf("in-range age changed: %d", out.Offenders[0].Age)
	}
}

func TestFillRequiredDefaultsDrugProperties(t *testing.T) {
	m := fixedMapper(1700000000)

	out := m.FillRequiredDefaults(models.NibrsSegments{
		Offenses: []models.Offense{{Code: "35A", Description: "drug possession"}},
		Properties: []models.Property{
			{DescriptionCode: "10", Description: "marijuana"},
			{DescriptionCode: "77", Description: "misc", Value: -20},
		},
	})

	if !out.Properties[0].Seized {
		t.Error("drug property not marked seized")
	}
	if out.Properties[0].LossType != 6 {
		t.Errorf("drug loss type = %d, want 6", out.Properties[0].LossType)
	}
	if out.Properties[1].Value != 0 {
		t.Errorf("negative value not floored: %.2f", out.Properties[1].Value)
	}
}

func TestFillRequiredDefaultsArresteeDate(t *testing.T) {
	m := fixedMapper(1700000000)

	out := m.FillRequiredDefaults(models.NibrsSegments{
		Administrative: models.Administrative{IncidentDate: "2026-08-14"},
		Offenses:       []models.Offense{{Code: "220", Description: "burglary"}},
		Arrestees:      []models.Arrestee{{ArrestType: models.ArrestTypeOnView, Age: models.AgeUnknown}},
	})

	if out.Arrestees[0].ArrestDate != "2026-08-14" {
		t.Errorf("arrest date = %q, want incident date", out.Arrestees[0].ArrestDate)
	}
	if out.Arrestees[0].SequenceNumber != 1 {
		t.Errorf("arrestee sequence = %d, want 1", out.Arrestees[0].SequenceNumber)
	}
}

func TestFillRequiredDefaultsIdempotent(t *testing.T) {
	m := fixedMapper(1700000000)

	in := models.NibrsSegments{
		Administrative: models.Administrative{IncidentDate: "2026-08-14"},
		Offenses: []models.Offense{
			{Code: "35A", Description: "possession of marijuana"},
			{Code: "220", Description: "burglary of the residence"},
		},
		Victims:    []models.Victim{{Type: models.VictimTypeSociety, Age: 300}},
		Offenders:  []models.Offender{{Age: models.AgeUnknown}},
		Properties: []models.Property{{DescriptionCode: "10", Description: "marijuana"}},
		Arrestees:  []models.Arrestee{{ArrestType: models.ArrestTypeTakenIntoCustody, Age: models.AgeUnknown}},
		Narrative:  "officers responded and located the suspect",
	}

	once := m.FillRequiredDefaults(in)
	twice := m.FillRequiredDefaults(once)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalization not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestFillRequiredDefaultsDoesNotAliasInput(t *testing.T) {
	m := fixedMapper(1700000000)

	in := models.NibrsSegments{
		Offenses: []models.Offense{{Code: "220", Description: "burglary", WeaponCodes: []string{"12"}}},
	}

	out := m.FillRequiredDefaults(in)
	out.Offenses[0].WeaponCodes[0] = "99"

	if in.Offenses[0].WeaponCodes[0] != "12" {
		t.Fatal("normalization aliased the caller's slices")
	}
}
