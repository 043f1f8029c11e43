package templates

import (
	"strings"
	"testing"

	"github.com/patrolsync/nibrs/internal/models"
)

func TestForUnknownCodeIsPermissive(t *testing.T) {
	tpl := For("999")
	if len(tpl.RequiredVictimFields) != 0 || len(tpl.RequiredOffenderFields) != 0 {
		t.Error("unknown codes must yield a template with no required fields")
	}
	if tpl.RequiresProperty || tpl.RequiresEvidence || tpl.Victimless {
		t.Error("unknown codes must yield a fully permissive template")
	}
}

func TestForVictimlessSetOverridesRegistry(t *testing.T) {
	// 90A has no registry entry but belongs to the victimless set.
	if !For("90A").Victimless {
		t.Error("For(90A).Victimless = false, want true")
	}
}

func TestValidateVictimlessSkipsVictimChecks(t *testing.T) {
	segments := models.NibrsSegments{
		Offenses: []models.Offense{{Code: "35A", SequenceNumber: 1}},
		Properties: []models.Property{
			{DescriptionCode: "10", Description: "marijuana", LossType: 6, Seized: true},
		},
		Evidence: &models.Evidence{Items: []string{"28 grams marijuana"}},
	}

	for _, err := range Validate(segments) {
		if strings.Contains(err, "Victim") {
			t.Errorf("victimless offense produced victim error: %s", err)
		}
		if strings.Contains(err, "Offender") {
			t.Errorf("victimless offense produced offender error: %s", err)
		}
	}
}

func TestValidateMissingVictimFields(t *testing.T) {
	segments := models.NibrsSegments{
		Offenses: []models.Offense{{Code: "13A", SequenceNumber: 1}},
		Victims:  []models.Victim{{Type: models.VictimTypeIndividual, Age: models.AgeUnknown}},
	}

	errs := Validate(segments)
	want := []string{
		"Victim age is required for offense 13A",
		"Victim sex is required for offense 13A",
		"Victim injury is required for offense 13A",
		"Offender sex is required for offense 13A",
	}
	for _, w := range want {
		found := false
		for _, e := range errs {
			if e == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected error %q, got %v", w, errs)
		}
	}
}

func TestValidatePropertyRequirement(t *testing.T) {
	segments := models.NibrsSegments{
		Offenses: []models.Offense{{Code: "220", SequenceNumber: 1}},
		Victims:  []models.Victim{{Type: models.VictimTypeIndividual, Age: 34, Sex: "M"}},
	}

	errs := Validate(segments)
	found := false
	for _, e := range errs {
		if e == "Property information is required for offense 220" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected property requirement error, got %v", errs)
	}

	// An evidence block alone satisfies the property requirement.
	segments.Evidence = &models.Evidence{Items: []string{"pry bar"}}
	for _, e := range Validate(segments) {
		if e == "Property information is required for offense 220" {
			t.Error("evidence block should satisfy the property requirement")
		}
	}
}
