package models

import (
	"reflect"
	"testing"
)

func TestCloneIsDeep(t *testing.T) {
	original := NibrsSegments{
		Administrative: Administrative{IncidentNumber: "2026-001234"},
		Offenses: []Offense{
			{SequenceNumber: 1, Code: "13A", WeaponCodes: []string{"15"}},
		},
		Victims:   []Victim{{SequenceNumber: 1, Type: VictimTypeIndividual, Age: 34}},
		Offenders: []Offender{{SequenceNumber: 1, Age: 28}},
		Properties: []Property{
			{SequenceNumber: 1, DescriptionCode: "10", LossType: 6},
		},
		Arrestees: []Arrestee{
			{SequenceNumber: 1, ArrestType: ArrestTypeOnView, OffenseCodes: []string{"13A"}},
		},
		Evidence: &Evidence{Items: []string{"knife"}},
	}

	clone := original.Clone()
	if !reflect.DeepEqual(original, clone) {
		t.Fatal("clone differs from original")
	}

	clone.Offenses[0].WeaponCodes[0] = "99"
	clone.Arrestees[0].OffenseCodes[0] = "999"
	clone.Evidence.Items[0] = "altered"
	clone.Victims[0].Age = 99

	if original.Offenses[0].WeaponCodes[0] != "15" {
		t.Error("weapon codes aliased")
	}
	if original.Arrestees[0].OffenseCodes[0] != "13A" {
		t.Error("arrestee offense codes aliased")
	}
	if original.Evidence.Items[0] != "knife" {
		t.Error("evidence items aliased")
	}
	if original.Victims[0].Age != 34 {
		t.Error("victim slice aliased")
	}
}

func TestCloneNilEvidence(t *testing.T) {
	clone := NibrsSegments{}.Clone()
	if clone.Evidence != nil {
		t.Fatal("expected nil evidence to stay nil")
	}
}
