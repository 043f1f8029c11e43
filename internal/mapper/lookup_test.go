package mapper

import (
	"testing"

	"github.com/patrolsync/nibrs/internal/codes"
)

func TestMapLocation(t *testing.T) {
	m := New()

	tests := []struct {
		input string
		code  string
	}{
		{"apartment on the east side", "20"},
		{"intersection of 5th and Main", "13"},
		{"parking lot of the mall", "18"},
		{"convenience store", "07"},
		{"high school campus", "22"},
		{"downtown bank", "02"},
	}

	for _, tt := range tests {
		result := m.MapLocation(tt.input)
		if result.Code != tt.code {
			t.Errorf("MapLocation(%q) = %s, want %s", tt.input, result.Code, tt.code)
		}
	}
}

func TestMapLocationUnknownFallsToFirstEntry(t *testing.T) {
	m := New()

	result := m.MapLocation("unspecified rural area")
	if result.Code != codes.Locations.First().Code {
		t.Fatalf("expected first-entry code, got %q", result.Code)
	}
	if result.Confidence != confidenceLastResort {
		t.Errorf("confidence = %.2f, want %.2f", result.Confidence, confidenceLastResort)
	}
}

func TestMapWeapon(t *testing.T) {
	m := New()

	tests := []struct {
		input string
		code  string
	}{
		{"9mm Glock handgun", "12"},
		{"hunting rifle", "13"},
		{"kitchen knife", "15"},
		{"baseball bat", "30"},
		{"punched with fists", "40"},
		{"armed suspect", "11"},
	}

	for _, tt := range tests {
		result := m.MapWeapon(tt.input)
		if result.Code != tt.code {
			t.Errorf("MapWeapon(%q) = %s, want %s", tt.input, result.Code, tt.code)
		}
	}
}

func TestMapProperty(t *testing.T) {
	m := New()

	tests := []struct {
		input string
		code  string
	}{
		{"28 grams of marijuana", "10"},
		{"$450 in cash", "20"},
		{"Samsung television", "29"},
		{"MacBook laptop", "07"},
		{"gold necklace", "17"},
		{"stolen sedan", "03"},
	}

	for _, tt := range tests {
		result := m.MapProperty(tt.input)
		if result.Code != tt.code {
			t.Errorf("MapProperty(%q) = %s, want %s", tt.input, result.Code, tt.code)
		}
	}
}

func TestMapRelationship(t *testing.T) {
	m := New()

	tests := []struct {
		name       string
		text       string
		narrative  string
		code       string
		confidence float64
	}{
		{name: "explicit ex-spouse", text: "ex-husband", code: "XS", confidence: confidenceGroupA},
		{name: "explicit stranger", text: "stranger", code: "ST", confidence: confidenceGroupA},
		{name: "narrative acquaintance", text: "", narrative: "witnesses stated the two men knew each other", code: codes.RelationshipAcquaintance, confidence: 0.6},
		{name: "nothing to go on", text: "", narrative: "", code: codes.RelationshipUnknown, confidence: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := m.MapRelationship(tt.text, tt.narrative)
			if result.Code != tt.code {
				t.Errorf("code = %s, want %s", result.Code, tt.code)
			}
			if result.Confidence != tt.confidence {
				t.Errorf("confidence = %.2f, want %.2f", result.Confidence, tt.confidence)
			}
		})
	}
}

func TestMapLossType(t *testing.T) {
	m := New()

	tests := []struct {
		name        string
		description string
		offense     string
		want        int
	}{
		{name: "explicit stolen", description: "stolen from the vehicle", offense: "13A", want: 7},
		{name: "explicit damaged", description: "damaged beyond repair", offense: "23H", want: 4},
		{name: "explicit seized", description: "seized as evidence", offense: "35A", want: 6},
		{name: "explicit recovered", description: "recovered at the pawn shop", offense: "23H", want: 5},
		{name: "silent theft offense", description: "", offense: "23H", want: 7},
		{name: "silent burglary", description: "", offense: "220", want: 7},
		{name: "silent non-theft", description: "", offense: "13A", want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.MapLossType(tt.description, tt.offense); got != tt.want {
				t.Errorf("MapLossType(%q, %s) = %d, want %d", tt.description, tt.offense, got, tt.want)
			}
		})
	}
}

func TestMapInjury(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"no injuries reported", "N"},
		{"deep laceration to the forearm", "L"},
		{"broken arm", "B"},
		{"minor bruising", "M"},
		{"gunshot wound to the leg", "O"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := mapInjury(tt.input); got != tt.want {
			t.Errorf("mapInjury(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
