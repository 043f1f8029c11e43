package templates

import "github.com/patrolsync/nibrs/internal/codes"

// OffenseTemplate is the per-offense-code completeness policy: which
// victim/offender attributes must be populated, and whether the offense
// must carry property or evidence.
type OffenseTemplate struct {
	Code                   string
	RequiredVictimFields   []string
	RequiredOffenderFields []string
	RequiresProperty       bool
	RequiresEvidence       bool
	Victimless             bool
}

// Victim and offender attribute names used by required-field lists.
const (
	FieldAge          = "age"
	FieldSex          = "sex"
	FieldRace         = "race"
	FieldInjury       = "injury"
	FieldRelationship = "relationship"
)

var personCrime = OffenseTemplate{
	RequiredVictimFields:   []string{FieldAge, FieldSex, FieldInjury},
	RequiredOffenderFields: []string{FieldSex},
}

var propertyCrime = OffenseTemplate{
	RequiredVictimFields: []string{FieldAge, FieldSex},
	RequiresProperty:     true,
}

var registry = map[string]OffenseTemplate{
	// Crimes against persons: full victim demographics and injury.
	"09A": withOffender(personCrime, FieldAge, FieldSex),
	"09B": personCrime,
	"100": {Victimless: true},
	"11A": withOffender(personCrime, FieldSex, FieldRelationship),
	"11B": personCrime,
	"11D": personCrime,
	"13A": personCrime,
	"13B": personCrime,
	"13C": {RequiredVictimFields: []string{FieldAge, FieldSex}},

	// Robbery is both: victim demographics plus the property taken.
	"120": {
		RequiredVictimFields:   []string{FieldAge, FieldSex, FieldInjury},
		RequiredOffenderFields: []string{FieldSex},
		RequiresProperty:       true,
	},

	// Crimes against property.
	"200": {RequiredVictimFields: []string{FieldAge, FieldSex}, RequiresProperty: true},
	"210": propertyCrime,
	"220": propertyCrime,
	"23A": propertyCrime,
	"23B": propertyCrime,
	"23C": propertyCrime,
	"23D": propertyCrime,
	"23F": propertyCrime,
	"23H": propertyCrime,
	"240": propertyCrime,
	"250": propertyCrime,
	"26A": propertyCrime,
	"26B": propertyCrime,
	"26C": propertyCrime,
	"26E": propertyCrime,
	"26F": propertyCrime,
	"26G": propertyCrime,
	"270": propertyCrime,
	"280": propertyCrime,
	"290": propertyCrime,

	// Victimless groups: no victim/offender field checks, evidence where
	// the charge hangs on the seized items.
	"35A": {Victimless: true, RequiresProperty: true, RequiresEvidence: true},
	"35B": {Victimless: true, RequiresEvidence: true},
	"39A": {Victimless: true},
	"370": {Victimless: true},
	"40A": {Victimless: true},
	"520": {Victimless: true, RequiresEvidence: true},
	"720": {Victimless: true},
	"90D": {Victimless: true},
	"90E": {Victimless: true},
}

func withOffender(base OffenseTemplate, fields ...string) OffenseTemplate {
	base.RequiredOffenderFields = append(append([]string(nil), base.RequiredOffenderFields...), fields...)
	return base
}

// For returns the template for an offense code, falling back to a
// permissive default with no required sub-fields for unknown codes.
func For(code string) OffenseTemplate {
	tpl, ok := registry[code]
	if !ok {
		return OffenseTemplate{Code: code}
	}
	tpl.Code = code
	// The victimless code set is authoritative even when a registry entry
	// predates it.
	if codes.IsVictimless(code) {
		tpl.Victimless = true
	}
	return tpl
}
