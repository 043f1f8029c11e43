package models

// NibrsSegments is the canonical mapped record: one incident expressed as
// NIBRS segment arrays plus the verbatim narrative it was derived from.
type NibrsSegments struct {
	Administrative Administrative `json:"administrative"`
	Offenses       []Offense      `json:"offenses"`
	Victims        []Victim       `json:"victims"`
	Offenders      []Offender     `json:"offenders"`
	Properties     []Property     `json:"properties"`
	Arrestees      []Arrestee     `json:"arrestees"`
	Evidence       *Evidence      `json:"evidence,omitempty"`
	LocationCode   string         `json:"location_code"`
	Narrative      string         `json:"narrative"`
}

// Administrative is the incident-level segment.
type Administrative struct {
	IncidentNumber           string `json:"incident_number"`
	IncidentDate             string `json:"incident_date"`
	IncidentTime             string `json:"incident_time,omitempty"`
	ClearedExceptionally     string `json:"cleared_exceptionally"` // "Y" or "N"
	ExceptionalClearanceDate string `json:"exceptional_clearance_date,omitempty"`
	ClearedBy                string `json:"cleared_by,omitempty"` // "A" when cleared by arrest
}

// Offense is one offense segment. SequenceNumber is 1-based and dense;
// array order is authoritative and renumbering is derived from it.
type Offense struct {
	SequenceNumber     int      `json:"sequence_number"`
	Code               string   `json:"code"`
	Description        string   `json:"description"`
	AttemptedCompleted string   `json:"attempted_completed"` // "A" or "C"
	WeaponCodes        []string `json:"weapon_codes,omitempty"`
	Confidence         float64  `json:"confidence"`
}

// VictimType classifies who the offense was committed against.
type VictimType string

const (
	VictimTypeIndividual VictimType = "I"
	VictimTypeBusiness   VictimType = "B"
	VictimTypeSociety    VictimType = "S"
	VictimTypeGovernment VictimType = "G"
	VictimTypeFinancial  VictimType = "F"
	VictimTypeReligious  VictimType = "R"
	VictimTypeOther      VictimType = "O"
	VictimTypeUnknown    VictimType = "U"
)

// ValidVictimTypes is the closed set accepted by structural validation.
var ValidVictimTypes = []VictimType{
	VictimTypeIndividual, VictimTypeBusiness, VictimTypeSociety,
	VictimTypeGovernment, VictimTypeFinancial, VictimTypeReligious,
	VictimTypeOther, VictimTypeUnknown,
}

// Victim is one victim segment. Age is -1 when unknown.
type Victim struct {
	SequenceNumber int        `json:"sequence_number"`
	Type           VictimType `json:"type"`
	Age            int        `json:"age"`
	Sex            string     `json:"sex,omitempty"`
	Race           string     `json:"race,omitempty"`
	Ethnicity      string     `json:"ethnicity,omitempty"`
	InjuryCode     string     `json:"injury_code,omitempty"`
}

// Offender is one offender segment.
type Offender struct {
	SequenceNumber int    `json:"sequence_number"`
	Age            int    `json:"age"`
	Sex            string `json:"sex,omitempty"`
	Race           string `json:"race,omitempty"`
	Ethnicity      string `json:"ethnicity,omitempty"`
	Relationship   string `json:"relationship,omitempty"`
}

// Property is one property segment. LossType is the NIBRS type-of-loss
// code, valid range 1-9.
type Property struct {
	SequenceNumber  int     `json:"sequence_number"`
	DescriptionCode string  `json:"description_code"`
	Description     string  `json:"description"`
	LossType        int     `json:"loss_type"`
	Value           float64 `json:"value"`
	Seized          bool    `json:"seized"`
	DrugQuantity    string  `json:"drug_quantity,omitempty"`
	DrugMeasurement string  `json:"drug_measurement,omitempty"`
}

// ArrestType is the NIBRS type-of-arrest code.
type ArrestType string

const (
	ArrestTypeOnView           ArrestType = "O"
	ArrestTypeSummoned         ArrestType = "S"
	ArrestTypeTakenIntoCustody ArrestType = "T"
)

// ValidArrestTypes is the closed set accepted by structural validation.
var ValidArrestTypes = []ArrestType{ArrestTypeOnView, ArrestTypeSummoned, ArrestTypeTakenIntoCustody}

// Arrestee is one arrestee segment with the offense codes it is charged
// under. Populated only when the narrative carries arrest evidence.
type Arrestee struct {
	SequenceNumber int        `json:"sequence_number"`
	Name           string     `json:"name,omitempty"`
	ArrestDate     string     `json:"arrest_date"`
	ArrestType     ArrestType `json:"arrest_type"`
	Age            int        `json:"age"`
	Sex            string     `json:"sex,omitempty"`
	Race           string     `json:"race,omitempty"`
	OffenseCodes   []string   `json:"offense_codes"`
}

// Evidence describes seized or collected items backing the record.
type Evidence struct {
	Items       []string `json:"items"`
	Description string   `json:"description,omitempty"`
}

// Age bounds applied by the normalization pass and re-checked structurally.
const (
	AgeMin     = 0
	AgeMax     = 130
	AgeUnknown = -1
)

// Loss type code bounds.
const (
	LossTypeMin = 1
	LossTypeMax = 9
)

// Clone returns a deep copy so normalization can operate without aliasing
// the caller's slices.
func (s NibrsSegments) Clone() NibrsSegments {
	out := s
	out.Offenses = make([]Offense, len(s.Offenses))
	for i, o := range s.Offenses {
		o.WeaponCodes = append([]string(nil), o.WeaponCodes...)
		out.Offenses[i] = o
	}
	out.Victims = append([]Victim(nil), s.Victims...)
	out.Offenders = append([]Offender(nil), s.Offenders...)
	out.Properties = append([]Property(nil), s.Properties...)
	out.Arrestees = make([]Arrestee, len(s.Arrestees))
	for i, a := range s.Arrestees {
		a.OffenseCodes = append([]string(nil), a.OffenseCodes...)
		out.Arrestees[i] = a
	}
	if s.Evidence != nil {
		ev := Evidence{
			Items:       append([]string(nil), s.Evidence.Items...),
			Description: s.Evidence.Description,
		}
		out.Evidence = &ev
	}
	return out
}
