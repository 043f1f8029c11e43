package models

// DescriptiveExtract is the upstream input contract: a police narrative
// pre-parsed into loosely structured candidate fields by the extraction
// collaborator. It is immutable once received; the mapper builds a fresh
// NibrsSegments and never writes back into it.
type DescriptiveExtract struct {
	IncidentNumber string               `json:"incident_number"`
	IncidentDate   string               `json:"incident_date"`
	IncidentTime   string               `json:"incident_time,omitempty"`
	Offenses       []OffenseDescription `json:"offenses"`
	Location       string               `json:"location"`
	Weapons        []string             `json:"weapons,omitempty"`
	Victims        []PersonDescription  `json:"victims,omitempty"`
	Offenders      []PersonDescription  `json:"offenders,omitempty"`
	Properties     []PropertyExtract    `json:"properties,omitempty"`
	Narrative      string               `json:"narrative"`
}

// OffenseDescription is one candidate offense pulled from the narrative.
type OffenseDescription struct {
	Description string `json:"description"`
	Attempted   bool   `json:"attempted"`
}

// PersonDescription carries the descriptive attributes the extractor found
// for a victim or offender. Age is -1 when unknown so that a genuine age of
// zero survives the round trip.
type PersonDescription struct {
	Age          int    `json:"age"`
	Sex          string `json:"sex,omitempty"`
	Race         string `json:"race,omitempty"`
	Ethnicity    string `json:"ethnicity,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Injury       string `json:"injury,omitempty"`
}

// PropertyExtract is a free-text property mention with an estimated value.
type PropertyExtract struct {
	Description     string  `json:"description"`
	Value           float64 `json:"value"`
	LossDescription string  `json:"loss_description,omitempty"`
}
