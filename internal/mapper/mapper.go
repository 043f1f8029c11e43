package mapper

import (
	"fmt"
	"strings"
	"time"

	"github.com/patrolsync/nibrs/internal/codes"
	"github.com/patrolsync/nibrs/internal/fieldassist"
	"github.com/patrolsync/nibrs/internal/models"
)

// MappingFailure is the fatal classification error: no offense survived
// mapping and filtering, so the record cannot be classified at all. The
// caller must resubmit with a richer narrative.
type MappingFailure struct {
	Reason   string
	Warnings []string
}

func (e *MappingFailure) Error() string {
	return e.Reason
}

// Mapper transforms a DescriptiveExtract into a populated, code-normalized
// NibrsSegments. It holds no mutable state and is safe for concurrent use.
type Mapper struct {
	now func() time.Time
}

// New constructs a Mapper.
func New() *Mapper {
	return &Mapper{now: time.Now}
}

// MapExtract deterministically transforms the extract into a NIBRS
// record. It returns a *MappingFailure when zero offenses survive
// classification and filtering; warnings accumulate for every dropped
// segment so the caller can see why something disappeared.
func (m *Mapper) MapExtract(extract models.DescriptiveExtract) (models.NibrsSegments, []string, error) {
	var warnings []string

	arrestEvidence := WasClearedByArrest(extract.Narrative)

	var offenses []models.Offense
	for _, desc := range extract.Offenses {
		if !IsWithinCurrentIncident(desc.Description, extract.Narrative) {
			warnings = append(warnings, fmt.Sprintf("offense %q describes a prior incident and was excluded", desc.Description))
			continue
		}

		result := m.MapOffense(desc.Description)
		if !result.Matched() {
			warnings = append(warnings, fmt.Sprintf("offense %q could not be classified", desc.Description))
			continue
		}

		// Group B offenses are arrest-only reporting: without arrest
		// evidence in the narrative they are not reportable.
		if codes.IsGroupB(result.Code) && !arrestEvidence {
			warnings = append(warnings, fmt.Sprintf("Group B offense %s (%q) dropped: no arrest evidence in narrative", result.Code, desc.Description))
			continue
		}

		attempted := "C"
		if desc.Attempted {
			attempted = "A"
		}

		offenses = append(offenses, models.Offense{
			Code:               result.Code,
			Description:        desc.Description,
			AttemptedCompleted: attempted,
			Confidence:         result.Confidence,
		})
	}

	if len(offenses) == 0 {
		return models.NibrsSegments{}, warnings, &MappingFailure{
			Reason:   "no reportable offense could be classified from the provided narrative",
			Warnings: warnings,
		}
	}

	// Weapons attach to the first offense; NIBRS reports weapon involvement
	// per offense and the extract does not say which offense each belongs to.
	if len(extract.Weapons) > 0 {
		seen := map[string]bool{}
		for _, w := range extract.Weapons {
			mapped := m.MapWeapon(w)
			if mapped.Code != "" && !seen[mapped.Code] {
				seen[mapped.Code] = true
				offenses[0].WeaponCodes = append(offenses[0].WeaponCodes, mapped.Code)
			}
		}
	}

	location := m.MapLocation(extract.Location)

	segments := models.NibrsSegments{
		Administrative: models.Administrative{
			IncidentNumber: extract.IncidentNumber,
			IncidentDate:   extract.IncidentDate,
			IncidentTime:   extract.IncidentTime,
		},
		Offenses:     offenses,
		LocationCode: location.Code,
		Narrative:    extract.Narrative,
	}

	if arrestEvidence {
		segments.Administrative.ClearedBy = "A"
	}

	segments.Victims = m.AssignVictims(offenses, extract)
	segments.Properties = m.mapProperties(extract, offenses)
	segments.Offenders = m.mapOffenders(extract)
	segments.Evidence = ExtractEvidence(extract.Narrative)

	if arrestEvidence {
		arrestees := ExtractArrestees(extract.Narrative, extract.IncidentDate)
		offenseCodes := make([]string, len(offenses))
		for i, o := range offenses {
			offenseCodes[i] = o.Code
		}
		for i := range arrestees {
			arrestees[i].OffenseCodes = append([]string(nil), offenseCodes...)
		}
		segments.Arrestees = arrestees
	}

	return m.FillRequiredDefaults(segments), warnings, nil
}

func (m *Mapper) mapProperties(extract models.DescriptiveExtract, offenses []models.Offense) []models.Property {
	primaryOffense := offenses[0].Code

	var props []models.Property
	seen := map[string]bool{}

	for _, p := range extract.Properties {
		key := strings.ToLower(strings.TrimSpace(p.Description))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		mapped := m.MapProperty(p.Description)
		prop := models.Property{
			DescriptionCode: mapped.Code,
			Description:     p.Description,
			Value:           p.Value,
			LossType:        m.MapLossType(p.LossDescription, primaryOffense),
		}
		if mapped.Code == codes.PropertyDrugs {
			prop.DrugQuantity, prop.DrugMeasurement = ExtractDrugQuantity(p.Description)
			if prop.DrugQuantity == "" {
				prop.DrugQuantity, prop.DrugMeasurement = ExtractDrugQuantity(extract.Narrative)
			}
		}
		props = append(props, prop)
	}

	for _, p := range m.ExtractProperties(extract.Narrative) {
		key := strings.ToLower(strings.TrimSpace(p.Description))
		if seen[key] {
			continue
		}
		seen[key] = true
		p.LossType = m.MapLossType("", primaryOffense)
		if p.DescriptionCode == codes.PropertyDrugs {
			p.DrugQuantity, p.DrugMeasurement = ExtractDrugQuantity(extract.Narrative)
		}
		props = append(props, p)
	}

	return props
}

func (m *Mapper) mapOffenders(extract models.DescriptiveExtract) []models.Offender {
	var offenders []models.Offender
	for _, o := range extract.Offenders {
		relationship := m.MapRelationship(o.Relationship, extract.Narrative)
		offenders = append(offenders, models.Offender{
			Age:          o.Age,
			Sex:          normalizeSex(o.Sex),
			Race:         normalizeRace(o.Race),
			Ethnicity:    normalizeEthnicity(o.Ethnicity),
			Relationship: relationship.Code,
		})
	}
	return offenders
}

// MapReport is the structured outcome of ValidateAndMap: either a mapped
// record, or the errors and missing fields that explain why there is none.
type MapReport struct {
	OK            bool                  `json:"ok"`
	Segments      *models.NibrsSegments `json:"segments,omitempty"`
	Errors        []string              `json:"errors"`
	Warnings      []string              `json:"warnings"`
	MissingFields []string              `json:"missing_fields"`
}

// ValidateAndMap wraps MapExtract, converting a MappingFailure into a
// structured report instead of propagating it, and flags any offense
// whose mapping confidence fell below the review threshold.
func (m *Mapper) ValidateAndMap(extract models.DescriptiveExtract) MapReport {
	segments, warnings, err := m.MapExtract(extract)
	if err != nil {
		report := MapReport{
			Errors:        []string{err.Error()},
			Warnings:      warnings,
			MissingFields: []string{"offenses"},
		}
		return report
	}

	for _, o := range segments.Offenses {
		if o.Confidence < fieldassist.ReviewThreshold {
			warnings = append(warnings, fmt.Sprintf("offense %s mapped with low confidence (%.2f), review recommended", o.Code, o.Confidence))
		}
	}

	return MapReport{
		OK:       true,
		Segments: &segments,
		Warnings: warnings,
	}
}
