package mapper

import (
	"fmt"

	"github.com/patrolsync/nibrs/internal/codes"
	"github.com/patrolsync/nibrs/internal/models"
)

// FillRequiredDefaults is the normalization pass: it fills the incident
// number and clearance flag defaults, re-applies the within-incident
// filter to every segment array, clamps ages, marks drug properties
// seized, and re-derives dense 1-based sequence numbers from array order.
// It operates on a deep copy and is idempotent: applying it twice yields
// an identical record.
func (m *Mapper) FillRequiredDefaults(segments models.NibrsSegments) models.NibrsSegments {
	out := segments.Clone()

	if out.Administrative.IncidentNumber == "" {
		out.Administrative.IncidentNumber = fmt.Sprintf("IN-%d", m.now().Unix())
	}
	if out.Administrative.ClearedExceptionally == "" {
		out.Administrative.ClearedExceptionally = "N"
	}

	// Drop segments describing prior incidents, then renumber from the
	// surviving order.
	offenses := out.Offenses[:0]
	for _, o := range out.Offenses {
		if IsWithinCurrentIncident(o.Description, out.Narrative) {
			offenses = append(offenses, o)
		}
	}
	out.Offenses = offenses

	properties := out.Properties[:0]
	for _, p := range out.Properties {
		if IsWithinCurrentIncident(p.Description, out.Narrative) {
			properties = append(properties, p)
		}
	}
	out.Properties = properties

	for i := range out.Offenses {
		out.Offenses[i].SequenceNumber = i + 1
		if out.Offenses[i].AttemptedCompleted == "" {
			out.Offenses[i].AttemptedCompleted = "C"
		}
	}
	for i := range out.Victims {
		out.Victims[i].SequenceNumber = i + 1
		out.Victims[i].Age = clampAge(out.Victims[i].Age)
	}
	for i := range out.Offenders {
		out.Offenders[i].SequenceNumber = i + 1
		out.Offenders[i].Age = clampAge(out.Offenders[i].Age)
	}
	for i := range out.Properties {
		out.Properties[i].SequenceNumber = i + 1
		if out.Properties[i].DescriptionCode == codes.PropertyDrugs {
			out.Properties[i].Seized = true
			if out.Properties[i].LossType == 0 {
				out.Properties[i].LossType = 6
			}
		}
		if out.Properties[i].Value < 0 {
			out.Properties[i].Value = 0
		}
	}
	for i := range out.Arrestees {
		out.Arrestees[i].SequenceNumber = i + 1
		out.Arrestees[i].Age = clampAge(out.Arrestees[i].Age)
		if out.Arrestees[i].ArrestDate == "" {
			out.Arrestees[i].ArrestDate = out.Administrative.IncidentDate
		}
	}

	return out
}

// clampAge forces an age into [AgeMin, AgeMax]. The unknown sentinel is
// preserved so a clamped zero stays distinguishable from "not reported".
func clampAge(age int) int {
	if age == models.AgeUnknown {
		return age
	}
	if age < models.AgeMin {
		return models.AgeMin
	}
	if age > models.AgeMax {
		return models.AgeMax
	}
	return age
}
