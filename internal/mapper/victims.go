package mapper

import (
	"strings"

	"github.com/patrolsync/nibrs/internal/codes"
	"github.com/patrolsync/nibrs/internal/models"
)

// AssignVictims applies the professional victim policy across the full
// offense list. A victimless offense anywhere in the record demands
// exactly one synthetic Society victim. A non-victimless offense uses the
// extracted victims verbatim; when extraction produced none and the
// record includes a violent offense, one default Individual victim with
// an assumed injury is synthesized so a serious crime is not rejected
// purely for an upstream extraction gap.
func (m *Mapper) AssignVictims(offenses []models.Offense, extract models.DescriptiveExtract) []models.Victim {
	hasVictimless := false
	hasNonVictimless := false
	hasViolent := false

	for _, o := range offenses {
		if codes.IsVictimless(o.Code) {
			hasVictimless = true
		} else {
			hasNonVictimless = true
		}
		if codes.IsViolent(o.Code) {
			hasViolent = true
		}
	}

	var victims []models.Victim

	if hasVictimless {
		victims = append(victims, models.Victim{
			Type: models.VictimTypeSociety,
			Age:  models.AgeUnknown,
		})
	}

	if hasNonVictimless {
		switch {
		case len(extract.Victims) > 0:
			for _, v := range extract.Victims {
				victims = append(victims, models.Victim{
					Type:       models.VictimTypeIndividual,
					Age:        v.Age,
					Sex:        normalizeSex(v.Sex),
					Race:       normalizeRace(v.Race),
					Ethnicity:  normalizeEthnicity(v.Ethnicity),
					InjuryCode: mapInjury(v.Injury),
				})
			}
		case hasViolent:
			// Injury assumed present: the offense class implies contact.
			victims = append(victims, models.Victim{
				Type:       models.VictimTypeIndividual,
				Age:        models.AgeUnknown,
				Sex:        "U",
				InjuryCode: "M",
			})
		}
	}

	return victims
}

func normalizeSex(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male", "man":
		return "M"
	case "f", "female", "woman":
		return "F"
	case "":
		return ""
	default:
		return "U"
	}
}

func normalizeRace(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white", "caucasian":
		return "W"
	case "b", "black", "african american", "african-american":
		return "B"
	case "a", "asian":
		return "A"
	case "i", "american indian", "native american", "alaska native":
		return "I"
	case "p", "pacific islander", "native hawaiian":
		return "P"
	case "":
		return ""
	default:
		return "U"
	}
}

func normalizeEthnicity(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hispanic", "latino", "latina":
		return "H"
	case "n", "non-hispanic", "not hispanic":
		return "N"
	case "":
		return ""
	default:
		return "U"
	}
}
