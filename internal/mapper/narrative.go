package mapper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/patrolsync/nibrs/internal/codes"
	"github.com/patrolsync/nibrs/internal/models"
)

// WasClearedByArrest reports whether the narrative carries arrest
// evidence: an arrest, booking, citation, or summons.
func WasClearedByArrest(narrative string) bool {
	return codes.ContainsAny(narrative, codes.ArrestEvidenceKeywords)
}

// IsWithinCurrentIncident filters out segments describing prior incidents
// rather than the one being reported. Text with retrospective language is
// excluded unless the surrounding narrative shows present-tense action;
// anything ambiguous is included. Recall over precision: an over-included
// historical fact still reaches review, a dropped current fact is gone.
func IsWithinCurrentIncident(text, narrative string) bool {
	if !codes.ContainsAny(text, codes.RetrospectiveIndicators) {
		return true
	}
	return codes.ContainsAny(narrative, codes.PresentActionVerbs)
}

var (
	custodyPattern   = regexp.MustCompile(`(?i)(taken into custody|in custody|placed under arrest)`)
	summonsPattern   = regexp.MustCompile(`(?i)(cited|citation issued|summons|summoned)`)
	arrestPattern    = regexp.MustCompile(`(?i)(arrested|booked|apprehended|taken into custody|placed under arrest|cited|citation issued|summons|summoned)`)
	arrestNameAfter  = regexp.MustCompile(`(?i)(?:arrested|apprehended|booked|took into custody)\s+(?:suspect\s+)?([A-Z][a-z]+(?:\s[A-Z][a-z]+)+)`)
	arrestNameBefore = regexp.MustCompile(`([A-Z][a-z]+(?:\s[A-Z][a-z]+)+)\s+was\s+(?:arrested|taken into custody|booked|apprehended|cited)`)
)

// ExtractArrestees pulls arrestee segments from the narrative: names
// captured near arrest verbs, deduplicated, or a single unnamed arrestee
// when arrest evidence exists without a capturable name. Returns nil when
// the narrative carries no arrest evidence at all.
func ExtractArrestees(narrative, arrestDate string) []models.Arrestee {
	if !arrestPattern.MatchString(narrative) {
		return nil
	}

	arrestType := models.ArrestTypeOnView
	if custodyPattern.MatchString(narrative) {
		arrestType = models.ArrestTypeTakenIntoCustody
	} else if summonsPattern.MatchString(narrative) {
		arrestType = models.ArrestTypeSummoned
	}

	seen := map[string]bool{}
	var names []string
	for _, re := range []*regexp.Regexp{arrestNameAfter, arrestNameBefore} {
		for _, match := range re.FindAllStringSubmatch(narrative, -1) {
			name := strings.TrimSpace(match[1])
			key := strings.ToLower(name)
			if !seen[key] {
				seen[key] = true
				names = append(names, name)
			}
		}
	}

	if len(names) == 0 {
		names = []string{""}
	}

	arrestees := make([]models.Arrestee, 0, len(names))
	for i, name := range names {
		arrestees = append(arrestees, models.Arrestee{
			SequenceNumber: i + 1,
			Name:           name,
			ArrestDate:     arrestDate,
			ArrestType:     arrestType,
			Age:            models.AgeUnknown,
		})
	}
	return arrestees
}

var (
	moneyPattern   = regexp.MustCompile(`\$\s?([\d,]+(?:\.\d{2})?)`)
	itemPattern    = regexp.MustCompile(`(?i)\b(laptop|computer|tablet|television|tv|stereo|phone|iphone|smartphone|jewelry|ring|necklace|watch|wallet|purse|handbag|bicycle|tools|firearm|handgun|pistol|rifle|shotgun|cash|currency)\b`)
	drugQtyPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(grams?|ounces?|oz|pounds?|lbs?|kilograms?|kg|pills?|tablets?)\s+of\s+(\w+)`)
)

// ExtractProperties pulls property segments out of the narrative:
// monetary amounts become money entries, item nouns become typed entries.
// Entries are deduplicated by normalized description.
func (m *Mapper) ExtractProperties(narrative string) []models.Property {
	var props []models.Property
	seen := map[string]bool{}

	for _, match := range moneyPattern.FindAllStringSubmatch(narrative, -1) {
		value, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
		if err != nil {
			continue
		}
		if seen["money"] {
			continue
		}
		seen["money"] = true
		props = append(props, models.Property{
			DescriptionCode: "20",
			Description:     "cash",
			Value:           value,
		})
	}

	for _, match := range itemPattern.FindAllString(narrative, -1) {
		key := strings.ToLower(match)
		if key == "cash" || key == "currency" {
			key = "money"
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		mapped := m.MapProperty(match)
		props = append(props, models.Property{
			DescriptionCode: mapped.Code,
			Description:     strings.ToLower(match),
		})
	}

	return props
}

// ExtractDrugQuantity pulls a drug quantity and unit of measure from
// text, returning empty strings when none is present.
func ExtractDrugQuantity(text string) (quantity, measurement string) {
	match := drugQtyPattern.FindStringSubmatch(text)
	if match == nil {
		return "", ""
	}
	return match[1], strings.ToLower(match[2])
}

var evidencePattern = regexp.MustCompile(`(?i)\b(?:\d+(?:\.\d+)?\s*(?:grams?|ounces?|oz|pounds?|kilograms?|kg|pills?)\s+of\s+\w+|firearm|handgun|pistol|revolver|rifle|shotgun|ammunition|shell casings?|knife|marijuana|cocaine|heroin|methamphetamine|fentanyl|narcotics|drug paraphernalia|scale|baggies)\b`)

// ExtractEvidence pulls seized-item evidence from the narrative, nil when
// nothing evidentiary is mentioned.
func ExtractEvidence(narrative string) *models.Evidence {
	matches := evidencePattern.FindAllString(narrative, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := map[string]bool{}
	var items []string
	for _, match := range matches {
		key := strings.ToLower(match)
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, key)
	}

	return &models.Evidence{Items: items}
}
