package mapper

import (
	"regexp"
	"strings"

	"github.com/patrolsync/nibrs/internal/codes"
	"github.com/patrolsync/nibrs/internal/models"
)

// Domain regexes tried before the generic fuzzy scorer. High confidence
// because they capture unambiguous phrasings.
type domainRule struct {
	pattern *regexp.Regexp
	code    string
}

var locationRules = []domainRule{
	{regexp.MustCompile(`(?i)\b(residence|apartment|house|home|dwelling)\b`), "20"},
	{regexp.MustCompile(`(?i)\b(street|highway|road|intersection|alley|sidewalk)\b`), "13"},
	{regexp.MustCompile(`(?i)\bparking (lot|garage)\b`), "18"},
	{regexp.MustCompile(`(?i)\bconvenience store\b`), "07"},
	{regexp.MustCompile(`(?i)\b(gas|service) station\b`), "23"},
	{regexp.MustCompile(`(?i)\b(school|college|university|campus)\b`), "22"},
	{regexp.MustCompile(`(?i)\b(bar|nightclub|tavern)\b`), "03"},
	{regexp.MustCompile(`(?i)\bbank\b`), "02"},
}

var locationFallback = codes.Table{
	{Keyword: "store", Code: "12"},
	{Keyword: "shop", Code: "24"},
	{Keyword: "business", Code: "05"},
	{Keyword: "outside", Code: "13"},
	{Keyword: "inside", Code: "20"},
	{Keyword: "building", Code: "05"},
}

var weaponRules = []domainRule{
	{regexp.MustCompile(`(?i)\b(handgun|pistol|revolver|9 ?mm|glock)\b`), "12"},
	{regexp.MustCompile(`(?i)\brifle\b`), "13"},
	{regexp.MustCompile(`(?i)\bshotgun\b`), "14"},
	{regexp.MustCompile(`(?i)\b(knife|blade|box cutter|machete)\b`), "15"},
	{regexp.MustCompile(`(?i)\b(bat|club|pipe|hammer|blunt)\b`), "30"},
	{regexp.MustCompile(`(?i)\b(fists?|hands|feet|kicked|punched)\b`), "40"},
}

var weaponFallback = codes.Table{
	{Keyword: "armed", Code: "11"},
	{Keyword: "weapon", Code: "90"},
	{Keyword: "object", Code: "90"},
}

var propertyRules = []domainRule{
	{regexp.MustCompile(`(?i)\b(marijuana|cocaine|heroin|methamphetamine|fentanyl|narcotics|pills)\b`), "10"},
	{regexp.MustCompile(`(?i)\b(cash|currency|money)\b`), "20"},
	{regexp.MustCompile(`(?i)\b(car|automobile|truck|suv|sedan|vehicle)\b`), "03"},
	{regexp.MustCompile(`(?i)\b(handgun|pistol|rifle|shotgun|firearm)\b`), "13"},
	{regexp.MustCompile(`(?i)\b(laptop|computer|tablet|macbook)\b`), "07"},
	{regexp.MustCompile(`(?i)\b(phone|iphone|smartphone|cell)\b`), "71"},
	{regexp.MustCompile(`(?i)\b(television|tv|stereo|speaker)\b`), "29"},
	{regexp.MustCompile(`(?i)\b(jewelry|ring|necklace|watch|bracelet)\b`), "17"},
	{regexp.MustCompile(`(?i)\b(wallet|purse|handbag)\b`), "28"},
}

var propertyFallback = codes.Table{
	{Keyword: "electronics", Code: "29"},
	{Keyword: "valuables", Code: "17"},
	{Keyword: "goods", Code: "19"},
	{Keyword: "equipment", Code: "23"},
	{Keyword: "items", Code: "77"},
}

// MapLocation converts a free-text location description into a NIBRS
// location code.
func (m *Mapper) MapLocation(text string) models.MappingResult {
	return mapWithRules(text, locationRules, codes.Locations, locationFallback)
}

// MapWeapon converts a free-text weapon description into a NIBRS weapon
// or force code.
func (m *Mapper) MapWeapon(text string) models.MappingResult {
	return mapWithRules(text, weaponRules, codes.Weapons, weaponFallback)
}

// MapProperty converts a free-text property description into a NIBRS
// property description code.
func (m *Mapper) MapProperty(text string) models.MappingResult {
	return mapWithRules(text, propertyRules, codes.Properties, propertyFallback)
}

func mapWithRules(text string, rules []domainRule, table codes.Table, fallback codes.Table) models.MappingResult {
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			return models.MappingResult{Code: r.code, Confidence: confidencePattern, OriginalInput: text}
		}
	}
	return findBestMatch(text, table, fallback)
}

// MapRelationship converts relationship text into a NIBRS relationship
// code. When the explicit text is empty or unrecognized, narrative
// context can still imply an acquaintance; otherwise the relationship is
// reported unknown.
func (m *Mapper) MapRelationship(text, narrative string) models.MappingResult {
	result := models.MappingResult{OriginalInput: text}

	lower := strings.ToLower(strings.TrimSpace(text))
	if lower != "" {
		for _, e := range codes.Relationships {
			if strings.Contains(lower, e.Keyword) {
				result.Code = e.Code
				result.Confidence = confidenceGroupA
				return result
			}
		}
	}

	if codes.ContainsAny(narrative, codes.AcquaintanceContext) {
		result.Code = codes.RelationshipAcquaintance
		result.Confidence = 0.6
		return result
	}

	result.Code = codes.RelationshipUnknown
	result.Confidence = 0.3
	return result
}

var lossTypeKeywords = []struct {
	keyword string
	code    int
}{
	{"counterfeit", 3},
	{"forged", 3},
	{"burned", 2},
	{"destroyed", 4},
	{"damaged", 4},
	{"vandalized", 4},
	{"recovered", 5},
	{"seized", 6},
	{"confiscated", 6},
	{"stolen", 7},
	{"taken", 7},
	{"none", 1},
}

// theftOffenses are codes where an unlabeled property loss defaults to
// stolen rather than unknown.
var theftOffenses = map[string]bool{
	"120": true, "220": true, "23A": true, "23B": true, "23C": true,
	"23D": true, "23F": true, "23H": true, "240": true, "280": true,
}

// MapLossType converts a loss description into the NIBRS type-of-loss
// code (1-9), using the offense code to break ties when the description
// is silent.
func (m *Mapper) MapLossType(lossDescription, offenseCode string) int {
	lower := strings.ToLower(lossDescription)
	for _, k := range lossTypeKeywords {
		if strings.Contains(lower, k.keyword) {
			return k.code
		}
	}
	if theftOffenses[offenseCode] {
		return 7
	}
	return 8 // unknown
}

var injuryKeywords = []struct {
	keyword string
	code    string
}{
	{"no injur", "N"},
	{"uninjured", "N"},
	{"broken", "B"},
	{"fracture", "B"},
	{"internal", "I"},
	{"laceration", "L"},
	{"cut", "L"},
	{"stab", "L"},
	{"teeth", "T"},
	{"unconscious", "U"},
	{"minor", "M"},
	{"bruis", "M"},
	{"abrasion", "M"},
	{"serious", "O"},
	{"severe", "O"},
	{"gunshot", "O"},
}

// mapInjury converts injury text into a NIBRS injury code, empty when the
// text gives nothing to go on.
func mapInjury(text string) string {
	lower := strings.ToLower(text)
	for _, k := range injuryKeywords {
		if strings.Contains(lower, k.keyword) {
			return k.code
		}
	}
	return ""
}
