package mapper

import (
	"regexp"
	"strings"

	"github.com/patrolsync/nibrs/internal/codes"
	"github.com/patrolsync/nibrs/internal/models"
)

// Classification confidence tiers. Pattern rules outrank keyword table
// lookups, and Group A lookups outrank Group B.
const (
	confidencePattern    = 0.9
	confidenceGroupA     = 0.85
	confidenceGroupB     = 0.8
	confidenceFallback   = 0.7
	confidenceLastResort = 0.2
	matchAcceptanceFloor = 0.5
)

// offenseRule is one entry in the ordered classification cascade. Rules
// are evaluated top to bottom and the first match wins, so position
// encodes priority: more specific or more serious categories come first.
type offenseRule struct {
	category string
	pattern  *regexp.Regexp
	code     string
}

var offenseRules = []offenseRule{
	{"homicide", regexp.MustCompile(`(?i)\b(murder(ed)?|homicide|fatally (shot|stabbed)|shot and killed|stabbed to death|beaten to death)\b`), "09A"},
	{"sex offense", regexp.MustCompile(`(?i)\b(raped?|sexual(ly)? assault(ed)?|molest(ed|ation)?|fondl(ed|ing)|sodomy)\b`), "11A"},
	{"robbery", regexp.MustCompile(`(?i)\b(robbery|robbed|at gunpoint|at knifepoint|demanded (money|cash|property|the)|carjack(ed|ing)?)\b`), "120"},
	{"aggravated assault", regexp.MustCompile(`(?i)\b(aggravated assault|assault(ed)? with a|stabbed|shot (him|her|the victim)|struck with a|beat(en)? with)\b`), "13A"},
	{"simple assault", regexp.MustCompile(`(?i)\b(assault(ed)?|punched|slapped|shoved|physical altercation|struck (him|her))\b`), "13B"},
	{"burglary", regexp.MustCompile(`(?i)\b(burglar(y|ized)|broke into|break-?in|forced entry|forcibly entered|unlawful entry|pried open)\b`), "220"},
	{"auto theft", regexp.MustCompile(`(?i)\b(vehicle theft|auto theft|motor vehicle theft|drove off with the (car|vehicle|truck))\b`), "240"},
	{"identity crime", regexp.MustCompile(`(?i)(identity theft|stolen identity|hack(ed|ing)|unauthorized (access|login)|computer intrusion|phishing)`), "26F"},
	{"theft", regexp.MustCompile(`(?i)\b(theft|stole(n)?|larceny|shoplift(ed|ing)?|took without permission)\b`), "23H"},
	{"arson", regexp.MustCompile(`(?i)\b(arson|set fire|intentionally (burned|set)|deliberately burned)\b`), "200"},
	{"vandalism", regexp.MustCompile(`(?i)\b(vandal(ism|ized)|graffiti|smashed (a |the )?(window|windshield)|keyed|defaced|slashed tires)\b`), "290"},
	{"drugs", regexp.MustCompile(`(?i)(possession of [^.]{0,40}(marijuana|cocaine|heroin|meth|fentanyl|narcotic|controlled substance)|drug (possession|sale|distribution|trafficking)|narcotics|\b(marijuana|cocaine|heroin|fentanyl|methamphetamine)\b)`), "35A"},
	{"weapons", regexp.MustCompile(`(?i)(carrying (a )?concealed|weapons? (violation|offense|charge)|unlawful (possession|discharge) of a (firearm|weapon)|illegal (firearm|weapon)|brandish(ed|ing)?)`), "520"},
	{"fraud", regexp.MustCompile(`(?i)\b(fraud|scam(med)?|swindl(e|ed)|false pretenses|forged|counterfeit)\b`), "26A"},
	{"dui", regexp.MustCompile(`(?i)(driving under the influence|\bdui\b|\bdwi\b|drunk driv(ing|er)|operating [^.]{0,20}intoxicated)`), "90D"},
	{"public intoxication", regexp.MustCompile(`(?i)(public intoxication|drunk in public|drunkenness)`), "90E"},
}

// MapOffense classifies free offense text into a NIBRS offense code.
// Non-offense phrases and plain traffic collisions are rejected outright
// with confidence zero; otherwise the rule cascade runs first, then the
// Group A and Group B keyword tables.
func (m *Mapper) MapOffense(text string) models.MappingResult {
	result := models.MappingResult{OriginalInput: text}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return result
	}

	// Incidental facts ("sustained minor damage", "records check") are
	// not crimes.
	if codes.ContainsAny(trimmed, codes.NonOffensePhrases) {
		return result
	}

	// A bare collision is not NIBRS-reportable. Impairment vocabulary
	// turns it into a DUI, which is.
	if IsTrafficOffense(trimmed) {
		return result
	}

	for _, rule := range offenseRules {
		if rule.pattern.MatchString(trimmed) {
			result.Code = rule.code
			result.Confidence = confidencePattern
			return result
		}
	}

	lower := strings.ToLower(trimmed)
	for _, e := range codes.GroupAOffenses {
		if strings.Contains(lower, e.Keyword) {
			result.Code = e.Code
			result.Confidence = confidenceGroupA
			return result
		}
	}
	for _, e := range codes.GroupBOffenses {
		if strings.Contains(lower, e.Keyword) {
			result.Code = e.Code
			result.Confidence = confidenceGroupB
			return result
		}
	}

	return result
}

// IsTrafficOffense reports whether the text describes a traffic collision
// or violation with no impairment indicators.
func IsTrafficOffense(text string) bool {
	return codes.ContainsAny(text, codes.TrafficPhrases) &&
		!codes.ContainsAny(text, codes.ImpairmentVocabulary)
}
