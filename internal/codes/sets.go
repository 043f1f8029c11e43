package codes

import "strings"

// VictimlessOffenses is the fixed set of codes NIBRS reports against a
// Society/Public victim instead of an individual: drug, gambling,
// pornography, weapon, and prostitution offense groups.
var VictimlessOffenses = map[string]bool{
	"35A": true, "35B": true, "35C": true, "35D": true,
	"90A": true, "90B": true, "90C": true, "90D": true,
	"90E": true, "90F": true, "90G": true,
	"100": true, "520": true, "720": true,
}

// IsVictimless reports whether the offense code is reported against a
// Society victim.
func IsVictimless(code string) bool {
	return VictimlessOffenses[code]
}

// ViolentOffenses are codes serious enough that a default Individual
// victim is synthesized when extraction produced none.
var ViolentOffenses = map[string]bool{
	"09A": true, "09B": true, "11A": true, "11B": true,
	"120": true, "13A": true,
}

// IsViolent reports whether the code belongs to the violent offense group.
func IsViolent(code string) bool {
	return ViolentOffenses[code]
}

// SeriousOffenses require at least one offender segment to be present.
var SeriousOffenses = map[string]bool{
	"09A": true, "11A": true, "120": true, "13A": true,
	"100": true, "200": true,
}

// IsSerious reports whether the code requires offender presence.
func IsSerious(code string) bool {
	return SeriousOffenses[code]
}

// NonOffensePhrases describe incidental facts rather than crimes; offense
// text matching one is rejected outright.
var NonOffensePhrases = []string{
	"sustained minor damage",
	"records check",
	"record check",
	"no further action",
	"information only",
	"courtesy report",
	"civil matter",
	"welfare check",
	"found property",
	"lost property",
}

// TrafficPhrases describe collisions and moving violations, which are not
// NIBRS-reportable on their own.
var TrafficPhrases = []string{
	"rear-ended",
	"rear ended",
	"collision",
	"collided",
	"fender bender",
	"traffic accident",
	"vehicle accident",
	"car accident",
	"crashed into",
	"crash",
	"traffic violation",
	"speeding",
	"ran a red light",
	"failure to yield",
	"improper lane change",
}

// ImpairmentVocabulary negates the traffic exclusion: a collision with
// impairment indicators is a DUI, which is reportable.
var ImpairmentVocabulary = []string{
	"dui",
	"dwi",
	"under the influence",
	"intoxicated",
	"impaired",
	"drunk driv",
	"drunk driver",
	"smelled of alcohol",
	"odor of alcohol",
	"field sobriety",
	"breathalyzer",
	"blood alcohol",
}

// ArrestEvidenceKeywords indicate the incident was cleared by arrest.
var ArrestEvidenceKeywords = []string{
	"arrested",
	"placed under arrest",
	"taken into custody",
	"booked",
	"cited",
	"citation issued",
	"summons",
	"summoned",
	"apprehended",
	"in custody",
}

// RetrospectiveIndicators mark text describing past incidents rather than
// the one being reported.
var RetrospectiveIndicators = []string{
	"prior",
	"previously",
	"records check",
	"record check",
	"history of",
	"last month",
	"last year",
	"outstanding warrant",
	"earlier incident",
	"past incident",
}

// PresentActionVerbs indicate the surrounding narrative describes the
// current incident.
var PresentActionVerbs = []string{
	"responded",
	"observed",
	"found",
	"discovered",
	"reported",
	"stated",
	"arrested",
	"arrived",
	"witnessed",
	"advised",
}

// AcquaintanceContext are narrative words that imply a non-stranger
// relationship when the explicit relationship text is missing.
var AcquaintanceContext = []string{
	"knew each other",
	"known to the victim",
	"known to each other",
	"acquainted",
	"acquaintance",
	"coworker",
	"co-worker",
	"classmate",
	"roommate",
}

// ContainsAny reports whether text contains any phrase in the list,
// case-insensitively.
func ContainsAny(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// IsGroupA reports whether code is a Group A offense code.
func IsGroupA(code string) bool {
	return groupACodes[code]
}

// IsGroupB reports whether code is a Group B offense code.
func IsGroupB(code string) bool {
	return groupBCodes[code]
}

// IsValidOffenseCode reports whether code belongs to the Group A/B code
// space. Records carrying anything else are rejected structurally.
func IsValidOffenseCode(code string) bool {
	return IsGroupA(code) || IsGroupB(code)
}

var groupACodes = buildCodeSet(GroupAOffenses)
var groupBCodes = buildCodeSet(GroupBOffenses)

func buildCodeSet(t Table) map[string]bool {
	set := make(map[string]bool, len(t))
	for _, e := range t {
		set[e.Code] = true
	}
	return set
}
