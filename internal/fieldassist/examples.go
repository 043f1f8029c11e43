package fieldassist

// fieldExamples holds concrete example values per record field, used to
// build correction contexts and by the upstream field-completion layer to
// prompt for exactly the piece that is missing.
var fieldExamples = map[string][]string{
	"incident_number":       {"2026-001234", "CR-26-04571"},
	"incident_date":         {"2026-08-14", "2026-01-03"},
	"incident_time":         {"14:30", "02:15"},
	"location":              {"residence on Oak Street", "parking lot of the convenience store", "intersection of 5th and Main"},
	"offenses":              {"burglary of a residence", "possession of marijuana", "aggravated assault with a knife"},
	"victim.age":            {"34", "17"},
	"victim.sex":            {"M", "F"},
	"victim.race":           {"W", "B", "A"},
	"victim.injury":         {"minor laceration", "no visible injury", "broken arm"},
	"offender.age":          {"28", "45"},
	"offender.sex":          {"M", "F"},
	"offender.relationship": {"stranger", "acquaintance", "ex-husband"},
	"property.description":  {"Samsung television valued at $600", "wallet containing $85 cash"},
	"property.value":        {"600", "85"},
	"evidence":              {"28 grams of marijuana", "9mm handgun and two shell casings"},
	"arrest_date":           {"2026-08-14"},
}

// fieldSuggestions is a one-line prompt per field for guided correction.
var fieldSuggestions = map[string]string{
	"incident_number":       "Provide the agency case or incident number",
	"incident_date":         "Provide the date the incident occurred (YYYY-MM-DD)",
	"location":              "Describe where the incident took place",
	"offenses":              "Describe the criminal act that occurred, not incidental facts",
	"victim.age":            "Provide the victim's age or an estimate",
	"victim.sex":            "Provide the victim's sex (M/F/U)",
	"victim.injury":         "Describe any injury the victim sustained",
	"offender.sex":          "Provide the offender's sex (M/F/U)",
	"offender.relationship": "Describe how the offender knew the victim, if at all",
	"property.description":  "Describe the property involved and its estimated value",
	"evidence":              "List the items seized or collected",
}

// ExamplesFor returns example values for a record field, or nil when the
// field has none registered.
func ExamplesFor(field string) []string {
	examples := fieldExamples[field]
	if examples == nil {
		return nil
	}
	return append([]string(nil), examples...)
}

// SuggestionFor returns a correction prompt for a record field, falling
// back to a generic prompt for unregistered fields.
func SuggestionFor(field string) string {
	if s, ok := fieldSuggestions[field]; ok {
		return s
	}
	return "Provide a value for " + field
}

// ExamplesForAll builds the field->examples map for a set of missing
// fields, skipping fields with no registered examples.
func ExamplesForAll(fields []string) map[string][]string {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string][]string)
	for _, f := range fields {
		if ex := ExamplesFor(f); ex != nil {
			out[f] = ex
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
