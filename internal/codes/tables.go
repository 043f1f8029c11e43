package codes

// Entry is one keyword-to-code pair. Tables are ordered slices so that
// lookup precedence and the last-resort first entry are deterministic.
type Entry struct {
	Keyword string
	Code    string
}

// Table is an ordered keyword-to-code dictionary.
type Table []Entry

// First returns the table's first entry.
func (t Table) First() Entry {
	return t[0]
}

// CodeFor returns the code for an exact keyword, if present.
func (t Table) CodeFor(keyword string) (string, bool) {
	for _, e := range t {
		if e.Keyword == keyword {
			return e.Code, true
		}
	}
	return "", false
}

// GroupAOffenses maps offense vocabulary to Group A offense codes.
var GroupAOffenses = Table{
	{"murder", "09A"},
	{"homicide", "09A"},
	{"manslaughter", "09B"},
	{"kidnapping", "100"},
	{"abduction", "100"},
	{"rape", "11A"},
	{"sodomy", "11B"},
	{"sexual assault", "11A"},
	{"fondling", "11D"},
	{"robbery", "120"},
	{"aggravated assault", "13A"},
	{"simple assault", "13B"},
	{"assault", "13B"},
	{"intimidation", "13C"},
	{"arson", "200"},
	{"extortion", "210"},
	{"blackmail", "210"},
	{"burglary", "220"},
	{"breaking and entering", "220"},
	{"pocket-picking", "23A"},
	{"purse-snatching", "23B"},
	{"shoplifting", "23C"},
	{"theft from building", "23D"},
	{"theft from vehicle", "23F"},
	{"theft", "23H"},
	{"larceny", "23H"},
	{"motor vehicle theft", "240"},
	{"auto theft", "240"},
	{"counterfeiting", "250"},
	{"forgery", "250"},
	{"embezzlement", "270"},
	{"stolen property", "280"},
	{"vandalism", "290"},
	{"destruction of property", "290"},
	{"drug violation", "35A"},
	{"drug possession", "35A"},
	{"narcotics", "35A"},
	{"drug equipment", "35B"},
	{"paraphernalia", "35B"},
	{"fraud", "26A"},
	{"false pretenses", "26A"},
	{"credit card fraud", "26B"},
	{"impersonation", "26C"},
	{"welfare fraud", "26D"},
	{"wire fraud", "26E"},
	{"identity theft", "26F"},
	{"hacking", "26G"},
	{"computer invasion", "26G"},
	{"gambling", "39A"},
	{"betting", "39A"},
	{"pornography", "370"},
	{"obscene material", "370"},
	{"prostitution", "40A"},
	{"bribery", "510"},
	{"weapon law violation", "520"},
	{"weapons violation", "520"},
	{"concealed weapon", "520"},
	{"human trafficking", "64A"},
	{"animal cruelty", "720"},
}

// GroupBOffenses maps offense vocabulary to Group B (arrest-only) codes.
var GroupBOffenses = Table{
	{"bad checks", "90A"},
	{"curfew", "90B"},
	{"loitering", "90B"},
	{"vagrancy", "90B"},
	{"disorderly conduct", "90C"},
	{"driving under the influence", "90D"},
	{"dui", "90D"},
	{"dwi", "90D"},
	{"drunkenness", "90E"},
	{"public intoxication", "90E"},
	{"family offense", "90F"},
	{"nonviolent family", "90F"},
	{"liquor law", "90G"},
	{"underage drinking", "90G"},
	{"peeping tom", "90H"},
	{"trespass", "90J"},
	{"trespassing", "90J"},
	{"all other offenses", "90Z"},
}

// Locations maps location vocabulary to NIBRS location codes.
var Locations = Table{
	{"residence", "20"},
	{"home", "20"},
	{"apartment", "20"},
	{"house", "20"},
	{"highway", "13"},
	{"road", "13"},
	{"street", "13"},
	{"alley", "13"},
	{"sidewalk", "13"},
	{"intersection", "13"},
	{"parking lot", "18"},
	{"parking garage", "18"},
	{"convenience store", "07"},
	{"gas station", "23"},
	{"service station", "23"},
	{"grocery store", "12"},
	{"supermarket", "12"},
	{"department store", "08"},
	{"specialty store", "24"},
	{"bank", "02"},
	{"bar", "03"},
	{"nightclub", "03"},
	{"church", "04"},
	{"synagogue", "04"},
	{"temple", "04"},
	{"school", "22"},
	{"college", "22"},
	{"restaurant", "21"},
	{"hotel", "14"},
	{"motel", "14"},
	{"hospital", "15"},
	{"jail", "16"},
	{"prison", "16"},
	{"lake", "17"},
	{"waterway", "17"},
	{"field", "10"},
	{"woods", "10"},
	{"park", "10"},
	{"government building", "11"},
	{"office", "05"},
	{"construction site", "06"},
	{"airport", "01"},
	{"bus station", "01"},
	{"train station", "01"},
	{"drug store", "09"},
	{"pharmacy", "09"},
	{"storage", "19"},
	{"warehouse", "19"},
	{"other", "25"},
}

// LocationDefault is the generic fallback code; validation warns when a
// record is left on it.
const LocationDefault = "25"

// Weapons maps weapon vocabulary to NIBRS weapon/force codes.
var Weapons = Table{
	{"handgun", "12"},
	{"pistol", "12"},
	{"revolver", "12"},
	{"rifle", "13"},
	{"shotgun", "14"},
	{"firearm", "11"},
	{"gun", "11"},
	{"knife", "15"},
	{"blade", "15"},
	{"cutting instrument", "15"},
	{"club", "30"},
	{"bat", "30"},
	{"blunt object", "30"},
	{"hammer", "30"},
	{"motor vehicle", "35"},
	{"vehicle", "35"},
	{"fists", "40"},
	{"hands", "40"},
	{"feet", "40"},
	{"personal weapons", "40"},
	{"poison", "50"},
	{"explosives", "60"},
	{"bomb", "60"},
	{"fire", "65"},
	{"incendiary", "65"},
	{"drugs", "70"},
	{"asphyxiation", "85"},
	{"strangulation", "85"},
	{"other", "90"},
	{"unknown", "95"},
	{"none", "99"},
}

// Properties maps property vocabulary to NIBRS property description codes.
var Properties = Table{
	{"automobile", "03"},
	{"car", "03"},
	{"truck", "03"},
	{"vehicle", "03"},
	{"aircraft", "01"},
	{"bicycle", "04"},
	{"bike", "04"},
	{"bus", "05"},
	{"clothing", "06"},
	{"clothes", "06"},
	{"furs", "06"},
	{"computer", "07"},
	{"laptop", "07"},
	{"tablet", "07"},
	{"hardware", "07"},
	{"consumable", "08"},
	{"food", "08"},
	{"liquor", "08"},
	{"credit card", "09"},
	{"debit card", "09"},
	{"drugs", "10"},
	{"narcotics", "10"},
	{"marijuana", "10"},
	{"cocaine", "10"},
	{"heroin", "10"},
	{"methamphetamine", "10"},
	{"drug equipment", "11"},
	{"paraphernalia", "11"},
	{"firearm", "13"},
	{"gun", "13"},
	{"pistol", "13"},
	{"rifle", "13"},
	{"gambling equipment", "14"},
	{"farm equipment", "15"},
	{"household goods", "16"},
	{"appliance", "16"},
	{"furniture", "16"},
	{"jewelry", "17"},
	{"watch", "17"},
	{"ring", "17"},
	{"necklace", "17"},
	{"livestock", "18"},
	{"merchandise", "19"},
	{"money", "20"},
	{"cash", "20"},
	{"currency", "20"},
	{"negotiable instrument", "21"},
	{"check", "21"},
	{"office equipment", "23"},
	{"motorcycle", "24"},
	{"purse", "28"},
	{"wallet", "28"},
	{"handbag", "28"},
	{"radio", "29"},
	{"stereo", "29"},
	{"television", "29"},
	{"tv", "29"},
	{"recording", "30"},
	{"tools", "35"},
	{"phone", "71"},
	{"cell phone", "71"},
	{"smartphone", "71"},
	{"vehicle parts", "38"},
	{"watercraft", "39"},
	{"boat", "39"},
	{"other", "77"},
}

// PropertyGeneric is the catch-all property code; validation flags it for
// reclassification when the description suggests a specific code.
const PropertyGeneric = "77"

// PropertyDrugs is the drugs/narcotics description code. Drug properties
// are always marked seized.
const PropertyDrugs = "10"

// Relationships maps relationship vocabulary to NIBRS relationship
// codes. Lookup is substring-based, so compound entries ("ex-husband",
// "stepparent") must precede the bare terms they contain.
var Relationships = Table{
	{"common-law spouse", "CS"},
	{"ex-spouse", "XS"},
	{"ex-wife", "XS"},
	{"ex-husband", "XS"},
	{"spouse", "SE"},
	{"wife", "SE"},
	{"husband", "SE"},
	{"stepparent", "SP"},
	{"grandparent", "GP"},
	{"parent", "PA"},
	{"mother", "PA"},
	{"father", "PA"},
	{"stepsibling", "SS"},
	{"sibling", "SB"},
	{"brother", "SB"},
	{"sister", "SB"},
	{"stepchild", "SC"},
	{"grandchild", "GC"},
	{"child", "CH"},
	{"son", "CH"},
	{"daughter", "CH"},
	{"in-law", "IL"},
	{"family", "OF"},
	{"relative", "OF"},
	{"acquaintance", "AQ"},
	{"boyfriend", "BG"},
	{"girlfriend", "BG"},
	{"friend", "FR"},
	{"neighbor", "NE"},
	{"babysitter", "BE"},
	{"employee", "EE"},
	{"employer", "ER"},
	{"coworker", "OK"},
	{"stranger", "ST"},
	{"unknown", "RU"},
	{"known", "OK"},
}

// RelationshipUnknown is the default when no relationship can be derived.
const RelationshipUnknown = "RU"

// RelationshipAcquaintance is inferred from narrative context when the
// explicit relationship text is empty or unknown.
const RelationshipAcquaintance = "AQ"
