package converter

// ElementInfo holds the visual properties of an element used by the scene
// builder: an approximate atomic radius and a CPK-style display color.
type ElementInfo struct {
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
	// Known is false when the element was not found in the table and the
	// fallback entry was used instead.
	Known bool `json:"-"`
}

// FallbackElement is used for element symbols missing from the table.
// Unknown elements are expected and non fatal.
var FallbackElement = ElementInfo{Radius: 0.4, Color: "#808080"}

var elementTable = map[string]ElementInfo{
	"H":  {Radius: 0.31, Color: "#FFFFFF", Known: true},
	"He": {Radius: 0.28, Color: "#D9FFFF", Known: true},
	"Li": {Radius: 1.28, Color: "#CC80FF", Known: true},
	"Be": {Radius: 0.96, Color: "#C2FF00", Known: true},
	"B":  {Radius: 0.84, Color: "#FFB5B5", Known: true},
	"C":  {Radius: 0.76, Color: "#909090", Known: true},
	"N":  {Radius: 0.71, Color: "#3050F8", Known: true},
	"O":  {Radius: 0.66, Color: "#FF0D0D", Known: true},
	"F":  {Radius: 0.57, Color: "#90E050", Known: true},
	"Ne": {Radius: 0.58, Color: "#B3E3F5", Known: true},
	"Na": {Radius: 1.66, Color: "#AB5CF2", Known: true},
	"Mg": {Radius: 1.41, Color: "#8AFF00", Known: true},
	"Al": {Radius: 1.21, Color: "#BFA6A6", Known: true},
	"Si": {Radius: 1.11, Color: "#F0C8A0", Known: true},
	"P":  {Radius: 1.07, Color: "#FF8000", Known: true},
	"S":  {Radius: 1.05, Color: "#FFFF30", Known: true},
	"Cl": {Radius: 1.02, Color: "#1FF01F", Known: true},
	"Ar": {Radius: 1.06, Color: "#80D1E3", Known: true},
	"K":  {Radius: 2.03, Color: "#8F40D4", Known: true},
	"Ca": {Radius: 1.76, Color: "#3DFF00", Known: true},
	"Fe": {Radius: 1.32, Color: "#E06633", Known: true},
	"Cu": {Radius: 1.32, Color: "#C88033", Known: true},
	"Zn": {Radius: 1.22, Color: "#7D80B0", Known: true},
	"Br": {Radius: 1.20, Color: "#A62929", Known: true},
	"I":  {Radius: 1.39, Color: "#940094", Known: true},
}

// LookupElement returns the visual properties for an element symbol.
// Symbols missing from the table resolve to FallbackElement.
func LookupElement(symbol string) ElementInfo {
	if info, ok := elementTable[symbol]; ok {
		return info
	}
	return FallbackElement
}
