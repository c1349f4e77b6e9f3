package analysis

import "strings"

// topicEntry maps one topic to its trigger phrases. A topic counts as
// detected when any trigger occurs as a case-insensitive substring of
// the transcript. The slice (not a map) fixes detection order, which is
// also the order of the returned topic list.
type topicEntry struct {
	name     string
	triggers []string
}

var topicTable = []topicEntry{
	{"Algebra", []string{"algebra", "equation", "variable", "expression", "polynomial", "factor", "solve for x",
		"linear", "quadratic", "inequality", "system of equations", "substitution"}},
	{"Linear Equations", []string{"linear equation", "slope", "intercept", "y = mx + b", "graph the line",
		"solve for x", "one variable"}},
	{"Expressions & Simplification", []string{"simplify", "combine like terms", "distribute", "expression",
		"expand", "foil"}},
	{"Inequalities", []string{"inequality", "greater than", "less than", "number line", "≥", "≤", ">", "<"}},
	{"Fractions", []string{"fraction", "numerator", "denominator", "mixed number", "improper fraction",
		"common denominator", "reduce", "simplify fraction"}},
	{"Decimals", []string{"decimal", "decimal point", "tenths", "hundredths", "convert decimal"}},
	{"Ratios & Proportions", []string{"ratio", "proportion", "rate", "unit rate", "cross multiply",
		"scale factor"}},
	{"Geometry", []string{"geometry", "shape", "angle", "triangle", "circle", "polygon", "congruent",
		"similar", "parallel", "perpendicular"}},
	{"Angles & Triangles", []string{"angle", "triangle", "degree", "acute", "obtuse", "right angle",
		"isosceles", "equilateral", "scalene", "pythagorean"}},
	{"Area & Perimeter", []string{"area", "perimeter", "surface area", "volume", "square units",
		"length times width"}},
	{"Word Problems", []string{"word problem", "story problem", "how many", "how much", "total",
		"difference", "altogether"}},
	{"Rate Problems", []string{"rate", "speed", "distance", "time", "miles per hour", "km per hour"}},
	{"Age Problems", []string{"age", "years old", "how old", "older than", "younger than"}},
	{"Number Sense", []string{"number", "place value", "rounding", "estimation", "mental math",
		"arithmetic", "calculation"}},
	{"Exponents", []string{"exponent", "power", "squared", "cubed", "base"}},
	{"Probability", []string{"probability", "chance", "likely", "outcome", "event", "random"}},
	{"Statistics", []string{"mean", "median", "mode", "range", "average", "data", "graph", "chart"}},
}

// topicParents maps sub-topics to their parent topic name. Topics
// without an entry have no parent.
var topicParents = map[string]string{
	"Linear Equations":              "Algebra",
	"Expressions & Simplification":  "Algebra",
	"Inequalities":                  "Algebra",
	"Fractions":                     "Number Sense",
	"Decimals":                      "Number Sense",
	"Ratios & Proportions":          "Number Sense",
	"Angles & Triangles":            "Geometry",
	"Area & Perimeter":              "Geometry",
	"Rate Problems":                 "Word Problems",
	"Age Problems":                  "Word Problems",
	"Exponents":                     "Algebra",
	"Probability":                   "Statistics",
}

// detectTopics returns every topic whose triggers hit, in table order.
// The input must already be lowercased.
func detectTopics(lower string) []string {
	var found []string
	for _, entry := range topicTable {
		for _, trigger := range entry.triggers {
			if strings.Contains(lower, trigger) {
				found = append(found, entry.name)
				break
			}
		}
	}
	return found
}

// ParentTopic returns the parent topic name, or "" for root topics.
func ParentTopic(topic string) string {
	return topicParents[topic]
}

// curriculumRule pairs trigger words with a curriculum track. Checked
// in order; the first hit wins.
type curriculumRule struct {
	triggers []string
	track    string
}

var curriculumRules = []curriculumRule{
	{[]string{"amc", "competition", "olympiad", "mathcounts"}, "Competition Math (AMC/MathCounts)"},
	{[]string{"sat", "act", "psat"}, "SAT/ACT Prep"},
	{[]string{"common core", "state test", "school"}, "Common Core Aligned"},
	{[]string{"ap", "calculus", "advanced"}, "Advanced / AP Prep"},
}

// defaultCurriculum is the universal fallback: curriculum inference is
// total and never fails.
const defaultCurriculum = "General Math Proficiency"

// inferCurriculum picks a curriculum track from context clues.
func inferCurriculum(lower string) string {
	for _, rule := range curriculumRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return rule.track
			}
		}
	}
	return defaultCurriculum
}
