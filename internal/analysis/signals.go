package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

// misconceptionSignals match language that reveals a wrong mental
// model. What gets reported is the surrounding context snippet, so
// precision of WHERE matters more than a normalized claim.
var misconceptionSignals = []*regexp.Regexp{
	regexp.MustCompile(`(?:i thought|i think)\s+(?:it was|it's|you)\s+`),
	regexp.MustCompile(`(?:wait|no)\s*,?\s*(?:isn't it|is it|shouldn't)`),
	regexp.MustCompile(`(?:but|why)\s+(?:isn't|doesn't|can't|won't)`),
	regexp.MustCompile(`(?:i keep getting|i got)\s+(?:a different|the wrong|a wrong)`),
	regexp.MustCompile(`(?:that doesn't make sense|i'm confused about)`),
	regexp.MustCompile(`(?:oh wait|oh no|oops)`),
	regexp.MustCompile(`(?:i forgot|i don't remember)\s+(?:how to|the rule|the formula)`),
	regexp.MustCompile(`(?:why do we|why can't we|why does)\s+`),
}

// strengthSignals match confident, correct-track language.
var strengthSignals = []*regexp.Regexp{
	regexp.MustCompile(`(?:i got it|i understand|oh i see|that makes sense)`),
	regexp.MustCompile(`(?:let me try|i'll do|i can do)\s+(?:this one|it|the next)`),
	regexp.MustCompile(`(?:is it|the answer is|so it's)\s+\d+`), // confident answer
	regexp.MustCompile(`(?:i remember|i know)\s+(?:this|how to|the)`),
	regexp.MustCompile(`(?:easy|simple|straightforward|i see the pattern)`),
	regexp.MustCompile(`(?:without help|by myself|on my own|independently)`),
}

var engagementPositive = []string{
	"can we do more", "another one", "what about", "interesting", "cool",
	"i like this", "fun", "let me try", "what if", "i have a question",
}

var engagementNegative = []string{
	"boring", "when are we done", "how much longer", "can we stop",
	"i'm tired", "whatever", "i don't care",
}

var avoidancePhrases = []string{
	"i don't want to",
	"can we skip",
	"i hate",
	"not this again",
	"this is too hard",
	"i can't do this",
	"i'll never get",
	"let's do something else",
	"i give up",
	"this is boring",
	"do we have to",
}

var hesitationPhrases = []string{
	"i'm not sure",
	"i don't know",
	"wait",
	"umm",
	"uh",
	"i think maybe",
	"i forgot",
	"is it",
	"i'm confused",
	"what do you mean",
	"i don't understand",
	"can you explain again",
}

var emotionalPhrases = []string{
	"i'm stressed",
	"i'm nervous",
	"i feel dumb",
	"everyone else gets it",
	"i'm so lost",
	"my brain hurts",
	"i'm going to fail",
	"i feel stupid",
}

// independenceMarkers inside a strength snippet count as an independent
// solve.
var independenceMarkers = []string{"by myself", "on my own", "i got it", "let me try"}

const (
	maxMisconceptions    = 5
	maxStrengths         = 5
	maxMatchesPerPattern = 2

	contextBefore = 30
	contextAfter  = 50

	hesitationDensityMin = 3
)

// detectMisconceptions scans for misconception signals and reports the
// local context window around each hit (up to 2 per pattern, 5 total).
func detectMisconceptions(lower string) []string {
	var found []string
	for _, pattern := range misconceptionSignals {
		matches := pattern.FindAllStringIndex(lower, maxMatchesPerPattern)
		for _, loc := range matches {
			start := max(0, loc[0]-contextBefore)
			end := min(len(lower), loc[1]+contextAfter)
			found = append(found, strings.TrimSpace(lower[start:end]))
		}
	}
	if len(found) > maxMisconceptions {
		found = found[:maxMisconceptions]
	}
	return found
}

// detectStrengths scans for strength signals and reports the matched
// text (up to 2 per pattern, 5 total).
func detectStrengths(lower string) []string {
	var found []string
	for _, pattern := range strengthSignals {
		matches := pattern.FindAllString(lower, maxMatchesPerPattern)
		for _, m := range matches {
			found = append(found, strings.TrimSpace(m))
		}
	}
	if len(found) > maxStrengths {
		found = found[:maxStrengths]
	}
	return found
}

// scoreEngagement maps language signals and transcript length to a
// score in [0,100]:
//
//	50 + min(40, words/10) + 8·positives − 12·negatives
//
// Length is a weak proxy for participation, capped so long transcripts
// don't saturate the score.
func scoreEngagement(lower string) float64 {
	var positive, negative int
	for _, p := range engagementPositive {
		if strings.Contains(lower, p) {
			positive++
		}
	}
	for _, n := range engagementNegative {
		if strings.Contains(lower, n) {
			negative++
		}
	}

	wordCount := len(strings.Fields(lower))
	lengthScore := min(40.0, float64(wordCount)/10)

	engagement := 50 + lengthScore + float64(positive)*8 - float64(negative)*12
	return clampScore(round1(engagement))
}

// detectMentalBlockSignals scans for avoidance and emotional phrases
// (one signal per matched phrase) plus hesitation density (one signal
// when three or more distinct hesitation phrases appear).
func detectMentalBlockSignals(lower string) []MentalBlockSignal {
	var signals []MentalBlockSignal

	for _, phrase := range avoidancePhrases {
		if strings.Contains(lower, phrase) {
			signals = append(signals, MentalBlockSignal{
				Description: fmt.Sprintf("Avoidance language detected: '%s'", phrase),
				Type:        BlockAvoidance,
				Severity:    3.0,
			})
		}
	}

	for _, phrase := range emotionalPhrases {
		if strings.Contains(lower, phrase) {
			signals = append(signals, MentalBlockSignal{
				Description: fmt.Sprintf("Emotional distress signal: '%s'", phrase),
				Type:        BlockEmotional,
				Severity:    4.0,
			})
		}
	}

	hesitations := 0
	for _, phrase := range hesitationPhrases {
		if strings.Contains(lower, phrase) {
			hesitations++
		}
	}
	if hesitations >= hesitationDensityMin {
		signals = append(signals, MentalBlockSignal{
			Description: fmt.Sprintf("High hesitation density (%d signals)", hesitations),
			Type:        BlockHesitation,
			Severity:    2.0 + float64(hesitations)*0.5,
		})
	}

	return signals
}

// countIndependentSolves counts strength snippets carrying an
// independence marker.
func countIndependentSolves(strengths []string) int {
	count := 0
	for _, s := range strengths {
		for _, marker := range independenceMarkers {
			if strings.Contains(s, marker) {
				count++
				break
			}
		}
	}
	return count
}
