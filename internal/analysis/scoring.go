package analysis

import "math"

// Scoring weights. Transparent and adjustable: the formulas below are
// the single place longitudinal mastery/confidence/severity arithmetic
// happens.
const (
	ImprovementWeight     = 5.0 // points per unit improvement signal
	ErrorPenaltyWeight    = 3.0 // points deducted per error signal
	IndependentSolveBonus = 4.0 // points per independent solve

	PositiveSignalWeight    = 3.0 // confidence points per positive signal
	HesitationPenaltyWeight = 4.0 // confidence points deducted per hesitation

	MinScore = 0.0
	MaxScore = 100.0

	// EscalationThreshold is how many sessions a block must recur
	// before its severity escalates.
	EscalationThreshold = 3
	SeverityIncrement   = 1.5
	AvoidanceBoost      = 2.0
	EmotionalBoost      = 1.5
	MaxSeverity         = 10.0
)

// UpdateMastery computes an updated mastery score:
//
//	new = prev + improvement·5 − errors·3 + independentSolves·4
//
// clamped to [0, 100] and rounded to one decimal. Monotonic increasing
// in improvement and solves, decreasing in errors; a zero update vector
// is a no-op.
func UpdateMastery(prev, improvement float64, errorCount, independentSolves int) float64 {
	delta := improvement*ImprovementWeight -
		float64(errorCount)*ErrorPenaltyWeight +
		float64(independentSolves)*IndependentSolveBonus
	return clampScore(round1(prev + delta))
}

// UpdateConfidence computes an updated confidence score:
//
//	new = prev + positiveSignals·3 − hesitationCount·4
//
// clamped to [0, 100] and rounded to one decimal.
func UpdateConfidence(prev float64, hesitationCount, positiveSignals int) float64 {
	delta := float64(positiveSignals)*PositiveSignalWeight -
		float64(hesitationCount)*HesitationPenaltyWeight
	return clampScore(round1(prev + delta))
}

// ComputeSeverity scores a persistent mental-block aggregate from its
// recurrence count and the current session's avoidance/emotional flags:
//
//	base = min(frequencyCount·1.0, 5.0)
//	+1.5 when frequencyCount ≥ 3 (escalation)
//	+2.0 when avoidance flagged
//	+1.5 when emotional flagged
//
// capped at 10.0. Pure arithmetic over the three inputs; callers own
// incrementing frequencyCount across sessions.
func ComputeSeverity(frequencyCount int, hasAvoidance, hasEmotional bool) float64 {
	base := math.Min(float64(frequencyCount)*1.0, 5.0)

	if frequencyCount >= EscalationThreshold {
		base += SeverityIncrement
	}
	if hasAvoidance {
		base += AvoidanceBoost
	}
	if hasEmotional {
		base += EmotionalBoost
	}

	return math.Min(base, MaxSeverity)
}

func clampScore(v float64) float64 {
	return math.Max(MinScore, math.Min(MaxScore, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
