package analysis

import "testing"

func TestUpdateMastery(t *testing.T) {
	tests := []struct {
		name        string
		prev        float64
		improvement float64
		errors      int
		solves      int
		want        float64
	}{
		{"zero signals leave score unchanged", 50, 0, 0, 0, 50},
		{"improvement raises score", 50, 1.0, 0, 0, 55},
		{"errors lower score", 50, 0, 2, 0, 44},
		{"solves raise score", 50, 0, 0, 2, 58},
		{"mixed signals", 50, 0.5, 1, 1, 53.5},
		{"clamps at 100", 90, 1.0, 0, 3, 100},
		{"clamps at 0", 2, 0, 3, 0, 0},
		{"clamps under extreme errors", 50, 0, 1000, 0, 0},
		{"rounds to one decimal", 50, 0.34, 0, 0, 51.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpdateMastery(tt.prev, tt.improvement, tt.errors, tt.solves)
			if got != tt.want {
				t.Errorf("UpdateMastery(%v, %v, %d, %d) = %v, want %v",
					tt.prev, tt.improvement, tt.errors, tt.solves, got, tt.want)
			}
		})
	}
}

func TestUpdateConfidence(t *testing.T) {
	tests := []struct {
		name       string
		prev       float64
		hesitation int
		positive   int
		want       float64
	}{
		{"zero signals leave score unchanged", 60, 0, 0, 60},
		{"positive signals raise score", 60, 0, 2, 66},
		{"hesitation lowers score", 60, 2, 0, 52},
		{"clamps at 100", 95, 0, 4, 100},
		{"clamps at 0", 3, 2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpdateConfidence(tt.prev, tt.hesitation, tt.positive)
			if got != tt.want {
				t.Errorf("UpdateConfidence(%v, %d, %d) = %v, want %v",
					tt.prev, tt.hesitation, tt.positive, got, tt.want)
			}
		})
	}
}

func TestComputeSeverity(t *testing.T) {
	tests := []struct {
		name      string
		freq      int
		avoidance bool
		emotional bool
		want      float64
	}{
		{"zero frequency no flags", 0, false, false, 0.0},
		{"single occurrence no flags", 1, false, false, 1.0},
		{"frequency below escalation", 2, false, false, 2.0},
		{"escalation at three", 3, false, false, 4.5},
		{"avoidance boost", 2, true, false, 4.0},
		{"emotional boost", 2, false, true, 3.5},
		{"all factors capped at ten", 5, true, true, 10.0},
		{"frequency contribution capped at five", 12, false, false, 6.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSeverity(tt.freq, tt.avoidance, tt.emotional)
			if got != tt.want {
				t.Errorf("ComputeSeverity(%d, %v, %v) = %v, want %v",
					tt.freq, tt.avoidance, tt.emotional, got, tt.want)
			}
		})
	}
}
