package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorlens/internal/analysis"
	"github.com/abhisek/tutorlens/internal/progress"
)

// Report palette — calm, readable on dark terminals.
var (
	colPrimary = lipgloss.Color("#8B5CF6") // Purple
	colGood    = lipgloss.Color("#22C55E") // Green
	colWarn    = lipgloss.Color("#F97316") // Orange
	colBad     = lipgloss.Color("#F43F5E") // Rose
	colDim     = lipgloss.Color("#94A3B8") // Slate

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colPrimary)
	headStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(colDim)
	goodStyle  = lipgloss.NewStyle().Foreground(colGood)
	warnStyle  = lipgloss.NewStyle().Foreground(colWarn)
	badStyle   = lipgloss.NewStyle().Foreground(colBad)
)

func renderTrialReport(r *analysis.TrialResult, processor, runID string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Trial Analysis"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("run %s · %s extraction", runID, processor)))
	b.WriteString("\n\n")

	b.WriteString(headStyle.Render("Summary"))
	b.WriteString("\n" + r.Summary + "\n\n")

	b.WriteString(headStyle.Render(fmt.Sprintf("Learning Goals (%d)", len(r.Goals))))
	b.WriteString("\n")
	for i, g := range r.Goals {
		fmt.Fprintf(&b, "%d. %s\n", i+1, g.Description)
		fmt.Fprintf(&b, "   %s\n", dimStyle.Render("measure: "+g.MeasurableOutcome))
		if g.EvidenceQuote != "" {
			fmt.Fprintf(&b, "   %s\n", dimStyle.Render("evidence: "+g.EvidenceQuote))
		}
		if g.SuggestedIntervention != "" {
			fmt.Fprintf(&b, "   %s\n", dimStyle.Render("intervention: "+g.SuggestedIntervention))
		}
	}
	b.WriteString("\n")

	if len(r.Topics) > 0 {
		b.WriteString(headStyle.Render("Topics"))
		b.WriteString("\n")
		for _, topic := range r.Topics {
			if topic.Parent != "" {
				fmt.Fprintf(&b, "  %s %s\n", topic.Name, dimStyle.Render("("+topic.Parent+")"))
			} else {
				fmt.Fprintf(&b, "  %s\n", topic.Name)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(headStyle.Render("Curriculum"))
	b.WriteString("\n  " + r.CurriculumRecommendation + "\n")

	if len(r.MentalBlocks) > 0 {
		b.WriteString("\n")
		b.WriteString(headStyle.Render("Mental Blocks"))
		b.WriteString("\n")
		for _, block := range r.MentalBlocks {
			fmt.Fprintf(&b, "  %s %s severity %d/10\n",
				severityStyle(float64(block.Severity)).Render("●"),
				block.BlockType, block.Severity)
			if block.EvidenceFromTranscript != "" {
				fmt.Fprintf(&b, "    %s\n", dimStyle.Render(block.EvidenceFromTranscript))
			}
		}
	}

	renderRecommendations(&b, r.LessonRecommendations)
	return b.String()
}

func renderSessionReport(r *analysis.SessionResult, changes []progress.TopicChange, processor, runID string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Session Analysis"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("run %s · %s extraction", runID, processor)))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s\n\n",
		headStyle.Render("Engagement"),
		engagementStyle(r.EngagementScore).Render(fmt.Sprintf("%.1f / 100", r.EngagementScore)))

	if len(r.TopicsDiscussed) > 0 {
		b.WriteString(headStyle.Render("Topics Discussed"))
		b.WriteString("\n  " + strings.Join(r.TopicsDiscussed, ", ") + "\n\n")
	}

	if len(r.Strengths) > 0 {
		b.WriteString(headStyle.Render("Strengths"))
		b.WriteString("\n")
		for _, s := range r.Strengths {
			b.WriteString("  " + goodStyle.Render("+") + " " + s + "\n")
		}
		b.WriteString("\n")
	}

	if len(r.Misconceptions) > 0 {
		b.WriteString(headStyle.Render("Misconceptions"))
		b.WriteString("\n")
		for _, m := range r.Misconceptions {
			b.WriteString("  " + badStyle.Render("-") + " " + m + "\n")
		}
		b.WriteString("\n")
	}

	if len(changes) > 0 {
		b.WriteString(headStyle.Render("Progress"))
		b.WriteString("\n")
		for _, c := range changes {
			fmt.Fprintf(&b, "  %-28s mastery %s   confidence %s\n",
				c.Topic,
				renderDelta(c.MasteryBefore, c.MasteryAfter),
				renderDelta(c.ConfidenceBefore, c.ConfidenceAfter))
		}
		b.WriteString("\n")
	}

	if len(r.MentalBlockSignals) > 0 {
		b.WriteString(headStyle.Render("Mental Block Signals"))
		b.WriteString("\n")
		for _, sig := range r.MentalBlockSignals {
			fmt.Fprintf(&b, "  %s %s (%s, severity %.1f)\n",
				severityStyle(sig.Severity).Render("●"),
				sig.Description, sig.Type, sig.Severity)
		}
		b.WriteString("\n")
	}

	b.WriteString(headStyle.Render("Parent Summary"))
	b.WriteString("\n" + r.ParentSummary + "\n\n")
	b.WriteString(headStyle.Render("Tutor Insight"))
	b.WriteString("\n" + r.TutorInsight + "\n\n")
	b.WriteString(headStyle.Render("Next Session"))
	b.WriteString("\n" + r.RecommendedNext + "\n")

	renderRecommendations(&b, r.LessonRecommendations)
	return b.String()
}

func renderRecommendations(b *strings.Builder, recs []analysis.LessonRecommendation) {
	if len(recs) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(headStyle.Render("Lesson Recommendations"))
	b.WriteString("\n")
	for _, rec := range recs {
		fmt.Fprintf(b, "  [%s] %s\n", rec.InterventionType, rec.SpecificStrategy)
		if rec.WhyThisWillWork != "" {
			fmt.Fprintf(b, "    %s\n", dimStyle.Render(rec.WhyThisWillWork))
		}
	}
}

// renderDelta shows a before→after score movement, colored by direction.
func renderDelta(before, after float64) string {
	s := fmt.Sprintf("%.1f → %.1f", before, after)
	switch {
	case after > before:
		return goodStyle.Render(s)
	case after < before:
		return badStyle.Render(s)
	default:
		return dimStyle.Render(s)
	}
}

func engagementStyle(score float64) lipgloss.Style {
	switch {
	case score >= 70:
		return goodStyle
	case score >= 50:
		return warnStyle
	default:
		return badStyle
	}
}

func severityStyle(severity float64) lipgloss.Style {
	switch {
	case severity >= 7:
		return badStyle
	case severity >= 4:
		return warnStyle
	default:
		return goodStyle
	}
}
