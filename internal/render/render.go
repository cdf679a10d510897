// Package render is the presentation collaborator: it turns decisions
// and session lists into styled console output. Nothing here flows back
// into the scoring core.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Swamyakshitha/debate-referee/internal/domain"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	winnerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	tieStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Decision renders the full score table, the outcome line and the
// consensus statement for one decision.
func Decision(decision *domain.DebateDecision) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Debate: %s", decision.Topic)))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-20s %8s %8s %9s %10s %8s",
		"Participant", "Clarity", "Logic", "Evidence", "Relevance", "Final")))
	b.WriteString("\n")

	for _, pid := range rankedIDs(decision.Results) {
		r := decision.Results[pid]
		name := r.ParticipantName
		if name == "" {
			name = pid
		}
		b.WriteString(fmt.Sprintf("%-20s %8.1f %8.1f %9.1f %10.1f %8.2f\n",
			truncate(name, 20), r.Clarity, r.Logic, r.Evidence, r.Relevance, r.FinalScore))
	}
	b.WriteString("\n")

	switch {
	case decision.IsTie:
		b.WriteString(tieStyle.Render("Result: tie (scores too close to call)"))
	case decision.Winner != nil:
		b.WriteString(winnerStyle.Render(fmt.Sprintf("Winner: %s (%.2f)",
			decision.Winner.ParticipantName, decision.Winner.FinalScore)))
	default:
		b.WriteString(dimStyle.Render("Result: no participants scored"))
	}
	b.WriteString("\n\n")

	b.WriteString("Consensus: " + decision.Consensus + "\n")
	b.WriteString(dimStyle.Render("Completed " + decision.CompletedAt.Format("2006-01-02 15:04:05 MST")))
	b.WriteString("\n")

	return b.String()
}

// SessionList renders a one-line summary per session, newest first.
func SessionList(sessions []*domain.DebateSession) string {
	if len(sessions) == 0 {
		return dimStyle.Render("No sessions yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-36s %-40s %9s %-10s", "ID", "Topic", "Arguments", "Status")))
	b.WriteString("\n")
	for _, s := range sessions {
		status := "open"
		if s.Processed() {
			status = "processed"
		}
		b.WriteString(fmt.Sprintf("%-36s %-40s %9d %-10s\n",
			s.ID, truncate(s.Topic, 40), len(s.Arguments), status))
	}
	return b.String()
}

// Session renders one session with its arguments in submission order.
func Session(session *domain.DebateSession) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Debate: %s", session.Topic)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Session %s, created %s",
		session.ID, session.CreatedAt.Format("2006-01-02 15:04"))))
	b.WriteString("\n\n")

	for i, arg := range session.Arguments {
		b.WriteString(headerStyle.Render(fmt.Sprintf("[%d] %s", i+1, arg.ParticipantName)))
		b.WriteString("\n" + arg.Content + "\n\n")
	}
	return b.String()
}

// SimilarityWarning renders a near-duplicate notice for a pair of
// participants.
func SimilarityWarning(a, b string, similarity float64) string {
	return warnStyle.Render(fmt.Sprintf(
		"Warning: arguments from %s and %s are %.0f%% similar", a, b, similarity*100))
}

// rankedIDs orders participant ids by final score descending, with id as
// a stable tiebreak so output is deterministic.
func rankedIDs(results map[string]domain.ScoredResult) []string {
	ids := make([]string, 0, len(results))
	for pid := range results {
		ids = append(ids, pid)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := results[ids[i]], results[ids[j]]
		if a.FinalScore != b.FinalScore {
			return a.FinalScore > b.FinalScore
		}
		return ids[i] < ids[j]
	})
	return ids
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
