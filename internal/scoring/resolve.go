package scoring

import (
	"math"
	"sort"

	"github.com/Swamyakshitha/debate-referee/internal/domain"
)

// WinnerResolver ranks scored results and decides a winner or a tie.
//
// Rules: zero participants yield no winner and no tie; a lone
// participant always wins outright; with two or more the top two final
// scores are compared against the tie threshold.
type WinnerResolver struct {
	threshold float64
}

// NewWinnerResolver creates a resolver with the given tie threshold.
// A non-positive threshold falls back to DefaultTieThreshold.
func NewWinnerResolver(threshold float64) *WinnerResolver {
	if threshold <= 0 {
		threshold = DefaultTieThreshold
	}
	return &WinnerResolver{threshold: threshold}
}

// Resolve determines the winner for the given results. The order slice
// supplies the deterministic iteration order (first-submission order);
// the descending sort is stable, so exactly equal scores keep that
// order. Only the top two entries matter for the tie decision.
func (r *WinnerResolver) Resolve(results map[string]domain.ScoredResult, order []string) (*domain.Winner, bool) {
	ranked := make([]string, 0, len(results))
	for _, pid := range order {
		if _, ok := results[pid]; ok {
			ranked = append(ranked, pid)
		}
	}

	if len(ranked) == 0 {
		return nil, false
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return results[ranked[i]].FinalScore > results[ranked[j]].FinalScore
	})

	top := results[ranked[0]]
	if len(ranked) == 1 {
		// A lone arguer cannot tie.
		return r.winner(ranked[0], top), false
	}

	second := results[ranked[1]]

	// Absolute gap on the already-rounded final scores, not a relative
	// threshold.
	if math.Abs(top.FinalScore-second.FinalScore) < r.threshold {
		return nil, true
	}

	return r.winner(ranked[0], top), false
}

func (r *WinnerResolver) winner(pid string, result domain.ScoredResult) *domain.Winner {
	return &domain.Winner{
		ParticipantID:   pid,
		ParticipantName: result.ParticipantName,
		FinalScore:      result.FinalScore,
	}
}
