package scoring

import (
	"cmp"
	"slices"
	"strings"

	"github.com/abhisek/wizardquiz/internal/quiz"
)

// Standing is one row of a ranking.
type Standing struct {
	Category quiz.Category
	Points   int
	Count    int
}

// Result is a resolved tally: the full ranking and its first entry.
type Result struct {
	Ranking []Standing
	Winner  Standing
}

// Resolve ranks every category by points, then count, both descending, and
// finally by canonical name in code-point order. The ordering is total, so
// identical tallies always produce identical results.
func Resolve(t Tally) Result {
	ranking := t.Standings()
	slices.SortFunc(ranking, compareStandings)
	return Result{Ranking: ranking, Winner: ranking[0]}
}

func compareStandings(a, b Standing) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return strings.Compare(a.Category.String(), b.Category.String())
}

// Share returns c's fraction of all awarded points, or 0 when nothing was awarded.
func (r Result) Share(c quiz.Category) float64 {
	total := 0
	points := 0
	for _, s := range r.Ranking {
		total += s.Points
		if s.Category == c {
			points = s.Points
		}
	}
	if total == 0 {
		return 0
	}
	return float64(points) / float64(total)
}

// Rank returns the 1-based position of c in the ranking, or 0 if absent.
func (r Result) Rank(c quiz.Category) int {
	for i, s := range r.Ranking {
		if s.Category == c {
			return i + 1
		}
	}
	return 0
}
