// Package scoring accumulates per-category scores and resolves a winner.
package scoring

import "github.com/abhisek/wizardquiz/internal/quiz"

// Score is the running total for one category.
type Score struct {
	Points int
	Count  int
}

// Tally holds a Score for every category, indexed by category.
// It is a value type: assigning or passing a Tally copies it.
type Tally [quiz.NumCategories]Score

// Apply returns a new tally with opt counted once. t is not modified.
// opt.Category must be a declared category.
func Apply(t Tally, opt quiz.Option) Tally {
	s := t[opt.Category]
	s.Points += opt.Points
	s.Count++
	t[opt.Category] = s
	return t
}

// FromCounts builds a tally from a sparse map. Missing categories stay zero.
func FromCounts(scores map[quiz.Category]Score) Tally {
	var t Tally
	for c, s := range scores {
		if c.Valid() {
			t[c] = s
		}
	}
	return t
}

// Get returns the score for c.
func (t Tally) Get(c quiz.Category) Score {
	if !c.Valid() {
		return Score{}
	}
	return t[c]
}

// TotalPoints sums points across all categories.
func (t Tally) TotalPoints() int {
	total := 0
	for _, s := range t {
		total += s.Points
	}
	return total
}

// TotalCount sums selection counts across all categories.
func (t Tally) TotalCount() int {
	total := 0
	for _, s := range t {
		total += s.Count
	}
	return total
}

// Standings projects the tally in category declaration order.
func (t Tally) Standings() []Standing {
	out := make([]Standing, 0, len(t))
	for _, c := range quiz.AllCategories() {
		out = append(out, Standing{Category: c, Points: t[c].Points, Count: t[c].Count})
	}
	return out
}
