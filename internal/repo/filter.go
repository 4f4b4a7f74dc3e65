package repo

import (
	"sort"
)

// Filter narrows a listing. Empty fields match everything; set fields are ANDed.
type Filter struct {
	Status   Status
	Priority Priority
}

// Match reports whether c satisfies every set field of f.
func (f Filter) Match(c *Complaint) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Priority != "" && c.Priority != f.Priority {
		return false
	}
	return true
}

// Conditions returns the equality predicates for the set fields.
func (f Filter) Conditions() map[string]any {
	cond := make(map[string]any, 2)
	if f.Status != "" {
		cond["status"] = string(f.Status)
	}
	if f.Priority != "" {
		cond["priority"] = string(f.Priority)
	}
	return cond
}

// orderNewestFirst is the listing order: dateSubmitted desc, then id desc.
const orderNewestFirst = "date_submitted DESC, id DESC"

// SortNewestFirst orders complaints the same way the SQL store does.
func SortNewestFirst(cs []*Complaint) {
	sort.SliceStable(cs, func(i, j int) bool {
		a, b := cs[i], cs[j]
		if !a.DateSubmitted.Equal(b.DateSubmitted) {
			return a.DateSubmitted.After(b.DateSubmitted)
		}
		return a.ID > b.ID
	})
}

// Tally folds one complaint into the summary.
func (s *Summary) Tally(c *Complaint) {
	s.Total++
	switch c.Status {
	case StatusPending:
		s.Pending++
	case StatusInProgress:
		s.InProgress++
	case StatusResolved:
		s.Resolved++
	}
	if c.Priority == PriorityHigh {
		s.HighPriority++
	}
}
