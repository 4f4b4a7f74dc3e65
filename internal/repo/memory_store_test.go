package repo

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newComplaint(title string, p Priority, s Status) *Complaint {
	return &Complaint{
		Title:       title,
		Description: title + " description",
		Category:    CategoryProduct,
		Priority:    p,
		Status:      s,
	}
}

func TestMemoryStore_InsertAssignsIdentityAndTimes(t *testing.T) {
	s := NewMemoryStore()
	fixed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	c := newComplaint("broken", PriorityLow, StatusPending)
	require.NoError(t, s.Insert(context.Background(), c))

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, fixed, c.DateSubmitted)
	assert.Equal(t, fixed, c.CreatedAt)
	assert.Equal(t, fixed, c.UpdatedAt)

	got, err := s.FindByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, *c, *got)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	c := newComplaint("copy", PriorityLow, StatusPending)
	require.NoError(t, s.Insert(context.Background(), c))

	c.Title = "mutated"
	got, err := s.FindByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "copy", got.Title)

	got.Title = "mutated again"
	again, _ := s.FindByID(context.Background(), c.ID)
	assert.Equal(t, "copy", again.Title)
}

func TestMemoryStore_FindByIDMissing(t *testing.T) {
	_, err := NewMemoryStore().FindByID(context.Background(), "nope")
	assert.True(t, IsNotFound(err))
}

func TestMemoryStore_UpdateAppliesOnlyPresentFields(t *testing.T) {
	s := NewMemoryStore()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return created }
	c := newComplaint("original", PriorityLow, StatusPending)
	require.NoError(t, s.Insert(context.Background(), c))

	later := created.Add(time.Hour)
	s.now = func() time.Time { return later }
	got, err := s.Update(context.Background(), c.ID, Patch{Status: ptr(StatusResolved)})
	require.NoError(t, err)

	assert.Equal(t, StatusResolved, got.Status)
	assert.Equal(t, "original", got.Title)
	assert.Equal(t, PriorityLow, got.Priority)
	assert.Equal(t, created, got.DateSubmitted)
	assert.Equal(t, later, got.UpdatedAt)
}

func TestMemoryStore_UpdateMissing(t *testing.T) {
	_, err := NewMemoryStore().Update(context.Background(), "nope", Patch{Title: ptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	c := newComplaint("gone", PriorityHigh, StatusPending)
	require.NoError(t, s.Insert(context.Background(), c))

	require.NoError(t, s.Delete(context.Background(), c.ID))
	_, err := s.FindByID(context.Background(), c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(context.Background(), c.ID), ErrNotFound)
}

func TestMemoryStore_FindFiltersAndOrders(t *testing.T) {
	s := NewMemoryStore()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	insertAt := func(offset time.Duration, title string, p Priority, st Status) *Complaint {
		c := newComplaint(title, p, st)
		c.DateSubmitted = base.Add(offset)
		require.NoError(t, s.Insert(context.Background(), c))
		return c
	}
	oldest := insertAt(0, "oldest", PriorityHigh, StatusPending)
	middle := insertAt(time.Hour, "middle", PriorityLow, StatusPending)
	newest := insertAt(2*time.Hour, "newest", PriorityHigh, StatusResolved)

	all, err := s.Find(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{newest.ID, middle.ID, oldest.ID}, ids(all))

	pending, err := s.Find(context.Background(), Filter{Status: StatusPending})
	require.NoError(t, err)
	assert.Equal(t, []string{middle.ID, oldest.ID}, ids(pending))

	both, err := s.Find(context.Background(), Filter{Status: StatusPending, Priority: PriorityHigh})
	require.NoError(t, err)
	assert.Equal(t, []string{oldest.ID}, ids(both))

	none, err := s.Find(context.Background(), Filter{Status: StatusInProgress})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryStore_Summarize(t *testing.T) {
	s := NewMemoryStore()
	for _, c := range []*Complaint{
		newComplaint("a", PriorityHigh, StatusPending),
		newComplaint("b", PriorityLow, StatusPending),
		newComplaint("c", PriorityHigh, StatusInProgress),
		newComplaint("d", PriorityMedium, StatusResolved),
	} {
		require.NoError(t, s.Insert(context.Background(), c))
	}

	sum, err := s.Summarize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 4, Pending: 2, InProgress: 1, Resolved: 1, HighPriority: 2}, sum)
}

func TestMemoryStore_ConcurrentUpdatesSameID(t *testing.T) {
	s := NewMemoryStore()
	c := newComplaint("race", PriorityLow, StatusPending)
	require.NoError(t, s.Insert(context.Background(), c))

	var wg sync.WaitGroup
	for _, st := range []Status{StatusInProgress, StatusResolved, StatusPending, StatusResolved} {
		wg.Add(1)
		go func(st Status) {
			defer wg.Done()
			_, err := s.Update(context.Background(), c.ID, Patch{Status: ptr(st)})
			assert.NoError(t, err)
		}(st)
	}
	wg.Wait()

	got, err := s.FindByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, got.Status.Valid())
	assert.Equal(t, "race", got.Title)
}

func ids(cs []*Complaint) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}
