package complaint

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/complaintdesk/internal/repo"
	"github.com/Alijeyrad/complaintdesk/internal/service/notification"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) OnCreated(c *repo.Complaint)       { m.Called(c) }
func (m *mockNotifier) OnStatusChanged(c *repo.Complaint) { m.Called(c) }

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Insert(ctx context.Context, c *repo.Complaint) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockStore) FindByID(ctx context.Context, id string) (*repo.Complaint, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*repo.Complaint)
	return c, args.Error(1)
}

func (m *mockStore) Find(ctx context.Context, f repo.Filter) ([]*repo.Complaint, error) {
	args := m.Called(ctx, f)
	cs, _ := args.Get(0).([]*repo.Complaint)
	return cs, args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, id string, p repo.Patch) (*repo.Complaint, error) {
	args := m.Called(ctx, id, p)
	c, _ := args.Get(0).(*repo.Complaint)
	return c, args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStore) Summarize(ctx context.Context) (repo.Summary, error) {
	args := m.Called(ctx)
	return args.Get(0).(repo.Summary), args.Error(1)
}

func str(s string) *string { return &s }

func validCreate() CreateRequest {
	return CreateRequest{
		Title:       str("Late delivery"),
		Description: str("Order arrived two weeks late"),
		Category:    str("Service"),
		Priority:    str("High"),
	}
}

func newTestService(t *testing.T) (Service, *repo.MemoryStore, *mockNotifier) {
	t.Helper()
	store := repo.NewMemoryStore()
	n := new(mockNotifier)
	return New(store, n, nil), store, n
}

func TestCreate_DefaultsStatusAndNotifies(t *testing.T) {
	svc, _, n := newTestService(t)
	n.On("OnCreated", mock.AnythingOfType("*repo.Complaint")).Once()

	c, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, repo.StatusPending, c.Status)
	assert.False(t, c.DateSubmitted.IsZero())
	n.AssertExpectations(t)
}

func TestCreate_TrimsText(t *testing.T) {
	svc, _, n := newTestService(t)
	n.On("OnCreated", mock.Anything)

	req := validCreate()
	req.Title = str("  padded title \n")
	c, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "padded title", c.Title)
}

func TestCreate_RejectsInvalidWithoutPersisting(t *testing.T) {
	svc, store, n := newTestService(t)

	req := validCreate()
	req.Category = str("Billing")
	req.Title = str("   ")
	req.Description = nil

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "category")
	assert.Contains(t, ve.Fields, "title")
	assert.Contains(t, ve.Fields, "description")

	all, _ := store.Find(context.Background(), repo.Filter{})
	assert.Empty(t, all)
	n.AssertNotCalled(t, "OnCreated", mock.Anything)
}

func TestCreate_SinkFailureStillReturnsRecord(t *testing.T) {
	store := repo.NewMemoryStore()
	sink := notification.SinkFunc(func(context.Context, notification.Event, *repo.Complaint) error {
		return errors.New("smtp unreachable")
	})
	d := notification.NewDispatcher(sink, time.Second, nil)
	svc := New(store, d, nil)

	c, err := svc.Create(context.Background(), validCreate())
	d.Wait()

	require.NoError(t, err)
	got, err := svc.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestCreate_StoreFaultIsWrapped(t *testing.T) {
	store := new(mockStore)
	boom := errors.New("disk full")
	store.On("Insert", mock.Anything, mock.Anything).Return(boom)
	n := new(mockNotifier)

	_, err := New(store, n, nil).Create(context.Background(), validCreate())
	assert.ErrorIs(t, err, boom)
	assert.False(t, IsValidation(err))
	n.AssertNotCalled(t, "OnCreated", mock.Anything)
}

func TestUpdate_ArbitraryStatusTransitions(t *testing.T) {
	svc, _, n := newTestService(t)
	n.On("OnCreated", mock.Anything)
	n.On("OnStatusChanged", mock.Anything)

	c, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	for _, st := range []string{"Resolved", "Pending", "In Progress", "Resolved", "In Progress"} {
		got, err := svc.Update(context.Background(), c.ID, UpdateRequest{Status: str(st)})
		require.NoError(t, err, st)
		assert.Equal(t, repo.Status(st), got.Status)
	}
	n.AssertNumberOfCalls(t, "OnStatusChanged", 5)
}

func TestUpdate_LateDeliveryScenario(t *testing.T) {
	svc, _, n := newTestService(t)
	n.On("OnCreated", mock.Anything).Once()
	n.On("OnStatusChanged", mock.MatchedBy(func(c *repo.Complaint) bool {
		return c.Status == repo.StatusInProgress
	})).Once()

	c, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), c.ID, UpdateRequest{Status: str("In Progress")})
	require.NoError(t, err)

	assert.Equal(t, repo.StatusInProgress, updated.Status)
	assert.Equal(t, "Late delivery", updated.Title)
	assert.Equal(t, repo.PriorityHigh, updated.Priority)
	assert.Equal(t, c.DateSubmitted, updated.DateSubmitted)
	n.AssertExpectations(t)
	n.AssertNumberOfCalls(t, "OnStatusChanged", 1)
}

func TestUpdate_WithoutStatusDoesNotNotify(t *testing.T) {
	svc, _, n := newTestService(t)
	n.On("OnCreated", mock.Anything)

	c, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	got, err := svc.Update(context.Background(), c.ID, UpdateRequest{Priority: str("Low")})
	require.NoError(t, err)
	assert.Equal(t, repo.PriorityLow, got.Priority)
	n.AssertNotCalled(t, "OnStatusChanged", mock.Anything)
}

func TestUpdate_InvalidLeavesRecordUntouched(t *testing.T) {
	svc, _, n := newTestService(t)
	n.On("OnCreated", mock.Anything)

	c, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), c.ID, UpdateRequest{Status: str("Closed"), Title: str("new")})
	require.True(t, IsValidation(err))

	got, err := svc.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, repo.StatusPending, got.Status)
	assert.Equal(t, "Late delivery", got.Title)
}

func TestUpdate_EmptyPatchReturnsCurrent(t *testing.T) {
	svc, _, n := newTestService(t)
	n.On("OnCreated", mock.Anything)

	c, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	got, err := svc.Update(context.Background(), c.ID, UpdateRequest{})
	require.NoError(t, err)
	assert.Equal(t, c.UpdatedAt, got.UpdatedAt)

	_, err = svc.Update(context.Background(), "missing", UpdateRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_Missing(t *testing.T) {
	svc, _, n := newTestService(t)
	_, err := svc.Update(context.Background(), "missing", UpdateRequest{Status: str("Resolved")})
	assert.ErrorIs(t, err, ErrNotFound)
	n.AssertNotCalled(t, "OnStatusChanged", mock.Anything)
}

func TestDelete_ThenNotFound(t *testing.T) {
	svc, _, n := newTestService(t)
	n.On("OnCreated", mock.Anything)

	c, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), c.ID))
	_, err = svc.GetByID(context.Background(), c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), c.ID), ErrNotFound)
}

func TestList_FilterSubsetNewestFirst(t *testing.T) {
	svc, _, n := newTestService(t)
	n.On("OnCreated", mock.Anything)

	var created []*repo.Complaint
	for _, p := range []string{"High", "Low", "High"} {
		req := validCreate()
		req.Priority = str(p)
		c, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
		created = append(created, c)
		time.Sleep(2 * time.Millisecond)
	}

	all, err := svc.List(context.Background(), ListRequest{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].DateSubmitted.After(all[i-1].DateSubmitted))
	}

	high, err := svc.List(context.Background(), ListRequest{Priority: "High"})
	require.NoError(t, err)
	require.Len(t, high, 2)
	assert.Equal(t, created[2].ID, high[0].ID)
	assert.Equal(t, created[0].ID, high[1].ID)

	none, err := svc.List(context.Background(), ListRequest{Status: "Resolved"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestList_RejectsUnknownFilter(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.List(context.Background(), ListRequest{Status: "Archived"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "status")
}

func TestSummarize(t *testing.T) {
	svc, _, n := newTestService(t)
	n.On("OnCreated", mock.Anything)
	n.On("OnStatusChanged", mock.Anything)

	a, _ := svc.Create(context.Background(), validCreate())
	req := validCreate()
	req.Priority = str("Low")
	_, _ = svc.Create(context.Background(), req)
	_, err := svc.Update(context.Background(), a.ID, UpdateRequest{Status: str("Resolved")})
	require.NoError(t, err)

	sum, err := svc.Summarize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repo.Summary{Total: 2, Pending: 1, Resolved: 1, HighPriority: 1}, sum)
}

func TestSummarize_StoreFault(t *testing.T) {
	store := new(mockStore)
	store.On("Summarize", mock.Anything).Return(repo.Summary{}, errors.New("timeout"))

	_, err := New(store, new(mockNotifier), nil).Summarize(context.Background())
	assert.ErrorContains(t, err, "summarize complaints")
}
