package complaint

import (
	"context"
	"fmt"

	"github.com/Alijeyrad/complaintdesk/internal/repo"
	"github.com/Alijeyrad/complaintdesk/internal/service/notification"
	"github.com/Alijeyrad/complaintdesk/pkg/observability"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Complaint, error)
	GetByID(ctx context.Context, id string) (*repo.Complaint, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Complaint, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*repo.Complaint, error)
	Delete(ctx context.Context, id string) error
	Summarize(ctx context.Context) (repo.Summary, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type complaintService struct {
	store    repo.Store
	notifier notification.Notifier
	metrics  *observability.ComplaintMetrics
}

func New(store repo.Store, notifier notification.Notifier, metrics *observability.ComplaintMetrics) Service {
	return &complaintService{store: store, notifier: notifier, metrics: metrics}
}

func (s *complaintService) Create(ctx context.Context, req CreateRequest) (*repo.Complaint, error) {
	c, err := ValidateForCreate(req)
	if err != nil {
		return nil, err
	}

	if err := s.store.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("create complaint: %w", err)
	}
	s.metrics.ComplaintCreated(ctx, string(c.Category))

	s.notifier.OnCreated(c)
	return c, nil
}

func (s *complaintService) GetByID(ctx context.Context, id string) (*repo.Complaint, error) {
	c, err := s.store.FindByID(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get complaint: %w", err)
	}
	return c, nil
}

func (s *complaintService) List(ctx context.Context, req ListRequest) ([]*repo.Complaint, error) {
	f, err := ValidateFilter(req)
	if err != nil {
		return nil, err
	}

	cs, err := s.store.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	if cs == nil {
		cs = []*repo.Complaint{}
	}
	return cs, nil
}

// Update applies the present fields. A status-carrying update notifies even
// when the value is unchanged.
func (s *complaintService) Update(ctx context.Context, id string, req UpdateRequest) (*repo.Complaint, error) {
	patch, err := ValidateForUpdate(req)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return s.GetByID(ctx, id)
	}

	c, err := s.store.Update(ctx, id, patch)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update complaint: %w", err)
	}

	if patch.Status != nil {
		s.notifier.OnStatusChanged(c)
	}
	return c, nil
}

func (s *complaintService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete complaint: %w", err)
	}
	return nil
}

func (s *complaintService) Summarize(ctx context.Context) (repo.Summary, error) {
	sum, err := s.store.Summarize(ctx)
	if err != nil {
		return repo.Summary{}, fmt.Errorf("summarize complaints: %w", err)
	}
	return sum, nil
}
