package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// GormStore keeps complaints in a SQL table through gorm.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

func (s *GormStore) Insert(ctx context.Context, c *Complaint) error {
	now := s.now().UTC()
	if c.ID == "" {
		c.ID = NewID()
	}
	if c.DateSubmitted.IsZero() {
		c.DateSubmitted = now
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("insert complaint: %w", err)
	}
	return nil
}

func (s *GormStore) FindByID(ctx context.Context, id string) (*Complaint, error) {
	var c Complaint
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find complaint %s: %w", id, err)
	}
	return &c, nil
}

func (s *GormStore) Find(ctx context.Context, f Filter) ([]*Complaint, error) {
	out := make([]*Complaint, 0)
	q := s.db.WithContext(ctx).Model(&Complaint{})
	if cond := f.Conditions(); len(cond) > 0 {
		q = q.Where(cond)
	}
	if err := q.Order(orderNewestFirst).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return out, nil
}

// Update writes the present fields in a single UPDATE and re-reads the row.
func (s *GormStore) Update(ctx context.Context, id string, p Patch) (*Complaint, error) {
	cols := p.Columns()
	cols["updated_at"] = s.now().UTC()

	res := s.db.WithContext(ctx).Model(&Complaint{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, fmt.Errorf("update complaint %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.FindByID(ctx, id)
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&Complaint{})
	if res.Error != nil {
		return fmt.Errorf("delete complaint %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type summaryRow struct {
	Total        int64
	Pending      int64
	InProgress   int64
	Resolved     int64
	HighPriority int64
}

func (s *GormStore) Summarize(ctx context.Context) (Summary, error) {
	var row summaryRow
	err := s.db.WithContext(ctx).Model(&Complaint{}).Select(
		"COUNT(*) AS total, "+
			"COUNT(*) FILTER (WHERE status = ?) AS pending, "+
			"COUNT(*) FILTER (WHERE status = ?) AS in_progress, "+
			"COUNT(*) FILTER (WHERE status = ?) AS resolved, "+
			"COUNT(*) FILTER (WHERE priority = ?) AS high_priority",
		string(StatusPending), string(StatusInProgress), string(StatusResolved), string(PriorityHigh),
	).Scan(&row).Error
	if err != nil {
		return Summary{}, fmt.Errorf("summarize complaints: %w", err)
	}
	return Summary(row), nil
}
