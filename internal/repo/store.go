package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no complaint has the requested id.
var ErrNotFound = errors.New("complaint not found")

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Store is the document store behind the complaint service.
// Update and Delete are atomic per record.
type Store interface {
	Insert(ctx context.Context, c *Complaint) error
	FindByID(ctx context.Context, id string) (*Complaint, error)
	Find(ctx context.Context, f Filter) ([]*Complaint, error)
	Update(ctx context.Context, id string, p Patch) (*Complaint, error)
	Delete(ctx context.Context, id string) error
	Summarize(ctx context.Context) (Summary, error)
}

// NewID returns a fresh time-ordered identifier.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
