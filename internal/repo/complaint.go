// Package repo holds the complaint record and the stores that persist it.
package repo

import (
	"time"
)

type Category string

const (
	CategoryProduct Category = "Product"
	CategoryService Category = "Service"
	CategorySupport Category = "Support"
)

var Categories = []Category{CategoryProduct, CategoryService, CategorySupport}

func (c Category) Valid() bool {
	switch c {
	case CategoryProduct, CategoryService, CategorySupport:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

var Statuses = []Status{StatusPending, StatusInProgress, StatusResolved}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Complaint is a single submitted grievance.
type Complaint struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title         string    `json:"title" gorm:"not null"`
	Description   string    `json:"description" gorm:"type:text;not null"`
	Category      Category  `json:"category" gorm:"type:varchar(16);not null"`
	Priority      Priority  `json:"priority" gorm:"type:varchar(16);not null;index:idx_complaints_status_priority,priority:2"`
	Status        Status    `json:"status" gorm:"type:varchar(16);not null;index:idx_complaints_status_priority,priority:1"`
	DateSubmitted time.Time `json:"dateSubmitted" gorm:"not null;index;<-:create"`
	CreatedAt     time.Time `json:"createdAt" gorm:"<-:create"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Complaint) TableName() string { return "complaints" }

// Patch carries the fields of a partial update. Nil means untouched.
type Patch struct {
	Title       *string
	Description *string
	Category    *Category
	Priority    *Priority
	Status      *Status
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil &&
		p.Priority == nil && p.Status == nil
}

// Apply copies the present fields onto c.
func (p Patch) Apply(c *Complaint) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.Priority != nil {
		c.Priority = *p.Priority
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
}

// Columns returns the column → value map for an UPDATE of the present fields.
func (p Patch) Columns() map[string]any {
	cols := make(map[string]any, 5)
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Category != nil {
		cols["category"] = string(*p.Category)
	}
	if p.Priority != nil {
		cols["priority"] = string(*p.Priority)
	}
	if p.Status != nil {
		cols["status"] = string(*p.Status)
	}
	return cols
}

// Summary is the dashboard headline: totals by status plus the high-priority count.
type Summary struct {
	Total        int64 `json:"total"`
	Pending      int64 `json:"pending"`
	InProgress   int64 `json:"inProgress"`
	Resolved     int64 `json:"resolved"`
	HighPriority int64 `json:"highPriority"`
}
