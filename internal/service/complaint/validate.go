package complaint

import (
	"strings"

	"github.com/Alijeyrad/complaintdesk/internal/repo"
)

// CreateRequest is the caller's input for a new complaint. Nil means absent.
type CreateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

// UpdateRequest carries the fields to change. Nil means untouched.
type UpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

type ListRequest struct {
	Status   string
	Priority string
}

// ValidateForCreate checks every field and returns the normalized record.
// Status falls back to Pending when absent.
func ValidateForCreate(req CreateRequest) (*repo.Complaint, error) {
	ve := &ValidationError{}

	title := requiredText(ve, "title", req.Title)
	description := requiredText(ve, "description", req.Description)
	category := requiredEnum(ve, "category", req.Category, repo.Categories)
	priority := requiredEnum(ve, "priority", req.Priority, repo.Priorities)

	status := repo.StatusPending
	if req.Status != nil {
		status = enumValue(ve, "status", *req.Status, repo.Statuses)
	}

	if err := ve.orNil(); err != nil {
		return nil, err
	}
	return &repo.Complaint{
		Title:       title,
		Description: description,
		Category:    category,
		Priority:    priority,
		Status:      status,
	}, nil
}

// ValidateForUpdate checks only the present fields, with the create rules.
func ValidateForUpdate(req UpdateRequest) (repo.Patch, error) {
	ve := &ValidationError{}
	var p repo.Patch

	if req.Title != nil {
		v := requiredText(ve, "title", req.Title)
		p.Title = &v
	}
	if req.Description != nil {
		v := requiredText(ve, "description", req.Description)
		p.Description = &v
	}
	if req.Category != nil {
		v := enumValue(ve, "category", *req.Category, repo.Categories)
		p.Category = &v
	}
	if req.Priority != nil {
		v := enumValue(ve, "priority", *req.Priority, repo.Priorities)
		p.Priority = &v
	}
	if req.Status != nil {
		v := enumValue(ve, "status", *req.Status, repo.Statuses)
		p.Status = &v
	}

	if err := ve.orNil(); err != nil {
		return repo.Patch{}, err
	}
	return p, nil
}

// ValidateFilter rejects filter values outside their enumerations.
// Empty values impose no constraint.
func ValidateFilter(req ListRequest) (repo.Filter, error) {
	ve := &ValidationError{}
	var f repo.Filter

	if s := strings.TrimSpace(req.Status); s != "" {
		f.Status = enumValue(ve, "status", s, repo.Statuses)
	}
	if p := strings.TrimSpace(req.Priority); p != "" {
		f.Priority = enumValue(ve, "priority", p, repo.Priorities)
	}

	if err := ve.orNil(); err != nil {
		return repo.Filter{}, err
	}
	return f, nil
}

func requiredText(ve *ValidationError, field string, v *string) string {
	if v == nil {
		ve.add(field, "is required")
		return ""
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		ve.add(field, "must not be empty")
	}
	return s
}

func requiredEnum[T ~string](ve *ValidationError, field string, v *string, allowed []T) T {
	if v == nil {
		ve.add(field, "is required")
		return ""
	}
	return enumValue(ve, field, *v, allowed)
}

func enumValue[T ~string](ve *ValidationError, field, v string, allowed []T) T {
	for _, a := range allowed {
		if string(a) == v {
			return a
		}
	}
	ve.add(field, "must be one of "+joinEnum(allowed))
	return ""
}

func joinEnum[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
