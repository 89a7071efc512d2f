// Package transport defines the request and response shapes for the leads
// HTTP surface. Semantic validation lives in the domain construction
// pipeline; tags here only cap sizes so oversized payloads are rejected
// before they reach it.
package transport

import (
	"leadintake_backend/internal/leads/domain"
)

// Request DTOs

// CreateLeadRequest is the accepted input shape for every lead constructor.
// It mirrors the flat serialization mapping of a lead record.
type CreateLeadRequest struct {
	ID        string   `json:"id,omitempty" validate:"max=64"`
	Name      string   `json:"name" validate:"max=200"`
	Email     string   `json:"email" validate:"max=254"`
	Address   string   `json:"address" validate:"max=500"`
	Phone     string   `json:"phone,omitempty" validate:"max=32"`
	Interests []string `json:"interests,omitempty" validate:"max=32,dive,max=64"`
	Priority  string   `json:"priority,omitempty" validate:"max=16"`
	Type      string   `json:"type,omitempty" validate:"max=16"`
}

// Fields converts the request into raw domain construction input.
func (r CreateLeadRequest) Fields() domain.Fields {
	return domain.Fields{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Address:   r.Address,
		Phone:     r.Phone,
		Interests: r.Interests,
		Priority:  r.Priority,
		Type:      r.Type,
	}
}

type ListLeadsRequest struct {
	Sort string `form:"sort" validate:"omitempty,oneof=priority"`
}

type CheckDuplicateRequest struct {
	Email string `form:"email" validate:"required,email,max=254"`
}

// Response DTOs

type LeadResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Address   string   `json:"address"`
	Phone     string   `json:"phone,omitempty"`
	Interests []string `json:"interests"`
	Priority  string   `json:"priority"`
	Type      string   `json:"type"`
}

type DuplicateResponse struct {
	Duplicate bool `json:"duplicate"`
}

// ToLeadResponse maps a validated record onto its wire representation.
func ToLeadResponse(lead domain.Lead) LeadResponse {
	interests := make([]string, len(lead.Interests))
	for i, pi := range lead.Interests {
		interests[i] = string(pi)
	}

	return LeadResponse{
		ID:        string(lead.ID),
		Name:      lead.Name,
		Email:     lead.Email,
		Address:   lead.Address,
		Phone:     lead.Phone,
		Interests: interests,
		Priority:  string(lead.Priority),
		Type:      string(lead.Type),
	}
}
