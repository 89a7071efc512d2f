// Package service orchestrates lead intake: input hygiene, construction,
// registry bookkeeping, and event publication.
package service

import (
	"context"
	"errors"

	"leadintake_backend/internal/events"
	"leadintake_backend/internal/leads/domain"
	"leadintake_backend/internal/leads/repository"
	"leadintake_backend/internal/leads/transport"
	"leadintake_backend/platform/apperr"
	"leadintake_backend/platform/logger"
	"leadintake_backend/platform/phone"
	"leadintake_backend/platform/sanitize"
)

const (
	msgLeadRejected = "lead validation failed"
	msgLeadExists   = "lead already exists"
	msgLeadNotFound = "lead not found"
)

// Service handles lead intake operations.
type Service struct {
	registry *repository.Registry
	bus      events.Bus
	log      *logger.Logger
}

// New creates a new lead intake service.
func New(registry *repository.Registry, bus events.Bus, log *logger.Logger) *Service {
	return &Service{registry: registry, bus: bus, log: log}
}

// Create builds a lead of the requested variant, registers it, and publishes
// a capture event. With an empty variant the body's type is used, and input
// without any type goes through qualification.
func (s *Service) Create(ctx context.Context, variant string, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	f := req.Fields()
	f.Name = sanitize.Text(f.Name)
	f.Address = sanitize.Text(f.Address)
	if f.Phone != "" {
		f.Phone = phone.NormalizeE164(f.Phone)
	}

	// The route-fixed variant is authoritative; a conflicting body type is
	// caught by the construction pipeline.
	target := variant
	if target == "" {
		target = f.Type
	}
	if target == "" {
		target = string(domain.Qualify(f))
	}

	leadType, ok := domain.ParseLeadType(target)
	if !ok {
		violation := domain.InvalidEnumValue(domain.FieldType, target, domain.LeadTypeValues())
		return transport.LeadResponse{}, apperr.Validation(msgLeadRejected).WithDetails([]domain.Violation{violation})
	}

	lead, err := domain.New(leadType, f)
	if err != nil {
		if vErr, ok := domain.AsValidationError(err); ok {
			s.log.WithContext(ctx).LeadRejected(string(leadType), len(vErr.Violations))
			return transport.LeadResponse{}, apperr.Validation(msgLeadRejected).WithDetails(vErr.Violations)
		}
		return transport.LeadResponse{}, err
	}

	if err := s.registry.Insert(lead); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return transport.LeadResponse{}, apperr.Conflict(msgLeadExists)
		}
		return transport.LeadResponse{}, err
	}

	s.bus.Publish(ctx, events.LeadCaptured{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    string(lead.ID),
		LeadType:  string(lead.Type),
		Priority:  string(lead.Priority),
		Email:     lead.Email,
	})

	return transport.ToLeadResponse(lead), nil
}

// GetByID retrieves a registered lead.
func (s *Service) GetByID(ctx context.Context, id string) (transport.LeadResponse, error) {
	lead, err := s.registry.Get(domain.ID(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.LeadResponse{}, apperr.NotFound(msgLeadNotFound)
		}
		return transport.LeadResponse{}, err
	}
	return transport.ToLeadResponse(lead), nil
}

// List returns every registered lead, most urgent first when byPriority is set.
func (s *Service) List(ctx context.Context, byPriority bool) []transport.LeadResponse {
	leads := s.registry.List(byPriority)
	out := make([]transport.LeadResponse, len(leads))
	for i, lead := range leads {
		out[i] = transport.ToLeadResponse(lead)
	}
	return out
}

// Delete removes a registered lead and publishes a deletion event.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.registry.Delete(domain.ID(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(msgLeadNotFound)
		}
		return err
	}

	s.bus.Publish(ctx, events.LeadDeleted{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    id,
	})
	return nil
}

// EmailExists reports whether a lead with the given email is registered.
func (s *Service) EmailExists(ctx context.Context, email string) bool {
	return s.registry.EmailExists(email)
}
