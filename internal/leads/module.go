// Package leads provides the lead intake bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"context"

	"leadintake_backend/internal/events"
	apphttp "leadintake_backend/internal/http"
	"leadintake_backend/internal/leads/handler"
	"leadintake_backend/internal/leads/repository"
	"leadintake_backend/internal/leads/service"
	"leadintake_backend/platform/logger"
	"leadintake_backend/platform/validator"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler  *handler.Handler
	service  *service.Service
	registry *repository.Registry
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(eventBus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	registry := repository.New()
	svc := service.New(registry, eventBus, log)

	// Audit trail for every captured lead.
	eventBus.Subscribe(events.LeadCaptured{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		e, ok := event.(events.LeadCaptured)
		if !ok {
			return nil
		}
		log.Info("lead captured", "leadId", e.LeadID, "leadType", e.LeadType, "priority", e.Priority)
		return nil
	}))
	eventBus.Subscribe(events.LeadDeleted{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		e, ok := event.(events.LeadDeleted)
		if !ok {
			return nil
		}
		log.Info("lead deleted", "leadId", e.LeadID)
		return nil
	}))

	h := handler.New(svc, val)

	return &Module{
		handler:  h,
		service:  svc,
		registry: registry,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// RegisterRoutes mounts the leads routes on the shared router.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/leads"))
}

// Service exposes the lead intake service for composition-root consumers.
func (m *Module) Service() *service.Service {
	return m.service
}
