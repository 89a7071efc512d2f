// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"leadintake_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadCaptured is published when a lead passes validation and is registered.
type LeadCaptured struct {
	BaseEvent
	LeadID   string `json:"leadId"`
	LeadType string `json:"leadType"`
	Priority string `json:"priority"`
	Email    string `json:"email"`
}

func (e LeadCaptured) EventName() string { return "leads.captured" }

// LeadDeleted is published when a lead is removed from the registry.
type LeadDeleted struct {
	BaseEvent
	LeadID string `json:"leadId"`
}

func (e LeadDeleted) EventName() string { return "leads.deleted" }
