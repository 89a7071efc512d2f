// Package repository keeps the in-process lead registry.
// Records live for the lifetime of the process only; durable storage is
// deliberately out of scope for this service.
package repository

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"leadintake_backend/internal/leads/domain"
)

var (
	// ErrNotFound is returned when no lead exists for the given id.
	ErrNotFound = errors.New("lead not found")
	// ErrDuplicateEmail is returned when a lead with the same email is
	// already registered.
	ErrDuplicateEmail = errors.New("lead already exists")
)

// Registry is a concurrency-safe in-memory lead store keyed by lead id.
type Registry struct {
	mu    sync.RWMutex
	leads map[domain.ID]domain.Lead
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		leads: make(map[domain.ID]domain.Lead),
	}
}

// Insert stores a freshly constructed lead. A record with the same email is
// rejected so one prospect cannot be captured twice.
func (r *Registry) Insert(lead domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.leads {
		if strings.EqualFold(existing.Email, lead.Email) {
			return ErrDuplicateEmail
		}
	}

	r.leads[lead.ID] = lead
	return nil
}

// Get returns the lead with the given id.
func (r *Registry) Get(id domain.ID) (domain.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, ok := r.leads[id]
	if !ok {
		return domain.Lead{}, ErrNotFound
	}
	return lead, nil
}

// EmailExists reports whether a lead with the given email is registered.
func (r *Registry) EmailExists(email string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, existing := range r.leads {
		if strings.EqualFold(existing.Email, email) {
			return true
		}
	}
	return false
}

// List returns a snapshot of every registered lead. With byPriority set the
// snapshot is ordered most urgent first; otherwise ordering is by id so
// results stay deterministic.
func (r *Registry) List(byPriority bool) []domain.Lead {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Lead, 0, len(r.leads))
	for _, lead := range r.leads {
		out = append(out, lead)
	}

	if byPriority {
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Priority.Weight() != out[j].Priority.Weight() {
				return out[i].Priority.Weight() > out[j].Priority.Weight()
			}
			return out[i].ID < out[j].ID
		})
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	}

	return out
}

// Delete removes the lead with the given id.
func (r *Registry) Delete(id domain.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.leads[id]; !ok {
		return ErrNotFound
	}
	delete(r.leads, id)
	return nil
}

// Len returns the number of registered leads.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.leads)
}
