package domain

import (
	"strings"

	"leadintake_backend/platform/phone"
)

// Lead is a validated prospect record. The Type field is the discriminator
// fixed by the constructor. A Lead is logically immutable once constructed;
// a changed lead is a new record.
type Lead struct {
	ID        ID
	Name      string
	Email     string
	Address   string
	Phone     string
	Interests []ProductInterest
	Priority  Priority
	Type      LeadType
}

// Fields carries the raw caller input for one construction attempt, exactly
// as parsed from the wire. All checks happen in the constructors, never here.
type Fields struct {
	ID        string
	Name      string
	Email     string
	Address   string
	Phone     string
	Interests []string
	Priority  string
	Type      string
}

// policy captures a variant's validation rules as data, so the per-variant
// relaxations stay adjustable without touching the pipeline itself.
type policy struct {
	leadType          LeadType
	defaultPriority   Priority
	priorities        []Priority // priorities the variant accepts when supplied
	phoneOptional     bool
	interestsOptional bool
}

func (p policy) acceptsPriority(prio Priority) bool {
	for _, allowed := range p.priorities {
		if allowed == prio {
			return true
		}
	}
	return false
}

func (p policy) priorityValues() []string {
	return enumValues(p.priorities)
}

var policies = map[LeadType]policy{
	LeadTypeHot: {
		leadType:        LeadTypeHot,
		defaultPriority: PriorityHigh,
		priorities:      []Priority{PriorityHigh},
	},
	LeadTypeWarm: {
		leadType:        LeadTypeWarm,
		defaultPriority: PriorityMedium,
		priorities:      []Priority{PriorityMedium, PriorityHigh},
	},
	LeadTypeCold: {
		leadType:          LeadTypeCold,
		defaultPriority:   PriorityLow,
		priorities:        []Priority{PriorityLow, PriorityMedium, PriorityHigh},
		phoneOptional:     true,
		interestsOptional: true,
	},
}

// NewHotLead constructs a hot lead: concrete interest is required and the
// priority is high.
func NewHotLead(f Fields) (Lead, error) {
	return New(LeadTypeHot, f)
}

// NewWarmLead constructs a warm lead: interest is required, priority medium
// or high.
func NewWarmLead(f Fields) (Lead, error) {
	return New(LeadTypeWarm, f)
}

// NewColdLead constructs a cold lead: contact intent is unconfirmed, so
// phone and interests may be absent.
func NewColdLead(f Fields) (Lead, error) {
	return New(LeadTypeCold, f)
}

// New constructs and validates a lead of the given variant. It returns either
// a fully validated record or a *ValidationError listing every violated
// field; no partially constructed record escapes. Field checks run first, in
// declaration order, and all of them are collected before failing.
// Cross-field checks run only once every field check passed.
func New(t LeadType, f Fields) (Lead, error) {
	pol, ok := policies[t]
	if !ok {
		return Lead{}, &ValidationError{Violations: []Violation{
			InvalidEnumValue("type", string(t), LeadTypeValues()),
		}}
	}

	var violations []Violation

	if f.ID != "" && isBlank(f.ID) {
		violations = append(violations, EmptyField("id"))
	}
	if isBlank(f.Name) {
		violations = append(violations, EmptyField("name"))
	}
	switch {
	case isBlank(f.Email):
		violations = append(violations, EmptyField("email"))
	case !validEmail(f.Email):
		violations = append(violations, InvalidFormat("email", f.Email))
	}
	if isBlank(f.Address) {
		violations = append(violations, EmptyField("address"))
	}
	switch {
	case isBlank(f.Phone):
		if !pol.phoneOptional {
			violations = append(violations, EmptyField("phone"))
		}
	case !phone.ValidShape(f.Phone):
		violations = append(violations, InvalidFormat("phone", f.Phone))
	}

	interests := make([]ProductInterest, 0, len(f.Interests))
	for _, raw := range f.Interests {
		pi, ok := ParseProductInterest(raw)
		if !ok {
			violations = append(violations, InvalidEnumValue("interests", raw, ProductInterestValues()))
			continue
		}
		interests = append(interests, pi)
	}
	if len(f.Interests) == 0 && !pol.interestsOptional {
		violations = append(violations, EmptyCollection("interests"))
	}

	var prio Priority
	prioSupplied := f.Priority != ""
	if prioSupplied {
		p, ok := ParsePriority(f.Priority)
		if !ok {
			violations = append(violations, InvalidEnumValue("priority", f.Priority, PriorityValues()))
			prioSupplied = false
		} else {
			prio = p
		}
	}

	var offeredType LeadType
	typeSupplied := f.Type != ""
	if typeSupplied {
		ot, ok := ParseLeadType(f.Type)
		if !ok {
			violations = append(violations, InvalidEnumValue("type", f.Type, LeadTypeValues()))
			typeSupplied = false
		} else {
			offeredType = ot
		}
	}

	if len(violations) > 0 {
		return Lead{}, &ValidationError{Violations: violations}
	}

	// Cross-field checks: the constructor is authoritative for the
	// discriminator, and each variant constrains the supplied priority.
	if typeSupplied && offeredType != pol.leadType {
		violations = append(violations, DiscriminatorMismatch(string(offeredType), string(pol.leadType)))
	}
	if prioSupplied && !pol.acceptsPriority(prio) {
		violations = append(violations, InconsistentPriority(string(prio), pol.priorityValues()))
	}
	if len(violations) > 0 {
		return Lead{}, &ValidationError{Violations: violations}
	}

	if !prioSupplied {
		prio = pol.defaultPriority
	}
	id := ID(f.ID)
	if id == "" {
		id = NewID()
	}

	return Lead{
		ID:        id,
		Name:      f.Name,
		Email:     f.Email,
		Address:   f.Address,
		Phone:     f.Phone,
		Interests: interests,
		Priority:  prio,
		Type:      pol.leadType,
	}, nil
}

// Qualify picks the variant for input that carries no explicit type.
// Interested prospects go hot unless they arrive with a lower stated urgency;
// prospects without any stated interest land in the cold bucket.
func Qualify(f Fields) LeadType {
	if len(f.Interests) == 0 {
		return LeadTypeCold
	}
	switch p, _ := ParsePriority(f.Priority); p {
	case PriorityMedium:
		return LeadTypeWarm
	case PriorityLow:
		return LeadTypeCold
	default:
		return LeadTypeHot
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// validEmail checks the general local-part@domain shape: exactly one @,
// non-empty parts on both sides, and a dot somewhere in the domain.
func validEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}
	domain := s[at+1:]
	if domain == "" || !strings.Contains(domain, ".") {
		return false
	}
	return true
}
