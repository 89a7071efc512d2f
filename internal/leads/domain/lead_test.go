package domain

import (
	"reflect"
	"testing"
)

func validFields() Fields {
	return Fields{
		Name:      "John Doe",
		Email:     "john.doe@example.com",
		Address:   "123 Main St",
		Phone:     "+1234567890",
		Interests: []string{"two_room_apartment", "three_room_house"},
	}
}

func TestNewFixesDiscriminatorPerVariant(t *testing.T) {
	tests := []struct {
		name string
		ctor func(Fields) (Lead, error)
		want LeadType
	}{
		{"hot", NewHotLead, LeadTypeHot},
		{"warm", NewWarmLead, LeadTypeWarm},
		{"cold", NewColdLead, LeadTypeCold},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lead, err := tc.ctor(validFields())
			if err != nil {
				t.Fatalf("constructing %s lead: %v", tc.name, err)
			}
			if lead.Type != tc.want {
				t.Errorf("lead.Type = %q, want %q", lead.Type, tc.want)
			}
			if lead.ID == "" {
				t.Error("lead.ID should be auto-generated, got empty")
			}
		})
	}
}

func TestNewAppliesDefaultPriorities(t *testing.T) {
	tests := []struct {
		ctor func(Fields) (Lead, error)
		want Priority
	}{
		{NewHotLead, PriorityHigh},
		{NewWarmLead, PriorityMedium},
		{NewColdLead, PriorityLow},
	}

	for _, tc := range tests {
		lead, err := tc.ctor(validFields())
		if err != nil {
			t.Fatalf("unexpected construction error: %v", err)
		}
		if lead.Priority != tc.want {
			t.Errorf("default priority = %q, want %q", lead.Priority, tc.want)
		}
	}
}

func TestHotLeadRequiresInterests(t *testing.T) {
	f := validFields()
	f.Interests = nil

	_, err := NewHotLead(f)
	vErr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if !vErr.Has("interests", CodeEmptyCollection) {
		t.Errorf("expected EmptyCollection(interests), got %v", vErr.Violations)
	}
}

func TestColdLeadAllowsEmptyInterestsAndPhone(t *testing.T) {
	f := validFields()
	f.Interests = nil
	f.Phone = ""

	lead, err := NewColdLead(f)
	if err != nil {
		t.Fatalf("cold lead with empty interests and phone should construct: %v", err)
	}
	if len(lead.Interests) != 0 {
		t.Errorf("lead.Interests = %v, want empty", lead.Interests)
	}
	if lead.Priority != PriorityLow {
		t.Errorf("lead.Priority = %q, want low", lead.Priority)
	}
}

func TestInvalidEmailFailsWithInvalidFormat(t *testing.T) {
	for _, ctor := range []func(Fields) (Lead, error){NewHotLead, NewWarmLead, NewColdLead} {
		f := validFields()
		f.Email = "not-an-email"

		_, err := ctor(f)
		vErr, ok := AsValidationError(err)
		if !ok {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		if !vErr.Has("email", CodeInvalidFormat) {
			t.Errorf("expected InvalidFormat(email), got %v", vErr.Violations)
		}
		for _, v := range vErr.Violations {
			if v.Field == "email" && v.Value != "not-an-email" {
				t.Errorf("violation should carry the offending value, got %q", v.Value)
			}
		}
	}
}

func TestHotLeadRejectsLowPriority(t *testing.T) {
	f := validFields()
	f.Priority = "low"

	_, err := NewHotLead(f)
	vErr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if !vErr.Has("priority", CodeInconsistentPriority) {
		t.Errorf("expected InconsistentPriority, got %v", vErr.Violations)
	}
}

func TestWarmLeadPriorityRules(t *testing.T) {
	tests := []struct {
		priority string
		wantErr  bool
	}{
		{"medium", false},
		{"high", false},
		{"low", true},
	}

	for _, tc := range tests {
		f := validFields()
		f.Priority = tc.priority

		_, err := NewWarmLead(f)
		if tc.wantErr {
			vErr, ok := AsValidationError(err)
			if !ok || !vErr.Has("priority", CodeInconsistentPriority) {
				t.Errorf("warm lead with priority %q: expected InconsistentPriority, got %v", tc.priority, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("warm lead with priority %q: unexpected error %v", tc.priority, err)
		}
	}
}

func TestColdLeadAcceptsAnyPriority(t *testing.T) {
	for _, priority := range []string{"low", "medium", "high"} {
		f := validFields()
		f.Priority = priority
		if _, err := NewColdLead(f); err != nil {
			t.Errorf("cold lead with priority %q: unexpected error %v", priority, err)
		}
	}
}

func TestDiscriminatorMismatch(t *testing.T) {
	f := validFields()
	f.Type = "cold"

	_, err := NewHotLead(f)
	vErr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if !vErr.Has("type", CodeDiscriminatorMismatch) {
		t.Errorf("expected DiscriminatorMismatch, got %v", vErr.Violations)
	}
}

func TestMatchingExplicitTypeIsAccepted(t *testing.T) {
	f := validFields()
	f.Type = "hot"

	lead, err := NewHotLead(f)
	if err != nil {
		t.Fatalf("matching explicit type should construct: %v", err)
	}
	if lead.Type != LeadTypeHot {
		t.Errorf("lead.Type = %q, want hot", lead.Type)
	}
}

func TestAllFieldViolationsAreCollected(t *testing.T) {
	f := Fields{
		Name:      "   ",
		Email:     "broken",
		Address:   "",
		Phone:     "abc",
		Interests: []string{"castle"},
	}

	_, err := NewHotLead(f)
	vErr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}

	expected := []struct {
		field string
		code  Code
	}{
		{"name", CodeEmptyField},
		{"email", CodeInvalidFormat},
		{"address", CodeEmptyField},
		{"phone", CodeInvalidFormat},
		{"interests", CodeInvalidEnumValue},
	}
	if len(vErr.Violations) != len(expected) {
		t.Fatalf("expected %d violations, got %d: %v", len(expected), len(vErr.Violations), vErr.Violations)
	}
	for i, want := range expected {
		got := vErr.Violations[i]
		if got.Field != want.field || got.Code != want.code {
			t.Errorf("violation[%d] = %s/%s, want %s/%s", i, got.Field, got.Code, want.field, want.code)
		}
	}
}

func TestCrossFieldChecksWaitForCleanFields(t *testing.T) {
	// Low priority on a hot lead would be inconsistent, but the empty name
	// must be reported alone: cross-field checks run only on clean input.
	f := validFields()
	f.Name = ""
	f.Priority = "low"

	_, err := NewHotLead(f)
	vErr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if vErr.Has("priority", CodeInconsistentPriority) {
		t.Errorf("cross-field violation reported alongside field violations: %v", vErr.Violations)
	}
	if !vErr.Has("name", CodeEmptyField) {
		t.Errorf("expected EmptyField(name), got %v", vErr.Violations)
	}
}

func TestSuppliedIDIsPreserved(t *testing.T) {
	f := validFields()
	f.ID = "lead-42"

	lead, err := NewHotLead(f)
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	if lead.ID != "lead-42" {
		t.Errorf("lead.ID = %q, want supplied id preserved", lead.ID)
	}
}

func TestBlankSuppliedIDIsRejected(t *testing.T) {
	f := validFields()
	f.ID = "   "

	_, err := NewHotLead(f)
	vErr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if !vErr.Has("id", CodeEmptyField) {
		t.Errorf("expected EmptyField(id), got %v", vErr.Violations)
	}
}

func TestUnknownEnumValuesAreReportedWithAllowedSet(t *testing.T) {
	f := validFields()
	f.Priority = "urgent"

	_, err := NewHotLead(f)
	vErr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}

	var found bool
	for _, v := range vErr.Violations {
		if v.Field == "priority" && v.Code == CodeInvalidEnumValue {
			found = true
			if !reflect.DeepEqual(v.Allowed, []string{"low", "medium", "high"}) {
				t.Errorf("allowed set = %v, want the closed priority set", v.Allowed)
			}
		}
	}
	if !found {
		t.Errorf("expected InvalidEnumValue(priority), got %v", vErr.Violations)
	}
}

// End-to-end example: the canonical hot-lead input constructs with a fresh
// id, the fields preserved verbatim, and survives a flatten round trip.
func TestHotLeadEndToEnd(t *testing.T) {
	f := validFields()

	lead, err := NewHotLead(f)
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}

	if lead.Type != LeadTypeHot {
		t.Errorf("lead.Type = %q, want hot", lead.Type)
	}
	if lead.ID == "" {
		t.Error("expected a freshly generated id")
	}
	if lead.Name != "John Doe" || lead.Email != "john.doe@example.com" ||
		lead.Address != "123 Main St" || lead.Phone != "+1234567890" {
		t.Errorf("fields not preserved verbatim: %+v", lead)
	}
	wantInterests := []ProductInterest{TwoRoomApartment, ThreeRoomHouse}
	if !reflect.DeepEqual(lead.Interests, wantInterests) {
		t.Errorf("lead.Interests = %v, want %v", lead.Interests, wantInterests)
	}

	restored, err := FromFlat(lead.Flatten())
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if !reflect.DeepEqual(restored, lead) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", restored, lead)
	}
}

func TestQualify(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		want   LeadType
	}{
		{"interested defaults hot", Fields{Interests: []string{"land"}}, LeadTypeHot},
		{"interested high stays hot", Fields{Interests: []string{"land"}, Priority: "high"}, LeadTypeHot},
		{"interested medium goes warm", Fields{Interests: []string{"land"}, Priority: "medium"}, LeadTypeWarm},
		{"interested low goes cold", Fields{Interests: []string{"land"}, Priority: "low"}, LeadTypeCold},
		{"no interests goes cold", Fields{}, LeadTypeCold},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Qualify(tc.fields); got != tc.want {
				t.Errorf("Qualify() = %q, want %q", got, tc.want)
			}
		})
	}
}
