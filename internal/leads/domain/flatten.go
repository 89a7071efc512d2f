package domain

// Flat mapping keys shared by Flatten and FromFlat.
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldAddress   = "address"
	FieldPhone     = "phone"
	FieldInterests = "interests"
	FieldPriority  = "priority"
	FieldType      = "type"
)

// Flatten renders the record as a flat field-name to primitive mapping
// (strings, string lists, enum names) suitable for JSON encoding. FromFlat
// accepts the same shape, so FromFlat(l.Flatten()) reproduces l.
func (l Lead) Flatten() map[string]any {
	interests := make([]string, len(l.Interests))
	for i, pi := range l.Interests {
		interests[i] = string(pi)
	}

	return map[string]any{
		FieldID:        string(l.ID),
		FieldName:      l.Name,
		FieldEmail:     l.Email,
		FieldAddress:   l.Address,
		FieldPhone:     l.Phone,
		FieldInterests: interests,
		FieldPriority:  string(l.Priority),
		FieldType:      string(l.Type),
	}
}

// FromFlat constructs a lead from the flat mapping shape produced by
// Flatten, dispatching on the type key. The full construction pipeline runs,
// so the result is always a validated record.
func FromFlat(m map[string]any) (Lead, error) {
	f := FieldsFromFlat(m)

	t, ok := ParseLeadType(f.Type)
	if !ok {
		return Lead{}, &ValidationError{Violations: []Violation{
			InvalidEnumValue(FieldType, f.Type, LeadTypeValues()),
		}}
	}

	return New(t, f)
}

// FieldsFromFlat extracts raw candidate fields from a flat mapping without
// validating them.
func FieldsFromFlat(m map[string]any) Fields {
	return Fields{
		ID:        flatString(m, FieldID),
		Name:      flatString(m, FieldName),
		Email:     flatString(m, FieldEmail),
		Address:   flatString(m, FieldAddress),
		Phone:     flatString(m, FieldPhone),
		Interests: flatStrings(m, FieldInterests),
		Priority:  flatString(m, FieldPriority),
		Type:      flatString(m, FieldType),
	}
}

func flatString(m map[string]any, key string) string {
	if value, ok := m[key].(string); ok {
		return value
	}
	return ""
}

// flatStrings accepts both []string and the []any that encoding/json
// produces when decoding into map[string]any.
func flatStrings(m map[string]any, key string) []string {
	switch value := m[key].(type) {
	case []string:
		return value
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
