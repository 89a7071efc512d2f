// Package domain provides the core lead record model: typed enumerations,
// identifier generation, and the construction-time validation pipeline.
package domain

// Priority classifies how urgently a lead should be followed up.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// priorityWeights order priorities for sorted listings. The weights come
// from the original scoring scale (low=1, medium=2, high=4).
var priorityWeights = map[Priority]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   4,
}

// Weight returns the sort weight of the priority; higher means more urgent.
func (p Priority) Weight() int {
	return priorityWeights[p]
}

// ParsePriority maps a raw value onto the closed Priority set.
func ParsePriority(raw string) (Priority, bool) {
	for _, p := range priorities {
		if raw == string(p) {
			return p, true
		}
	}
	return "", false
}

// PriorityValues lists every allowed priority value.
func PriorityValues() []string {
	return enumValues(priorities)
}

// LeadType discriminates the lead variants.
type LeadType string

const (
	LeadTypeHot  LeadType = "hot"
	LeadTypeCold LeadType = "cold"
	LeadTypeWarm LeadType = "warm"
)

var leadTypes = []LeadType{LeadTypeHot, LeadTypeCold, LeadTypeWarm}

// ParseLeadType maps a raw value onto the closed LeadType set.
func ParseLeadType(raw string) (LeadType, bool) {
	for _, t := range leadTypes {
		if raw == string(t) {
			return t, true
		}
	}
	return "", false
}

// LeadTypeValues lists every allowed lead type value.
func LeadTypeValues() []string {
	return enumValues(leadTypes)
}

// ProductInterest is an offering a lead may express interest in.
type ProductInterest string

const (
	TwoRoomApartment   ProductInterest = "two_room_apartment"
	ThreeRoomApartment ProductInterest = "three_room_apartment"
	TwoRoomHouse       ProductInterest = "two_room_house"
	ThreeRoomHouse     ProductInterest = "three_room_house"
	FourRoomHouse      ProductInterest = "four_room_house"
	PoolHouse          ProductInterest = "pool_house"
	Duplex             ProductInterest = "duplex"
	Penthouse          ProductInterest = "penthouse"
	CommercialProperty ProductInterest = "commercial"
	Land               ProductInterest = "land"
)

var productInterests = []ProductInterest{
	TwoRoomApartment,
	ThreeRoomApartment,
	TwoRoomHouse,
	ThreeRoomHouse,
	FourRoomHouse,
	PoolHouse,
	Duplex,
	Penthouse,
	CommercialProperty,
	Land,
}

// ParseProductInterest maps a raw value onto the closed ProductInterest set.
func ParseProductInterest(raw string) (ProductInterest, bool) {
	for _, pi := range productInterests {
		if raw == string(pi) {
			return pi, true
		}
	}
	return "", false
}

// ProductInterestValues lists every allowed product interest value.
func ProductInterestValues() []string {
	return enumValues(productInterests)
}

func enumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
