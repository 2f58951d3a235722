package entity

import "strings"

// PlanBucket classifies a free-text membership plan into one of the plans
// the business actually sells
type PlanBucket int

const (
	PlanNone PlanBucket = iota
	PlanTwoYear
	PlanLifetime
	PlanCustom
)

var twoYearPlanNames = []string{
	"2 years plan", "2 years membership", "299",
	"two years plan", "two years membership",
	"2 year plan", "2 year membership",
}

var lifetimePlanNames = []string{
	"lifetime plan", "lifetime membership", "999",
	"life time plan", "life time membership",
}

// ClassifyPlan normalizes a submitted plan string and maps it to a bucket.
// The raw string is stored verbatim regardless of the classification.
func ClassifyPlan(raw string) PlanBucket {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return PlanNone
	}
	for _, name := range twoYearPlanNames {
		if value == name {
			return PlanTwoYear
		}
	}
	for _, name := range lifetimePlanNames {
		if value == name {
			return PlanLifetime
		}
	}
	return PlanCustom
}

// AmountLabel returns the canonical price line for the bucket
func (b PlanBucket) AmountLabel() string {
	switch b {
	case PlanTwoYear:
		return "₹299"
	case PlanLifetime:
		return "₹999"
	}
	return "Not specified"
}
