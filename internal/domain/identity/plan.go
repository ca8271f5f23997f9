package identity

// Plan represents a subscription plan
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// Pro plan pricing in rupiah
const (
	ProPriceMonthly int64 = 99000
	ProPriceYearly  int64 = 999000
)

// Unlimited marks a limit that is not enforced for the plan
const Unlimited = -1

// PlanLimits describes what a subscription plan allows
type PlanLimits struct {
	MaxProperties   int
	MaxRooms        int
	MaxExportsMonth int
	BulkUpload      bool
	Analytics       bool
}

var planLimits = map[Plan]PlanLimits{
	PlanFree: {
		MaxProperties:   2,
		MaxRooms:        10,
		MaxExportsMonth: 50,
		BulkUpload:      false,
		Analytics:       false,
	},
	PlanPro: {
		MaxProperties:   Unlimited,
		MaxRooms:        Unlimited,
		MaxExportsMonth: Unlimited,
		BulkUpload:      true,
		Analytics:       true,
	},
}

// IsValid reports whether the plan is a known plan
func (p Plan) IsValid() bool {
	_, ok := planLimits[p]
	return ok
}

// Limits returns the limits for the plan. Unknown plans get free limits.
func (p Plan) Limits() PlanLimits {
	if limits, ok := planLimits[p]; ok {
		return limits
	}
	return planLimits[PlanFree]
}

// CanCreateProperty reports whether an account with currentCount properties
// may create another one
func (p Plan) CanCreateProperty(currentCount int) bool {
	limits := p.Limits()
	return limits.MaxProperties == Unlimited || currentCount < limits.MaxProperties
}

// CanCreateRoom reports whether an account with currentCount rooms across all
// properties may create another one
func (p Plan) CanCreateRoom(currentCount int) bool {
	limits := p.Limits()
	return limits.MaxRooms == Unlimited || currentCount < limits.MaxRooms
}

// CanExport reports whether the account may run another export this month
func (p Plan) CanExport(usedThisMonth int) bool {
	limits := p.Limits()
	return limits.MaxExportsMonth == Unlimited || usedThisMonth < limits.MaxExportsMonth
}

// CanUseBulkUpload reports whether the plan includes bulk tenant intake
func (p Plan) CanUseBulkUpload() bool {
	return p.Limits().BulkUpload
}

// CanAccessAnalytics reports whether the plan includes the analytics surface
func (p Plan) CanAccessAnalytics() bool {
	return p.Limits().Analytics
}
