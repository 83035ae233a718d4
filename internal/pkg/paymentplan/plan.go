package paymentplan

import (
	"strings"

	"github.com/coursebill/coursebill/app/models"
)

// TypeForCost maps an entity cost type to the payment-plan type it needs.
// Only paid entities need a one-time plan; email-gated and free entities both
// resolve to a free plan.
func TypeForCost(costType string) string {
	switch strings.ToLower(strings.TrimSpace(costType)) {
	case models.CostTypePaid:
		return models.PaymentPlanOneTime
	default:
		return models.PaymentPlanFree
	}
}

// NameForType returns the display name given to auto-created plans.
func NameForType(planType string) string {
	if planType == models.PaymentPlanOneTime {
		return models.PaymentPlanNamePaid
	}
	return models.PaymentPlanNameFree
}
