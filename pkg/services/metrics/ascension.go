package metrics

import "github.com/de-tools/growth-scorecard/pkg/models/domain"

const (
	// EnterpriseProductID is the seed catalogue's enterprise plan.
	EnterpriseProductID = "prod-3"
	// AscensionPercent is the fixed upgrade figure reported for enterprise customers.
	AscensionPercent = 25.0
)

// Ascension reports the contract-value increase of a customer that upgraded plans.
// There is no contract history to compare against yet, so it is a stub: active enterprise
// customers with a contract value report AscensionPercent, everyone else reports nothing.
// TODO: compare against the customer's previous contract once contract history is stored.
func Ascension(c domain.Customer) (float64, bool) {
	if !hasContractValue(c) {
		return 0, false
	}
	if c.ProductID == EnterpriseProductID && c.Status == domain.StatusActive {
		return AscensionPercent, true
	}
	return 0, false
}
