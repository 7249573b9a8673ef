package statutory

import "github.com/warp/statutory-engine/tables"

// Establishment types with their own leave rules. Anything else is treated
// like a shop for the earned-leave cap and like a factory for casual/sick.
const (
	EstablishmentFactory = "factory"
	EstablishmentShop    = "shop"
)

// LeaveResult is an annual leave entitlement in days.
//
// Total covers the recurring categories only (earned + casual + sick).
// Maternity, Paternity and ChildCare are one-time entitlements reported
// for government employees and zero for private ones.
type LeaveResult struct {
	Sector            Sector
	State             string
	EstablishmentType string

	EarnedLeave int
	CasualLeave int
	SickLeave   int
	Total       int

	Maternity int
	Paternity int
	ChildCare int
}

// Leave computes the annual entitlement.
//
// Government employees get fixed entitlements regardless of the other inputs.
// Private: one earned day per 20 days worked, capped at 30 for factories and
// 21 otherwise; shops get 7 casual and 7 sick days, everything else 12 and 12.
// Shops in the regional-ratio states earn one day per 18 days worked instead.
func (c *Calculator) Leave(daysWorked int, state, establishmentType string, sector Sector) (LeaveResult, error) {
	if err := nonNegativeInt("days_worked", daysWorked); err != nil {
		return LeaveResult{}, err
	}

	switch sector {
	case Private:
		return privateLeave(c.t.Leave.Private, daysWorked, state, establishmentType), nil
	case Government:
		return governmentLeave(c.t.Leave.Government, state, establishmentType), nil
	default:
		return LeaveResult{}, &VariantError{Kind: "sector", Value: sector.String()}
	}
}

func privateLeave(rules tables.PrivateLeave, daysWorked int, state, establishmentType string) LeaveResult {
	kind := tables.Fold(establishmentType)

	earnedCap := rules.OtherEarnedCap
	if kind == EstablishmentFactory {
		earnedCap = rules.FactoryEarnedCap
	}
	earned := min(daysWorked/rules.DaysPerEarnedDay, earnedCap)

	casual, sick := rules.OtherCasual, rules.OtherSick
	if kind == EstablishmentShop {
		casual, sick = rules.ShopCasual, rules.ShopSick
		if rules.IsRegionalShopState(state) {
			regional := rules.RegionalShop
			earned = min(daysWorked/regional.DaysPerEarnedDay, regional.EarnedCap)
		}
	}

	return LeaveResult{
		Sector:            Private,
		State:             state,
		EstablishmentType: establishmentType,
		EarnedLeave:       earned,
		CasualLeave:       casual,
		SickLeave:         sick,
		Total:             earned + casual + sick,
	}
}

func governmentLeave(rules tables.GovernmentLeave, state, establishmentType string) LeaveResult {
	return LeaveResult{
		Sector:            Government,
		State:             state,
		EstablishmentType: establishmentType,
		EarnedLeave:       rules.Earned,
		CasualLeave:       rules.Casual,
		SickLeave:         rules.HalfPay,
		Total:             rules.Earned + rules.Casual + rules.HalfPay,
		Maternity:         rules.Maternity,
		Paternity:         rules.Paternity,
		ChildCare:         rules.ChildCare,
	}
}
