package ruleengine

import (
	"fmt"
	"time"

	"supplierwatch/internal/domain"
)

// ScoreContext bundles everything ComputeCumulativeScore needs. This type
// intentionally shares no fields with AlertContext beyond plain data —
// neither file calls the other's detector functions.
type ScoreContext struct {
	Partners   []domain.Partner
	Contracts  []domain.Contract
	Sanctions  []domain.Sanction
	Reference  time.Time
}

var (
	serviceCapitalThreshold = domain.MoneyFromCents(5_000_00)
	commerceCapitalThreshold = domain.MoneyFromCents(15_000_00)
	genericCapitalThreshold = domain.MoneyFromCents(10_000_00)
	lowCapitalContractFloor = domain.MoneyFromCents(100_000_00)

	partnerManySuppliersThreshold = 3

	suddenGrowthRatio = 10 // "grows >= 10x year-over-year" per spec §4.2
	suddenGrowthFloor = domain.MoneyFromCents(50_000_00)
)

// ComputeCumulativeScore is the sole entry point of this file. It never
// imports or calls anything from alerts.go.
func ComputeCumulativeScore(supplier domain.Supplier, ctx ScoreContext) domain.ScoreBreakdown {
	var indicators []domain.Indicator

	if ind := evalLowCapital(supplier, ctx); ind != nil {
		indicators = append(indicators, *ind)
	}
	if ind := evalRecentCompany(supplier, ctx); ind != nil {
		indicators = append(indicators, *ind)
	}
	if ind := evalActivityMismatch(supplier, ctx); ind != nil {
		indicators = append(indicators, *ind)
	}
	if ind := evalPartnerInManySuppliers(ctx); ind != nil {
		indicators = append(indicators, *ind)
	}
	if ind := evalSharedAddress(supplier); ind != nil {
		indicators = append(indicators, *ind)
	}
	if ind := evalExclusiveBuyer(ctx); ind != nil {
		indicators = append(indicators, *ind)
	}
	if ind := evalNoEmployees(supplier, ctx); ind != nil {
		indicators = append(indicators, *ind)
	}
	if ind := evalSuddenGrowth(ctx); ind != nil {
		indicators = append(indicators, *ind)
	}
	if ind := evalHistoricalSanction(ctx); ind != nil {
		indicators = append(indicators, *ind)
	}

	return domain.ScoreBreakdown{Indicators: indicators, ComputedAt: ctx.Reference}
}

func capitalThresholdFor(supplier domain.Supplier) domain.Money {
	category, ok := ActivityCategory(string(supplier.PrimaryActivity))
	if !ok {
		return genericCapitalThreshold
	}
	if IsServiceCategory(category) {
		return serviceCapitalThreshold
	}
	if category == "RETAIL" {
		return commerceCapitalThreshold
	}
	return genericCapitalThreshold
}

func evalLowCapital(supplier domain.Supplier, ctx ScoreContext) *domain.Indicator {
	if supplier.Capital == nil || len(ctx.Contracts) == 0 {
		return nil
	}
	total := domain.ZeroMoney
	for _, c := range ctx.Contracts {
		total = total.Add(c.Value)
	}
	if !total.GreaterThan(lowCapitalContractFloor) {
		return nil
	}
	threshold := capitalThresholdFor(supplier)
	if !supplier.Capital.LessThan(threshold) {
		return nil
	}
	return &domain.Indicator{
		Kind:        domain.IndicatorLowCapital,
		Weight:      domain.IndicatorWeights[domain.IndicatorLowCapital],
		Description: fmt.Sprintf("Declared capital %s is disproportionate to contracted total %s", supplier.Capital, total),
		Evidence:    fmt.Sprintf("capital=%s, total_contracted=%s, threshold=%s", supplier.Capital, total, threshold),
	}
}

func evalRecentCompany(supplier domain.Supplier, ctx ScoreContext) *domain.Indicator {
	if supplier.OpeningDate == nil {
		return nil
	}
	var first *time.Time
	for _, c := range ctx.Contracts {
		if c.SignedDate == nil {
			continue
		}
		if first == nil || c.SignedDate.Before(*first) {
			first = c.SignedDate
		}
	}
	if first == nil {
		return nil
	}
	days := first.Sub(*supplier.OpeningDate).Hours() / 24
	const daysPerMonth = 30.44
	months := days / daysPerMonth
	if months >= 6 || months < 0 {
		return nil
	}
	return &domain.Indicator{
		Kind:        domain.IndicatorRecentCompany,
		Weight:      domain.IndicatorWeights[domain.IndicatorRecentCompany],
		Description: fmt.Sprintf("Opened %s, first contract %s (%.0f days later)", supplier.OpeningDate.Format("2006-01-02"), first.Format("2006-01-02"), days),
		Evidence:    fmt.Sprintf("opening_date=%s, first_contract=%s, days=%.0f", supplier.OpeningDate.Format("2006-01-02"), first.Format("2006-01-02"), days),
	}
}

func evalActivityMismatch(supplier domain.Supplier, ctx ScoreContext) *domain.Indicator {
	supplierCategory, ok := ActivityCategory(string(supplier.PrimaryActivity))
	if !ok || len(ctx.Contracts) == 0 {
		return nil
	}
	for _, c := range ctx.Contracts {
		if c.Subject == "" {
			continue
		}
		objCategory, ok := InferContractObjectCategory(c.Subject)
		if !ok {
			continue
		}
		if CategoriesIncompatible(supplierCategory, objCategory) {
			return &domain.Indicator{
				Kind:        domain.IndicatorActivityMismatch,
				Weight:      domain.IndicatorWeights[domain.IndicatorActivityMismatch],
				Description: fmt.Sprintf("Primary activity %s (%s) is incompatible with contracted object (%s)", supplier.PrimaryActivity, supplierCategory, objCategory),
				Evidence:    fmt.Sprintf("activity=%s, activity_category=%s, object_category=%s", supplier.PrimaryActivity, supplierCategory, objCategory),
			}
		}
	}
	return nil
}

func evalPartnerInManySuppliers(ctx ScoreContext) *domain.Indicator {
	var flagged []domain.Partner
	for _, p := range ctx.Partners {
		if p.GovSupplierCount >= partnerManySuppliersThreshold {
			flagged = append(flagged, p)
		}
	}
	if len(flagged) == 0 {
		return nil
	}
	return &domain.Indicator{
		Kind:        domain.IndicatorPartnerInManySuppliers,
		Weight:      domain.IndicatorWeights[domain.IndicatorPartnerInManySuppliers],
		Description: fmt.Sprintf("%d partner(s) present in 3+ government suppliers", len(flagged)),
		Evidence:    fmt.Sprintf("partner_count=%d", len(flagged)),
	}
}

func evalSharedAddress(supplier domain.Supplier) *domain.Indicator {
	if supplier.SharedAddressCount < 1 {
		return nil
	}
	return &domain.Indicator{
		Kind:        domain.IndicatorSharedAddress,
		Weight:      domain.IndicatorWeights[domain.IndicatorSharedAddress],
		Description: fmt.Sprintf("Shares a street and number with %d other supplier(s)", supplier.SharedAddressCount),
		Evidence:    fmt.Sprintf("shared_address_count=%d", supplier.SharedAddressCount),
	}
}

func evalExclusiveBuyer(ctx ScoreContext) *domain.Indicator {
	if len(ctx.Contracts) == 0 {
		return nil
	}
	orgs := make(map[domain.GovOrgCode]bool)
	for _, c := range ctx.Contracts {
		orgs[c.OrgCode] = true
	}
	if len(orgs) != 1 {
		return nil
	}
	var only domain.GovOrgCode
	for org := range orgs {
		only = org
	}
	return &domain.Indicator{
		Kind:        domain.IndicatorExclusiveBuyer,
		Weight:      domain.IndicatorWeights[domain.IndicatorExclusiveBuyer],
		Description: fmt.Sprintf("All %d contract(s) are with the same government body", len(ctx.Contracts)),
		Evidence:    fmt.Sprintf("org_code=%s, contract_count=%d", only, len(ctx.Contracts)),
	}
}

func evalNoEmployees(supplier domain.Supplier, ctx ScoreContext) *domain.Indicator {
	if supplier.EmployeeCount == nil {
		return nil
	}
	if *supplier.EmployeeCount > 0 || len(ctx.Contracts) == 0 {
		return nil
	}
	return &domain.Indicator{
		Kind:        domain.IndicatorNoEmployees,
		Weight:      domain.IndicatorWeights[domain.IndicatorNoEmployees],
		Description: fmt.Sprintf("No registered employees with %d active contract(s)", len(ctx.Contracts)),
		Evidence:    fmt.Sprintf("employee_count=0, contract_count=%d", len(ctx.Contracts)),
	}
}

func evalSuddenGrowth(ctx ScoreContext) *domain.Indicator {
	if len(ctx.Contracts) == 0 {
		return nil
	}
	yearly := make(map[int]domain.Money)
	for _, c := range ctx.Contracts {
		if c.SignedDate == nil {
			continue
		}
		year := c.SignedDate.Year()
		yearly[year] = yearly[year].Add(c.Value)
	}
	years := make([]int, 0, len(yearly))
	for y := range yearly {
		years = append(years, y)
	}
	sortInts(years)

	for i := 1; i < len(years); i++ {
		prevYear, currYear := years[i-1], years[i]
		if currYear != prevYear+1 {
			continue
		}
		prevVal, currVal := yearly[prevYear], yearly[currYear]
		if prevVal.IsZero() || !currVal.GreaterThan(suddenGrowthFloor) {
			continue
		}
		ratio, _ := currVal.Decimal().Div(prevVal.Decimal()).Float64()
		if ratio >= float64(suddenGrowthRatio) {
			return &domain.Indicator{
				Kind:        domain.IndicatorSuddenGrowth,
				Weight:      domain.IndicatorWeights[domain.IndicatorSuddenGrowth],
				Description: fmt.Sprintf("Contracted total grew %.1fx between %d and %d", ratio, prevYear, currYear),
				Evidence:    fmt.Sprintf("prev_year=%d, prev_value=%s, curr_year=%d, curr_value=%s, ratio=%.1f", prevYear, prevVal, currYear, currVal, ratio),
			}
		}
	}
	return nil
}

func evalHistoricalSanction(ctx ScoreContext) *domain.Indicator {
	var expired []domain.Sanction
	for _, s := range ctx.Sanctions {
		if !s.Active(ctx.Reference) {
			expired = append(expired, s)
		}
	}
	if len(expired) == 0 {
		return nil
	}
	kinds := make([]string, len(expired))
	for i, s := range expired {
		kinds[i] = string(s.Kind)
	}
	return &domain.Indicator{
		Kind:        domain.IndicatorHistoricalSanction,
		Weight:      domain.IndicatorWeights[domain.IndicatorHistoricalSanction],
		Description: fmt.Sprintf("%d historical (expired) sanction(s)", len(expired)),
		Evidence:    fmt.Sprintf("expired_sanctions=%v", kinds),
	}
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
