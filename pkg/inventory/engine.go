// Package inventory computes replenishment policies from demand
// forecasts: economic order quantity, reorder point with safety stock,
// stockout risk, turnover, and allocation of limited supply across
// stores. Every method is a pure function of its inputs.
package inventory

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/Rupinpatel75/ai-inventory-optimization/pkg/domain"
	"github.com/Rupinpatel75/ai-inventory-optimization/pkg/stats"
)

// Documented defaults for policy parameters.
const (
	DefaultServiceLevel   = 0.95
	DefaultLeadTimeDays   = 7.0
	DefaultHoldingCostPct = 0.25
	DefaultOrderCost      = 50.0

	daysPerYear = 365.0
)

// Stockout probability cut points. Pinned by tests.
const (
	riskHighThreshold   = 0.7
	riskMediumThreshold = 0.3
)

// Engine computes inventory policies.
type Engine struct {
	logger *logrus.Logger
}

// New creates an Engine. A nil logger gets a default logrus logger.
func New(logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{logger: logger}
}

// PolicyParams are the inputs to Policy and CostBreakdown. Zero-valued
// optional fields take the documented defaults.
type PolicyParams struct {
	AvgDailyDemand float64
	DemandStdDev   float64
	LeadTimeDays   float64
	ServiceLevel   float64
	UnitCost       float64
	HoldingCostPct float64
	OrderCost      float64
}

func (p PolicyParams) withDefaults() PolicyParams {
	if p.LeadTimeDays == 0 {
		p.LeadTimeDays = DefaultLeadTimeDays
	}
	if p.ServiceLevel == 0 {
		p.ServiceLevel = DefaultServiceLevel
	}
	if p.HoldingCostPct == 0 {
		p.HoldingCostPct = DefaultHoldingCostPct
	}
	if p.OrderCost == 0 {
		p.OrderCost = DefaultOrderCost
	}
	return p
}

func (p PolicyParams) validate() error {
	switch {
	case p.AvgDailyDemand < 0:
		return domain.NewValidationError("avg_daily_demand", "must not be negative")
	case p.DemandStdDev < 0:
		return domain.NewValidationError("demand_std_dev", "must not be negative")
	case p.LeadTimeDays < 0:
		return domain.NewValidationError("lead_time_days", "must not be negative")
	case p.ServiceLevel <= 0 || p.ServiceLevel >= 1:
		return domain.NewValidationError("service_level", "must be in (0, 1)")
	case p.UnitCost < 0:
		return domain.NewValidationError("unit_cost", "must not be negative")
	case p.HoldingCostPct < 0:
		return domain.NewValidationError("holding_cost_pct", "must not be negative")
	case p.OrderCost < 0:
		return domain.NewValidationError("order_cost", "must not be negative")
	}
	return nil
}

// EconomicOrderQuantity returns sqrt(2*D*S/H) for annual demand D, fixed
// order cost S and per-unit annual holding cost H. A non-positive holding
// cost is an error, not a panic.
func (e *Engine) EconomicOrderQuantity(annualDemand, orderCost, holdingCostPerUnit float64) (float64, error) {
	switch {
	case annualDemand < 0:
		return 0, domain.NewValidationError("annual_demand", "must not be negative")
	case orderCost < 0:
		return 0, domain.NewValidationError("order_cost", "must not be negative")
	case holdingCostPerUnit <= 0:
		return 0, domain.NewValidationError("holding_cost_per_unit", "must be positive")
	}
	return math.Sqrt(2 * annualDemand * orderCost / holdingCostPerUnit), nil
}

// Policy derives the full replenishment policy for one pair:
// lead-time demand, safety stock from the service-level z factor, the
// ceiled reorder point, and the economic order quantity.
func (e *Engine) Policy(p PolicyParams) (*domain.InventoryPolicy, error) {
	p = p.withDefaults()
	if err := p.validate(); err != nil {
		return nil, err
	}

	leadTimeDemand := p.AvgDailyDemand * p.LeadTimeDays
	leadTimeStdDev := p.DemandStdDev * math.Sqrt(p.LeadTimeDays)
	safetyStock := stats.ServiceLevelZ(p.ServiceLevel) * leadTimeStdDev
	reorderPoint := math.Ceil(leadTimeDemand + safetyStock)

	var eoq float64
	holdingCost := p.UnitCost * p.HoldingCostPct
	if holdingCost > 0 {
		var err error
		eoq, err = e.EconomicOrderQuantity(p.AvgDailyDemand*daysPerYear, p.OrderCost, holdingCost)
		if err != nil {
			return nil, err
		}
	}

	policy := &domain.InventoryPolicy{
		ReorderPoint:          reorderPoint,
		SafetyStock:           safetyStock,
		EconomicOrderQuantity: eoq,
		LeadTimeDemand:        leadTimeDemand,
		AvgDailyDemand:        p.AvgDailyDemand,
		ServiceLevel:          p.ServiceLevel,
		LeadTimeDays:          p.LeadTimeDays,
	}

	e.logger.WithFields(logrus.Fields{
		"reorder_point": policy.ReorderPoint,
		"safety_stock":  policy.SafetyStock,
		"eoq":           policy.EconomicOrderQuantity,
		"service_level": policy.ServiceLevel,
	}).Debug("computed inventory policy")

	return policy, nil
}

// CostBreakdown reports the annual ordering and holding cost structure
// when ordering at the EOQ. Requires a positive unit holding cost.
func (e *Engine) CostBreakdown(p PolicyParams) (*domain.CostBreakdown, error) {
	p = p.withDefaults()
	if err := p.validate(); err != nil {
		return nil, err
	}

	holdingCost := p.UnitCost * p.HoldingCostPct
	if holdingCost <= 0 {
		return nil, domain.NewValidationError("unit_cost", "cost breakdown requires a positive holding cost")
	}

	annualDemand := p.AvgDailyDemand * daysPerYear
	eoq, err := e.EconomicOrderQuantity(annualDemand, p.OrderCost, holdingCost)
	if err != nil {
		return nil, err
	}

	breakdown := &domain.CostBreakdown{EconomicOrderQuantity: eoq}
	if eoq > 0 {
		breakdown.OrdersPerYear = annualDemand / eoq
		breakdown.AnnualOrderingCost = breakdown.OrdersPerYear * p.OrderCost
	}
	if breakdown.OrdersPerYear > 0 {
		breakdown.DaysBetweenOrders = daysPerYear / breakdown.OrdersPerYear
	}
	breakdown.AnnualHoldingCost = eoq / 2 * holdingCost
	breakdown.TotalAnnualCost = breakdown.AnnualOrderingCost + breakdown.AnnualHoldingCost

	return breakdown, nil
}

// StockoutRisk estimates depletion timing and the probability that total
// demand over the horizon exceeds current stock. With zero demand
// variance the probability degenerates to a step function: 1 when stock
// is below total forecast demand, else 0.
func (e *Engine) StockoutRisk(currentStock float64, summary domain.ForecastSummary, horizonDays int) (*domain.StockoutRisk, error) {
	if currentStock < 0 {
		return nil, domain.NewValidationError("current_stock", "must not be negative")
	}
	if horizonDays <= 0 {
		return nil, domain.NewValidationError("horizon_days", "must be positive")
	}

	risk := &domain.StockoutRisk{HorizonDays: horizonDays}

	if summary.AvgDailyDemand > 0 {
		days := currentStock / summary.AvgDailyDemand
		risk.DaysUntilStockout = &days
	}

	denom := summary.StdDev * math.Sqrt(float64(horizonDays))
	if denom > 0 {
		z := (currentStock - summary.TotalDemand) / denom
		risk.StockoutProbability = 1 - stats.NormalCDF(z)
	} else if currentStock < summary.TotalDemand {
		risk.StockoutProbability = 1
	}

	switch {
	case risk.StockoutProbability > riskHighThreshold:
		risk.RiskLevel = domain.RiskHigh
	case risk.StockoutProbability > riskMediumThreshold:
		risk.RiskLevel = domain.RiskMedium
	default:
		risk.RiskLevel = domain.RiskLow
	}

	return risk, nil
}

// Turnover reports the annualized inventory turnover ratio for current
// stock. Ratio is nil for zero stock (turnover is unbounded) and the
// rating bands are >12 excellent, >6 good, >3 average, else poor.
func (e *Engine) Turnover(currentStock, avgDailyDemand float64) (*domain.TurnoverReport, error) {
	if currentStock < 0 {
		return nil, domain.NewValidationError("current_stock", "must not be negative")
	}
	if avgDailyDemand < 0 {
		return nil, domain.NewValidationError("avg_daily_demand", "must not be negative")
	}

	report := &domain.TurnoverReport{Rating: domain.RatingPoor}

	if avgDailyDemand > 0 {
		days := currentStock / avgDailyDemand
		report.DaysOfSupply = &days
	}
	if currentStock == 0 {
		return report, nil
	}

	ratio := avgDailyDemand * daysPerYear / currentStock
	report.Ratio = &ratio
	switch {
	case ratio > 12:
		report.Rating = domain.RatingExcellent
	case ratio > 6:
		report.Rating = domain.RatingGood
	case ratio > 3:
		report.Rating = domain.RatingAverage
	default:
		report.Rating = domain.RatingPoor
	}

	return report, nil
}

// ReorderRecommendation advises whether to place an order given current
// stock and an already-computed policy. Urgency is keyed to days of
// remaining stock versus lead time.
func (e *Engine) ReorderRecommendation(currentStock float64, policy domain.InventoryPolicy) (*domain.ReorderRecommendation, error) {
	if currentStock < 0 {
		return nil, domain.NewValidationError("current_stock", "must not be negative")
	}

	rec := &domain.ReorderRecommendation{
		CurrentStock: currentStock,
		ReorderPoint: policy.ReorderPoint,
		LeadTimeDays: policy.LeadTimeDays,
		Urgency:      domain.UrgencyLow,
	}

	rec.ShouldReorder = currentStock <= policy.ReorderPoint
	if rec.ShouldReorder {
		rec.SuggestedOrder = policy.EconomicOrderQuantity
	}

	if policy.AvgDailyDemand > 0 {
		days := currentStock / policy.AvgDailyDemand
		rec.DaysRemaining = &days
		switch {
		case days < policy.LeadTimeDays:
			rec.Urgency = domain.UrgencyHigh
		case days < policy.LeadTimeDays*1.5:
			rec.Urgency = domain.UrgencyMedium
		}
	}

	return rec, nil
}
