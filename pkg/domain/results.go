package domain

import "time"

// ForecastPoint is a single day of expected demand.
type ForecastPoint struct {
	Date      time.Time    `json:"date"`
	Demand    float64      `json:"demand"`
	DayOfWeek time.Weekday `json:"day_of_week"`
	Month     time.Month   `json:"month"`
}

// ForecastSummary holds aggregate statistics for a forecast horizon.
type ForecastSummary struct {
	TotalDemand            float64 `json:"total_demand"`
	AvgDailyDemand         float64 `json:"avg_daily_demand"`
	StdDev                 float64 `json:"std_dev"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
}

// Forecast is the materialized demand series for one (product, store)
// pair over a requested horizon, forward or reconstructed backward.
type Forecast struct {
	ProductID      int             `json:"product_id"`
	StoreID        int             `json:"store_id"`
	Points         []ForecastPoint `json:"points"`
	Summary        ForecastSummary `json:"summary"`
	DefaultDerived bool            `json:"default_derived"`
}

// DayPattern reports the mean demand for one weekday relative to the
// overall mean.
type DayPattern struct {
	Day           time.Weekday `json:"day"`
	Mean          float64      `json:"mean"`
	RelativeToAvg float64      `json:"relative_to_avg"`
}

// MonthPattern reports the mean demand for one month relative to the
// overall mean.
type MonthPattern struct {
	Month         time.Month `json:"month"`
	Mean          float64    `json:"mean"`
	RelativeToAvg float64    `json:"relative_to_avg"`
}

// SeasonalityAnalysis summarizes weekday and month demand patterns over a
// historical series.
type SeasonalityAnalysis struct {
	WeeklyPattern  []DayPattern   `json:"weekly_pattern"`
	MonthlyPattern []MonthPattern `json:"monthly_pattern"`
	PeakDay        time.Weekday   `json:"peak_day"`
	LowestDay      time.Weekday   `json:"lowest_day"`
	PeakMonth      time.Month     `json:"peak_month"`
	LowestMonth    time.Month     `json:"lowest_month"`

	// SeasonalityStrength is the ratio of the highest to the lowest
	// monthly factor; 1.0 means no monthly seasonality was observed.
	SeasonalityStrength float64 `json:"seasonality_strength"`
}

// InventoryPolicy describes the replenishment policy for one pair.
// ReorderPoint = ceil(LeadTimeDemand + SafetyStock).
type InventoryPolicy struct {
	ReorderPoint          float64 `json:"reorder_point"`
	SafetyStock           float64 `json:"safety_stock"`
	EconomicOrderQuantity float64 `json:"economic_order_quantity"`
	LeadTimeDemand        float64 `json:"lead_time_demand"`
	AvgDailyDemand        float64 `json:"avg_daily_demand"`
	ServiceLevel          float64 `json:"service_level"`
	LeadTimeDays          float64 `json:"lead_time_days"`
}

// RiskLevel classifies stockout probability.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// StockoutRisk estimates how likely demand is to exhaust current stock
// within the forecast horizon. DaysUntilStockout is nil when average
// demand is zero (stock never runs out under the model).
type StockoutRisk struct {
	DaysUntilStockout   *float64  `json:"days_until_stockout"`
	StockoutProbability float64   `json:"stockout_probability"`
	RiskLevel           RiskLevel `json:"risk_level"`
	HorizonDays         int       `json:"horizon_days"`
}

// TurnoverRating classifies the annual inventory turnover ratio.
type TurnoverRating string

const (
	RatingExcellent TurnoverRating = "excellent"
	RatingGood      TurnoverRating = "good"
	RatingAverage   TurnoverRating = "average"
	RatingPoor      TurnoverRating = "poor"
)

// TurnoverReport holds the annual turnover ratio for current stock.
// Ratio is nil when current stock is zero; DaysOfSupply is nil when
// average daily demand is zero.
type TurnoverReport struct {
	Ratio        *float64       `json:"ratio"`
	DaysOfSupply *float64       `json:"days_of_supply"`
	Rating       TurnoverRating `json:"rating"`
}

// StoreDemand is the per-store input to stock allocation.
type StoreDemand struct {
	StoreID int     `json:"store_id"`
	Demand  float64 `json:"demand"`
}

// StoreAllocation is one store's share of a limited supply.
// CoveragePct is 100 when the store's demand is zero.
type StoreAllocation struct {
	StoreID           int     `json:"store_id"`
	AllocatedQuantity int     `json:"allocated_quantity"`
	Demand            float64 `json:"demand"`
	CoveragePct       float64 `json:"coverage_pct"`
}

// AllocationPlan distributes TotalStock across stores. Every input store
// appears exactly once and allocations sum to TotalAllocated.
type AllocationPlan struct {
	TotalStock     int               `json:"total_stock"`
	TotalAllocated int               `json:"total_allocated"`
	Constrained    bool              `json:"constrained"`
	Allocations    []StoreAllocation `json:"allocations"`
}

// Urgency classifies how soon a reorder is needed relative to lead time.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// ReorderRecommendation advises whether to place an order now.
// DaysRemaining is nil when average daily demand is zero.
type ReorderRecommendation struct {
	CurrentStock   float64  `json:"current_stock"`
	ReorderPoint   float64  `json:"reorder_point"`
	ShouldReorder  bool     `json:"should_reorder"`
	SuggestedOrder float64  `json:"suggested_order"`
	DaysRemaining  *float64 `json:"days_remaining"`
	LeadTimeDays   float64  `json:"lead_time_days"`
	Urgency        Urgency  `json:"urgency"`
}

// CostBreakdown reports the annual cost structure when ordering at the
// economic order quantity.
type CostBreakdown struct {
	EconomicOrderQuantity float64 `json:"economic_order_quantity"`
	OrdersPerYear         float64 `json:"orders_per_year"`
	DaysBetweenOrders     float64 `json:"days_between_orders"`
	AnnualOrderingCost    float64 `json:"annual_ordering_cost"`
	AnnualHoldingCost     float64 `json:"annual_holding_cost"`
	TotalAnnualCost       float64 `json:"total_annual_cost"`
}

// PriceDecision is the result of elasticity-based price optimization.
// Margin = (OptimalPrice - MarginalCost) / OptimalPrice.
type PriceDecision struct {
	CurrentPrice   float64 `json:"current_price"`
	OptimalPrice   float64 `json:"optimal_price"`
	MarginalCost   float64 `json:"marginal_cost"`
	Elasticity     float64 `json:"elasticity"`
	ExpectedDemand float64 `json:"expected_demand"`
	ExpectedProfit float64 `json:"expected_profit"`
	Margin         float64 `json:"margin"`

	// DefaultElasticity marks decisions computed with the documented
	// default elasticity rather than a measured value.
	DefaultElasticity bool `json:"default_elasticity"`
}

// PriceEvaluation scores one candidate price.
type PriceEvaluation struct {
	Price             float64 `json:"price"`
	ExpectedDemand    float64 `json:"expected_demand"`
	ExpectedProfit    float64 `json:"expected_profit"`
	Margin            float64 `json:"margin"`
	DeviationFromCurr float64 `json:"deviation_from_current"`
}

// PromotionImpact models a temporary discount, including the estimated
// cost of demand cannibalized from future full-price sales.
type PromotionImpact struct {
	CurrentPrice        float64 `json:"current_price"`
	PromoPrice          float64 `json:"promo_price"`
	DiscountPct         float64 `json:"discount_pct"`
	BaseDemand          float64 `json:"base_demand"`
	ExpectedDemand      float64 `json:"expected_demand"`
	BaseProfit          float64 `json:"base_profit"`
	PromoProfit         float64 `json:"promo_profit"`
	ProfitDelta         float64 `json:"profit_delta"`
	CannibalizationRate float64 `json:"cannibalization_rate"`
	CannibalizationCost float64 `json:"cannibalization_cost"`
	AdjustedProfitDelta float64 `json:"adjusted_profit_delta"`
	IsRecommended       bool    `json:"is_recommended"`
}

// PriceAction is the direction of a pricing recommendation.
type PriceAction string

const (
	ActionMaintain PriceAction = "maintain"
	ActionIncrease PriceAction = "increase"
	ActionDecrease PriceAction = "decrease"
)

// Confidence classifies how defensible a recommended price move is.
// Small moves carry high confidence.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// PriceRecommendation wraps a PriceDecision with an explicit action.
type PriceRecommendation struct {
	Decision       PriceDecision `json:"decision"`
	Action         PriceAction   `json:"action"`
	PriceChange    float64       `json:"price_change"`
	PriceChangePct float64       `json:"price_change_pct"`
	ProfitImpact   float64       `json:"profit_impact"`
	Confidence     Confidence    `json:"confidence"`
}
