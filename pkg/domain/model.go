package domain

// Default model parameters used when no demand metrics exist for a
// (product, store) pair. Results derived from these carry DefaultDerived.
const (
	DefaultBaselineDailyDemand = 10.0
	DefaultTrendRate           = 0.0
	DefaultSeasonalFactor      = 1.0
	DefaultElasticity          = -1.5
)

// DemandModel holds the compact per-(product, store) demand parameters that
// drive forecasting, inventory policy and price optimization. Immutable for
// the duration of a forecast call.
type DemandModel struct {
	ProductID int `json:"product_id"`
	StoreID   int `json:"store_id"`

	// BaselineDailyDemand is the expected demand per day absent any
	// trend, seasonality or noise. Must be positive.
	BaselineDailyDemand float64 `json:"baseline_daily_demand"`

	// TrendRate is the fractional change in demand per day, e.g. 0.01
	// grows demand by 1% of baseline per forecast day.
	TrendRate float64 `json:"trend_rate"`

	// WeeklyAmplitude controls the weekend/weekday split: weekend days
	// are scaled by 1+amplitude, weekdays by 1-amplitude/2.
	WeeklyAmplitude float64 `json:"weekly_amplitude"`

	// SeasonalFactor is an overall multiplier derived from historical
	// metrics. Zero is treated as 1.0.
	SeasonalFactor float64 `json:"seasonal_factor"`

	// MonthFactors holds one multiplier per calendar month (index 0 is
	// January). A nil slice selects the default Q4-peaked table.
	MonthFactors []float64 `json:"month_factors,omitempty"`

	// NoiseStdDev is the standard deviation of the multiplicative noise
	// factor drawn from Normal(1.0, NoiseStdDev).
	NoiseStdDev float64 `json:"noise_std_dev"`

	// Elasticity is the price elasticity of demand. Negative for normal
	// goods; zero is treated as missing and replaced by DefaultElasticity.
	Elasticity float64 `json:"elasticity"`

	// DefaultDerived marks models built from fallback parameters rather
	// than observed metrics, for audit of downstream results.
	DefaultDerived bool `json:"default_derived"`
}

// DefaultMonthFactors returns the canonical month multiplier table:
// 1.0 for every month except a Q4 peak of 1.3 in October through December.
func DefaultMonthFactors() []float64 {
	f := make([]float64, 12)
	for i := range f {
		f[i] = 1.0
	}
	f[9], f[10], f[11] = 1.3, 1.3, 1.3
	return f
}

// DefaultModel returns the documented fallback model for a pair with no
// recorded demand metrics.
func DefaultModel(productID, storeID int) DemandModel {
	return DemandModel{
		ProductID:           productID,
		StoreID:             storeID,
		BaselineDailyDemand: DefaultBaselineDailyDemand,
		TrendRate:           DefaultTrendRate,
		SeasonalFactor:      DefaultSeasonalFactor,
		Elasticity:          DefaultElasticity,
		DefaultDerived:      true,
	}
}

// Normalized returns a copy of the model with zero-valued optional fields
// replaced by their documented defaults. The receiver is not modified.
func (m DemandModel) Normalized() DemandModel {
	out := m
	if out.BaselineDailyDemand <= 0 {
		out.BaselineDailyDemand = DefaultBaselineDailyDemand
		out.DefaultDerived = true
	}
	if out.SeasonalFactor == 0 {
		out.SeasonalFactor = DefaultSeasonalFactor
	}
	if out.Elasticity == 0 {
		out.Elasticity = DefaultElasticity
		out.DefaultDerived = true
	}
	if len(out.MonthFactors) != 12 {
		out.MonthFactors = DefaultMonthFactors()
	}
	return out
}

// MonthFactor returns the multiplier for the given calendar month (1-12).
// Out-of-range months and missing tables fall back to 1.0.
func (m DemandModel) MonthFactor(month int) float64 {
	if month < 1 || month > 12 || len(m.MonthFactors) != 12 {
		return 1.0
	}
	return m.MonthFactors[month-1]
}
