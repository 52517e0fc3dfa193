// Package forecast produces demand time series from a compact per-pair
// demand model: a forward forecast over a horizon, a backward historical
// reconstruction for backtesting, and seasonality analysis over either.
package forecast

import (
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Rupinpatel75/ai-inventory-optimization/pkg/domain"
	"github.com/Rupinpatel75/ai-inventory-optimization/pkg/stats"
)

// Forecaster generates demand series. Safe for concurrent use: all state
// lives in call arguments, and randomness comes from the per-call Rng.
type Forecaster struct {
	logger *logrus.Logger
}

// New creates a Forecaster. A nil logger gets a default logrus logger.
func New(logger *logrus.Logger) *Forecaster {
	if logger == nil {
		logger = logrus.New()
	}
	return &Forecaster{logger: logger}
}

// Options controls a single forecast or reconstruction call.
type Options struct {
	// Start anchors the series; the forward forecast covers the Horizon
	// days after Start, the reconstruction the Horizon days up to and
	// including Start. Zero means time.Now().
	Start time.Time

	// Horizon is the number of days to generate. Non-positive horizons
	// yield an empty series, not an error.
	Horizon int

	// Rng is the noise source. Nil disables noise entirely; callers
	// needing reproducible noise pass rand.New(rand.NewSource(seed)).
	Rng *rand.Rand
}

func (o Options) start() time.Time {
	if o.Start.IsZero() {
		return time.Now()
	}
	return o.Start
}

// Forecast generates the expected demand for each of the Horizon days
// following opts.Start.
func (f *Forecaster) Forecast(model domain.DemandModel, opts Options) (*domain.Forecast, error) {
	m := model.Normalized()
	start := opts.start()

	points := make([]domain.ForecastPoint, 0, max(opts.Horizon, 0))
	for i := 1; i <= opts.Horizon; i++ {
		date := start.AddDate(0, 0, i)
		points = append(points, f.pointAt(m, date, i, opts.Rng))
	}

	fc := &domain.Forecast{
		ProductID:      m.ProductID,
		StoreID:        m.StoreID,
		Points:         points,
		Summary:        Summarize(points),
		DefaultDerived: m.DefaultDerived,
	}

	f.logger.WithFields(logrus.Fields{
		"product_id":   m.ProductID,
		"store_id":     m.StoreID,
		"horizon":      opts.Horizon,
		"total_demand": fc.Summary.TotalDemand,
	}).Debug("generated demand forecast")

	return fc, nil
}

// Reconstruct generates the Horizon days ending at opts.Start, applying
// the model backward so a positive trend yields lower demand further in
// the past. Used for backtesting and as seasonality-analysis input.
func (f *Forecaster) Reconstruct(model domain.DemandModel, opts Options) (*domain.Forecast, error) {
	m := model.Normalized()
	start := opts.start()

	points := make([]domain.ForecastPoint, 0, max(opts.Horizon, 0))
	for i := 1; i <= opts.Horizon; i++ {
		offset := i - opts.Horizon // -(Horizon-1) .. 0
		date := start.AddDate(0, 0, offset)
		points = append(points, f.pointAt(m, date, offset, opts.Rng))
	}

	fc := &domain.Forecast{
		ProductID:      m.ProductID,
		StoreID:        m.StoreID,
		Points:         points,
		Summary:        Summarize(points),
		DefaultDerived: m.DefaultDerived,
	}

	f.logger.WithFields(logrus.Fields{
		"product_id": m.ProductID,
		"store_id":   m.StoreID,
		"lookback":   opts.Horizon,
	}).Debug("reconstructed historical demand")

	return fc, nil
}

// pointAt applies the factor pipeline for one day. dayOffset is the
// (possibly negative) distance in days from the series anchor.
func (f *Forecaster) pointAt(m domain.DemandModel, date time.Time, dayOffset int, rng *rand.Rand) domain.ForecastPoint {
	trendFactor := 1 + m.TrendRate*float64(dayOffset)

	weeklyFactor := 1 - m.WeeklyAmplitude*0.5
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		weeklyFactor = 1 + m.WeeklyAmplitude
	}

	monthFactor := m.MonthFactor(int(date.Month()))

	noise := 1.0
	if rng != nil && m.NoiseStdDev > 0 {
		noise = 1.0 + rng.NormFloat64()*m.NoiseStdDev
	}

	demand := m.BaselineDailyDemand * trendFactor * weeklyFactor * monthFactor * m.SeasonalFactor * noise
	demand = math.Max(0, demand)

	return domain.ForecastPoint{
		Date:      date,
		Demand:    demand,
		DayOfWeek: date.Weekday(),
		Month:     date.Month(),
	}
}

// Summarize derives the aggregate statistics for a point series.
func Summarize(points []domain.ForecastPoint) domain.ForecastSummary {
	if len(points) == 0 {
		return domain.ForecastSummary{}
	}
	demands := make([]float64, len(points))
	total := 0.0
	for i, p := range points {
		demands[i] = p.Demand
		total += p.Demand
	}
	return domain.ForecastSummary{
		TotalDemand:            total,
		AvgDailyDemand:         stats.Mean(demands),
		StdDev:                 stats.StdDev(demands),
		CoefficientOfVariation: stats.CoefficientOfVariation(demands),
	}
}
