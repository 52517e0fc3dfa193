package forecast

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Rupinpatel75/ai-inventory-optimization/pkg/domain"
)

// AnalyzeSeasonality buckets a historical series by day of week and by
// month and reports each bucket's mean demand relative to the overall
// mean. Only observed buckets appear in the patterns. An empty series is
// a validation error.
func (f *Forecaster) AnalyzeSeasonality(points []domain.ForecastPoint) (*domain.SeasonalityAnalysis, error) {
	if len(points) == 0 {
		return nil, domain.NewValidationError("points", "seasonality analysis requires at least one point")
	}

	var (
		daySums    [7]float64
		dayCounts  [7]int
		monthSums  [12]float64
		monthCount [12]int
		total      float64
	)
	for _, p := range points {
		d := int(p.Date.Weekday())
		m := int(p.Date.Month()) - 1
		daySums[d] += p.Demand
		dayCounts[d]++
		monthSums[m] += p.Demand
		monthCount[m]++
		total += p.Demand
	}
	overall := total / float64(len(points))

	relative := func(mean float64) float64 {
		if overall == 0 {
			return 1.0
		}
		return mean / overall
	}

	analysis := &domain.SeasonalityAnalysis{}

	first := true
	var peakRel, lowRel float64
	for d := 0; d < 7; d++ {
		if dayCounts[d] == 0 {
			continue
		}
		mean := daySums[d] / float64(dayCounts[d])
		rel := relative(mean)
		analysis.WeeklyPattern = append(analysis.WeeklyPattern, domain.DayPattern{
			Day:           time.Weekday(d),
			Mean:          mean,
			RelativeToAvg: rel,
		})
		if first || rel > peakRel {
			peakRel = rel
			analysis.PeakDay = time.Weekday(d)
		}
		if first || rel < lowRel {
			lowRel = rel
			analysis.LowestDay = time.Weekday(d)
		}
		first = false
	}

	first = true
	var peakMonthRel, lowMonthRel float64
	for m := 0; m < 12; m++ {
		if monthCount[m] == 0 {
			continue
		}
		mean := monthSums[m] / float64(monthCount[m])
		rel := relative(mean)
		analysis.MonthlyPattern = append(analysis.MonthlyPattern, domain.MonthPattern{
			Month:         time.Month(m + 1),
			Mean:          mean,
			RelativeToAvg: rel,
		})
		if first || rel > peakMonthRel {
			peakMonthRel = rel
			analysis.PeakMonth = time.Month(m + 1)
		}
		if first || rel < lowMonthRel {
			lowMonthRel = rel
			analysis.LowestMonth = time.Month(m + 1)
		}
		first = false
	}

	// Strength is the peak-to-trough ratio of monthly factors; a zero
	// trough would divide by zero, so report 1.0 (no usable signal).
	analysis.SeasonalityStrength = 1.0
	if lowMonthRel > 0 {
		analysis.SeasonalityStrength = peakMonthRel / lowMonthRel
	}

	f.logger.WithFields(logrus.Fields{
		"points":     len(points),
		"peak_day":   analysis.PeakDay.String(),
		"peak_month": analysis.PeakMonth.String(),
		"strength":   analysis.SeasonalityStrength,
	}).Debug("analyzed seasonality")

	return analysis, nil
}
