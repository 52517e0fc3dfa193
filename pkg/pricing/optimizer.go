// Package pricing computes elasticity-based price decisions: the
// profit-maximizing price under constant elasticity, candidate price
// ranking, promotion impact with cannibalization, and a directional
// recommendation. Every method is a pure function of its inputs.
package pricing

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/Rupinpatel75/ai-inventory-optimization/pkg/domain"
)

// Documented defaults and clamps.
const (
	DefaultCannibalizationRate = 0.30

	// minMarginFactor floors the optimal price at cost*1.1 so the
	// decision always carries a positive margin.
	minMarginFactor = 1.1

	// elasticityClamp bounds near-zero elasticities; values in
	// [-0.01, 0) would blow up the markup formula.
	elasticityClamp = -0.01

	profitEpsilon = 1e-9
)

// Optimizer computes price decisions.
type Optimizer struct {
	logger *logrus.Logger
}

// New creates an Optimizer. A nil logger gets a default logrus logger.
func New(logger *logrus.Logger) *Optimizer {
	if logger == nil {
		logger = logrus.New()
	}
	return &Optimizer{logger: logger}
}

// normalizeElasticity applies the missing-value default and the
// near-zero clamp. Positive elasticity is rejected by validate.
func normalizeElasticity(elasticity float64) (value float64, defaulted bool) {
	if elasticity == 0 {
		return domain.DefaultElasticity, true
	}
	if elasticity > elasticityClamp {
		return elasticityClamp, false
	}
	return elasticity, false
}

func validatePriceInputs(currentPrice, marginalCost, elasticity float64) error {
	switch {
	case currentPrice <= 0:
		return domain.NewValidationError("current_price", "must be positive")
	case marginalCost < 0:
		return domain.NewValidationError("marginal_cost", "must not be negative")
	case elasticity > 0:
		return domain.NewValidationError("elasticity", "must be negative")
	}
	return nil
}

// OptimalPrice returns the constant-elasticity profit-maximizing price
// marginalCost/(1+1/elasticity), floored at marginalCost*1.1.
// baseDemand is the expected demand at currentPrice over the evaluation
// horizon. A zero elasticity selects the documented default and flags
// the decision.
func (o *Optimizer) OptimalPrice(currentPrice, marginalCost, baseDemand, elasticity float64) (*domain.PriceDecision, error) {
	if err := validatePriceInputs(currentPrice, marginalCost, elasticity); err != nil {
		return nil, err
	}
	if baseDemand < 0 {
		return nil, domain.NewValidationError("base_demand", "must not be negative")
	}
	el, defaulted := normalizeElasticity(elasticity)
	if defaulted {
		o.logger.WithField("default_elasticity", el).Warn("missing elasticity, using default")
	}

	price := 0.0
	if markup := 1 + 1/el; markup > 0 {
		price = marginalCost / markup
	}
	floor := marginalCost * minMarginFactor
	if price < floor {
		price = floor
	}
	if price <= 0 {
		// Zero-cost goods have no interior optimum; hold the current price.
		price = currentPrice
	}

	demand, err := o.DemandAtPrice(baseDemand, currentPrice, price, el)
	if err != nil {
		return nil, err
	}

	decision := &domain.PriceDecision{
		CurrentPrice:      currentPrice,
		OptimalPrice:      price,
		MarginalCost:      marginalCost,
		Elasticity:        el,
		ExpectedDemand:    demand,
		ExpectedProfit:    (price - marginalCost) * demand,
		Margin:            margin(price, marginalCost),
		DefaultElasticity: defaulted,
	}

	o.logger.WithFields(logrus.Fields{
		"current_price": currentPrice,
		"optimal_price": decision.OptimalPrice,
		"elasticity":    el,
	}).Debug("computed optimal price")

	return decision, nil
}

// DemandAtPrice applies the constant-elasticity demand curve
// baseDemand*(candidatePrice/basePrice)^elasticity, clamped at zero.
func (o *Optimizer) DemandAtPrice(baseDemand, basePrice, candidatePrice, elasticity float64) (float64, error) {
	switch {
	case baseDemand < 0:
		return 0, domain.NewValidationError("base_demand", "must not be negative")
	case basePrice <= 0:
		return 0, domain.NewValidationError("base_price", "must be positive")
	case candidatePrice <= 0:
		return 0, domain.NewValidationError("candidate_price", "must be positive")
	case elasticity > 0:
		return 0, domain.NewValidationError("elasticity", "must be negative")
	}
	el, _ := normalizeElasticity(elasticity)
	demand := baseDemand * math.Pow(candidatePrice/basePrice, el)
	if math.IsNaN(demand) || demand < 0 {
		return 0, nil
	}
	return demand, nil
}

// EvaluateCandidates scores each candidate price and returns the list
// ranked by expected profit. Ties in profit prefer the price closest to
// the current price, so "change nothing" wins when indifferent.
// Non-positive candidates are skipped.
func (o *Optimizer) EvaluateCandidates(currentPrice, marginalCost, baseDemand float64, candidates []float64, elasticity float64) ([]domain.PriceEvaluation, error) {
	if err := validatePriceInputs(currentPrice, marginalCost, elasticity); err != nil {
		return nil, err
	}
	if baseDemand < 0 {
		return nil, domain.NewValidationError("base_demand", "must not be negative")
	}
	el, _ := normalizeElasticity(elasticity)

	evals := make([]domain.PriceEvaluation, 0, len(candidates))
	for _, price := range candidates {
		if price <= 0 {
			o.logger.WithField("price", price).Warn("skipping non-positive candidate price")
			continue
		}
		demand, err := o.DemandAtPrice(baseDemand, currentPrice, price, el)
		if err != nil {
			return nil, err
		}
		evals = append(evals, domain.PriceEvaluation{
			Price:             price,
			ExpectedDemand:    demand,
			ExpectedProfit:    (price - marginalCost) * demand,
			Margin:            margin(price, marginalCost),
			DeviationFromCurr: math.Abs(price - currentPrice),
		})
	}

	sort.SliceStable(evals, func(i, j int) bool {
		if math.Abs(evals[i].ExpectedProfit-evals[j].ExpectedProfit) > profitEpsilon {
			return evals[i].ExpectedProfit > evals[j].ExpectedProfit
		}
		return evals[i].DeviationFromCurr < evals[j].DeviationFromCurr
	})

	return evals, nil
}

// PromotionImpact evaluates a temporary discount. The profit delta is
// reduced by the cannibalization cost: the configured share of the
// incremental demand valued at the full-price unit margin. A promotion
// is recommended only when the adjusted delta is positive.
func (o *Optimizer) PromotionImpact(currentPrice, marginalCost, baseDemand, discountPct, elasticity, cannibalizationRate float64) (*domain.PromotionImpact, error) {
	if err := validatePriceInputs(currentPrice, marginalCost, elasticity); err != nil {
		return nil, err
	}
	switch {
	case baseDemand < 0:
		return nil, domain.NewValidationError("base_demand", "must not be negative")
	case discountPct <= 0 || discountPct >= 1:
		return nil, domain.NewValidationError("discount_pct", "must be in (0, 1)")
	case cannibalizationRate < 0 || cannibalizationRate > 1:
		return nil, domain.NewValidationError("cannibalization_rate", "must be in [0, 1]")
	}
	el, _ := normalizeElasticity(elasticity)

	promoPrice := currentPrice * (1 - discountPct)
	promoDemand, err := o.DemandAtPrice(baseDemand, currentPrice, promoPrice, el)
	if err != nil {
		return nil, err
	}

	baseProfit := (currentPrice - marginalCost) * baseDemand
	promoProfit := (promoPrice - marginalCost) * promoDemand
	delta := promoProfit - baseProfit

	incremental := math.Max(0, promoDemand-baseDemand)
	cannibalized := cannibalizationRate * incremental * (currentPrice - marginalCost)
	adjusted := delta - cannibalized

	impact := &domain.PromotionImpact{
		CurrentPrice:        currentPrice,
		PromoPrice:          promoPrice,
		DiscountPct:         discountPct,
		BaseDemand:          baseDemand,
		ExpectedDemand:      promoDemand,
		BaseProfit:          baseProfit,
		PromoProfit:         promoProfit,
		ProfitDelta:         delta,
		CannibalizationRate: cannibalizationRate,
		CannibalizationCost: cannibalized,
		AdjustedProfitDelta: adjusted,
		IsRecommended:       adjusted > 0,
	}

	o.logger.WithFields(logrus.Fields{
		"promo_price":    promoPrice,
		"profit_delta":   delta,
		"adjusted_delta": adjusted,
		"recommended":    impact.IsRecommended,
	}).Debug("evaluated promotion impact")

	return impact, nil
}

// Recommendation wraps OptimalPrice with a directional action. Moves
// under 1% are reported as maintain; confidence falls as the size of the
// recommended move grows (high under 5%, medium under 15%, low above).
func (o *Optimizer) Recommendation(currentPrice, marginalCost, baseDemand, elasticity float64) (*domain.PriceRecommendation, error) {
	decision, err := o.OptimalPrice(currentPrice, marginalCost, baseDemand, elasticity)
	if err != nil {
		return nil, err
	}

	changePct := (decision.OptimalPrice - currentPrice) / currentPrice * 100
	rec := &domain.PriceRecommendation{
		Decision:       *decision,
		PriceChange:    decision.OptimalPrice - currentPrice,
		PriceChangePct: changePct,
		ProfitImpact:   decision.ExpectedProfit - (currentPrice-marginalCost)*baseDemand,
	}

	switch {
	case math.Abs(changePct) < 1:
		rec.Action = domain.ActionMaintain
	case changePct > 0:
		rec.Action = domain.ActionIncrease
	default:
		rec.Action = domain.ActionDecrease
	}

	switch {
	case math.Abs(changePct) < 5:
		rec.Confidence = domain.ConfidenceHigh
	case math.Abs(changePct) < 15:
		rec.Confidence = domain.ConfidenceMedium
	default:
		rec.Confidence = domain.ConfidenceLow
	}

	return rec, nil
}

func margin(price, cost float64) float64 {
	if price <= 0 {
		return 0
	}
	return (price - cost) / price
}
