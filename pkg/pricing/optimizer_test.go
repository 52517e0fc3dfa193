package pricing

import (
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rupinpatel75/ai-inventory-optimization/pkg/domain"
)

func testOptimizer() *Optimizer {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return New(l)
}

func TestOptimalPriceWorkedExample(t *testing.T) {
	// price = 60 / (1 + 1/-1.5) = 60 / (1/3) = 180
	decision, err := testOptimizer().OptimalPrice(100, 60, 1000, -1.5)
	require.NoError(t, err)

	assert.InDelta(t, 180.0, decision.OptimalPrice, 1e-9)
	assert.InDelta(t, (180.0-60.0)/180.0, decision.Margin, 1e-9)
	assert.False(t, decision.DefaultElasticity)

	// Demand follows the constant-elasticity curve off the current price.
	wantDemand := 1000 * math.Pow(1.8, -1.5)
	assert.InDelta(t, wantDemand, decision.ExpectedDemand, 1e-9)
	assert.InDelta(t, (180.0-60.0)*wantDemand, decision.ExpectedProfit, 1e-6)
}

func TestOptimalPriceFloorsAtCostPlusMargin(t *testing.T) {
	// Highly elastic demand pushes the formula price below cost*1.1.
	decision, err := testOptimizer().OptimalPrice(100, 60, 1000, -100)
	require.NoError(t, err)
	assert.InDelta(t, 66.0, decision.OptimalPrice, 1e-9)
	assert.Greater(t, decision.Margin, 0.0)
}

func TestOptimalPriceClampsNearZeroElasticity(t *testing.T) {
	// -0.005 clamps to -0.01; the markup turns negative and the floor
	// takes over, keeping the price bounded and positive.
	decision, err := testOptimizer().OptimalPrice(100, 60, 1000, -0.005)
	require.NoError(t, err)
	assert.Equal(t, -0.01, decision.Elasticity)
	assert.InDelta(t, 66.0, decision.OptimalPrice, 1e-9)
	assert.Greater(t, decision.OptimalPrice, 0.0)
}

func TestOptimalPriceMissingElasticityUsesDefault(t *testing.T) {
	decision, err := testOptimizer().OptimalPrice(100, 60, 1000, 0)
	require.NoError(t, err)
	assert.True(t, decision.DefaultElasticity)
	assert.Equal(t, domain.DefaultElasticity, decision.Elasticity)
}

func TestOptimalPriceZeroCostHoldsCurrentPrice(t *testing.T) {
	decision, err := testOptimizer().OptimalPrice(100, 0, 1000, -1.5)
	require.NoError(t, err)
	assert.Equal(t, 100.0, decision.OptimalPrice)
}

func TestOptimalPriceValidation(t *testing.T) {
	o := testOptimizer()
	tests := []struct {
		name                       string
		price, cost, base, elast   float64
	}{
		{"zero current price", 0, 60, 1000, -1.5},
		{"negative current price", -10, 60, 1000, -1.5},
		{"negative cost", 100, -1, 1000, -1.5},
		{"positive elasticity", 100, 60, 1000, 1.5},
		{"negative base demand", 100, 60, -1, -1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := o.OptimalPrice(tt.price, tt.cost, tt.base, tt.elast)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestDemandAtPrice(t *testing.T) {
	o := testOptimizer()

	// Same price, same demand.
	d, err := o.DemandAtPrice(500, 100, 100, -1.5)
	require.NoError(t, err)
	assert.InDelta(t, 500.0, d, 1e-9)

	// Cheaper price, more demand; dearer price, less.
	lower, err := o.DemandAtPrice(500, 100, 80, -1.5)
	require.NoError(t, err)
	higher, err := o.DemandAtPrice(500, 100, 120, -1.5)
	require.NoError(t, err)
	assert.Greater(t, lower, 500.0)
	assert.Less(t, higher, 500.0)
	assert.GreaterOrEqual(t, higher, 0.0)

	_, err = o.DemandAtPrice(500, 100, 0, -1.5)
	assert.True(t, domain.IsValidation(err))
	_, err = o.DemandAtPrice(500, 0, 100, -1.5)
	assert.True(t, domain.IsValidation(err))
}

func TestEvaluateCandidatesRanksByProfit(t *testing.T) {
	evals, err := testOptimizer().EvaluateCandidates(100, 60, 1000, []float64{80, 100, 120, 140, 180, 220}, -1.5)
	require.NoError(t, err)
	require.Len(t, evals, 6)

	for i := 1; i < len(evals); i++ {
		assert.GreaterOrEqual(t, evals[i-1].ExpectedProfit, evals[i].ExpectedProfit-1e-9,
			"candidates must be ranked by expected profit")
	}
	// 180 is the analytic optimum for elasticity -1.5 and cost 60.
	assert.Equal(t, 180.0, evals[0].Price)
}

func TestEvaluateCandidatesTieBreakPrefersCurrentPrice(t *testing.T) {
	// With zero cost and unit elasticity every price earns identical
	// profit, so ranking falls through to distance from current price.
	evals, err := testOptimizer().EvaluateCandidates(100, 0, 1000, []float64{90, 110, 100}, -1)
	require.NoError(t, err)
	require.Len(t, evals, 3)

	assert.Equal(t, 100.0, evals[0].Price, "no-op must win profit ties")
	assert.InDelta(t, evals[0].ExpectedProfit, evals[1].ExpectedProfit, 1e-6)
}

func TestEvaluateCandidatesSkipsNonPositivePrices(t *testing.T) {
	evals, err := testOptimizer().EvaluateCandidates(100, 60, 1000, []float64{-5, 0, 110}, -1.5)
	require.NoError(t, err)
	require.Len(t, evals, 1)
	assert.Equal(t, 110.0, evals[0].Price)
}

func TestPromotionImpact(t *testing.T) {
	// 10% off with elastic demand and no cannibalization is profitable.
	promo, err := testOptimizer().PromotionImpact(100, 60, 300, 0.1, -3, 0)
	require.NoError(t, err)

	assert.InDelta(t, 90.0, promo.PromoPrice, 1e-9)
	assert.Greater(t, promo.ExpectedDemand, promo.BaseDemand)
	assert.Greater(t, promo.ProfitDelta, 0.0)
	assert.Equal(t, promo.ProfitDelta, promo.AdjustedProfitDelta)
	assert.True(t, promo.IsRecommended)

	// The same promotion with 30% cannibalization flips negative.
	cannibalized, err := testOptimizer().PromotionImpact(100, 60, 300, 0.1, -3, 0.3)
	require.NoError(t, err)
	assert.Less(t, cannibalized.AdjustedProfitDelta, cannibalized.ProfitDelta)
	assert.Greater(t, cannibalized.CannibalizationCost, 0.0)
	assert.False(t, cannibalized.IsRecommended)
}

func TestPromotionImpactShallowDiscountNotRecommended(t *testing.T) {
	// Inelastic demand: discounting loses margin faster than it adds
	// volume.
	promo, err := testOptimizer().PromotionImpact(100, 60, 300, 0.2, -1.5, 0.3)
	require.NoError(t, err)
	assert.Less(t, promo.ProfitDelta, 0.0)
	assert.False(t, promo.IsRecommended)
}

func TestPromotionImpactValidation(t *testing.T) {
	o := testOptimizer()
	tests := []struct {
		name     string
		discount float64
		rate     float64
	}{
		{"zero discount", 0, 0.3},
		{"full discount", 1, 0.3},
		{"negative discount", -0.1, 0.3},
		{"negative cannibalization", 0.1, -0.1},
		{"cannibalization above one", 0.1, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := o.PromotionImpact(100, 60, 300, tt.discount, -1.5, tt.rate)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestRecommendationActions(t *testing.T) {
	o := testOptimizer()

	// Current price already at the analytic optimum: maintain.
	maintain, err := o.Recommendation(180, 60, 1000, -1.5)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionMaintain, maintain.Action)
	assert.Equal(t, domain.ConfidenceHigh, maintain.Confidence)

	// Far below the optimum: a large increase with low confidence.
	increase, err := o.Recommendation(100, 60, 1000, -1.5)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionIncrease, increase.Action)
	assert.Equal(t, domain.ConfidenceLow, increase.Confidence)
	assert.InDelta(t, 80.0, increase.PriceChangePct, 1e-9)

	// Above the optimum: decrease.
	decrease, err := o.Recommendation(250, 60, 1000, -1.5)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionDecrease, decrease.Action)
}
