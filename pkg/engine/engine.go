// Package engine composes the forecasting, inventory and pricing
// components into per-(product, store) decision evaluation for the
// surrounding application layer. The engine holds no mutable state of
// its own beyond an optional caller-scoped model cache, so independent
// evaluations can run concurrently.
package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Rupinpatel75/ai-inventory-optimization/pkg/domain"
	"github.com/Rupinpatel75/ai-inventory-optimization/pkg/forecast"
	"github.com/Rupinpatel75/ai-inventory-optimization/pkg/inventory"
	"github.com/Rupinpatel75/ai-inventory-optimization/pkg/pricing"
)

// ModelProvider supplies demand models from the caller's data layer.
// Returning a domain.ModelNotFoundError makes the engine fall back to
// the documented default model instead of failing the evaluation.
type ModelProvider interface {
	DemandModel(ctx context.Context, productID, storeID int) (domain.DemandModel, error)
}

// Config assembles an Engine.
type Config struct {
	Provider ModelProvider
	Cache    *ModelCache // optional
	Logger   *logrus.Logger
}

// Engine is the composition root consumed by the application layer.
type Engine struct {
	provider   ModelProvider
	cache      *ModelCache
	forecaster *forecast.Forecaster
	inventory  *inventory.Engine
	pricing    *pricing.Optimizer
	logger     *logrus.Logger
}

// New creates an Engine from cfg. The provider is required.
func New(cfg Config) (*Engine, error) {
	if cfg.Provider == nil {
		return nil, domain.NewValidationError("provider", "model provider is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{
		provider:   cfg.Provider,
		cache:      cfg.Cache,
		forecaster: forecast.New(logger),
		inventory:  inventory.New(logger),
		pricing:    pricing.New(logger),
		logger:     logger,
	}, nil
}

// EvaluateRequest carries the inputs for one (product, store) pair.
// Zero-valued optional fields take the documented defaults.
type EvaluateRequest struct {
	ProductID int
	StoreID   int

	CurrentStock float64
	CurrentPrice float64
	UnitCost     float64

	LeadTimeDays   float64 // default 7
	ServiceLevel   float64 // default 0.95
	HoldingCostPct float64 // default 0.25
	OrderCost      float64 // default 50
	HorizonDays    int     // default 30

	// DiscountPct > 0 additionally evaluates a promotion at that
	// discount with CannibalizationRate (default 0.30).
	DiscountPct         float64
	CannibalizationRate float64

	// Start anchors the forecast; zero means time.Now().
	Start time.Time

	// Seed, when set, makes the forecast noise reproducible. Nil
	// disables noise.
	Seed *int64
}

func (r EvaluateRequest) withDefaults() EvaluateRequest {
	if r.HorizonDays == 0 {
		r.HorizonDays = 30
	}
	if r.CannibalizationRate == 0 {
		r.CannibalizationRate = pricing.DefaultCannibalizationRate
	}
	return r
}

// Decision is the combined result record for one pair.
type Decision struct {
	ID          string    `json:"id"`
	ProductID   int       `json:"product_id"`
	StoreID     int       `json:"store_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Forecast  *domain.Forecast              `json:"forecast"`
	Policy    *domain.InventoryPolicy       `json:"policy"`
	Risk      *domain.StockoutRisk          `json:"risk"`
	Turnover  *domain.TurnoverReport        `json:"turnover"`
	Reorder   *domain.ReorderRecommendation `json:"reorder"`
	Price     *domain.PriceRecommendation   `json:"price"`
	Promotion *domain.PromotionImpact       `json:"promotion,omitempty"`

	// DefaultDerived marks decisions computed from fallback model
	// parameters rather than observed metrics.
	DefaultDerived bool `json:"default_derived"`
}

// Evaluate runs the full pipeline for one pair: resolve the demand
// model, forecast the horizon, derive the inventory policy, stockout
// risk, turnover and reorder advice, and optimize the price. A discount
// request adds a promotion evaluation.
func (e *Engine) Evaluate(ctx context.Context, req EvaluateRequest) (*Decision, error) {
	req = req.withDefaults()
	if req.CurrentPrice <= 0 {
		return nil, domain.NewValidationError("current_price", "must be positive")
	}
	if req.CurrentStock < 0 {
		return nil, domain.NewValidationError("current_stock", "must not be negative")
	}

	model, err := e.resolveModel(ctx, req.ProductID, req.StoreID)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if req.Seed != nil {
		rng = rand.New(rand.NewSource(*req.Seed))
	}
	fc, err := e.forecaster.Forecast(model, forecast.Options{
		Start:   req.Start,
		Horizon: req.HorizonDays,
		Rng:     rng,
	})
	if err != nil {
		return nil, err
	}

	policy, err := e.inventory.Policy(inventory.PolicyParams{
		AvgDailyDemand: fc.Summary.AvgDailyDemand,
		DemandStdDev:   fc.Summary.StdDev,
		LeadTimeDays:   req.LeadTimeDays,
		ServiceLevel:   req.ServiceLevel,
		UnitCost:       req.UnitCost,
		HoldingCostPct: req.HoldingCostPct,
		OrderCost:      req.OrderCost,
	})
	if err != nil {
		return nil, err
	}

	risk, err := e.inventory.StockoutRisk(req.CurrentStock, fc.Summary, req.HorizonDays)
	if err != nil {
		return nil, err
	}
	turnover, err := e.inventory.Turnover(req.CurrentStock, fc.Summary.AvgDailyDemand)
	if err != nil {
		return nil, err
	}
	reorder, err := e.inventory.ReorderRecommendation(req.CurrentStock, *policy)
	if err != nil {
		return nil, err
	}

	price, err := e.pricing.Recommendation(req.CurrentPrice, req.UnitCost, fc.Summary.TotalDemand, model.Elasticity)
	if err != nil {
		return nil, err
	}

	decision := &Decision{
		ID:             uuid.NewString(),
		ProductID:      req.ProductID,
		StoreID:        req.StoreID,
		GeneratedAt:    time.Now(),
		Forecast:       fc,
		Policy:         policy,
		Risk:           risk,
		Turnover:       turnover,
		Reorder:        reorder,
		Price:          price,
		DefaultDerived: fc.DefaultDerived,
	}

	if req.DiscountPct > 0 {
		promo, err := e.pricing.PromotionImpact(
			req.CurrentPrice, req.UnitCost, fc.Summary.TotalDemand,
			req.DiscountPct, model.Elasticity, req.CannibalizationRate)
		if err != nil {
			return nil, err
		}
		decision.Promotion = promo
	}

	e.logger.WithFields(logrus.Fields{
		"decision_id":     decision.ID,
		"product_id":      req.ProductID,
		"store_id":        req.StoreID,
		"default_derived": decision.DefaultDerived,
		"risk_level":      risk.RiskLevel,
	}).Debug("evaluated decision")

	return decision, nil
}

// Allocate distributes limited supply of one product across stores.
func (e *Engine) Allocate(totalStock int, demands []domain.StoreDemand) (*domain.AllocationPlan, error) {
	return e.inventory.Allocate(totalStock, demands)
}

// Forecaster exposes the underlying forecaster for callers that need
// the series operations directly (reconstruction, seasonality).
func (e *Engine) Forecaster() *forecast.Forecaster { return e.forecaster }

// resolveModel reads through the cache to the provider. An unknown pair
// falls back to the documented default model, flagged for audit; other
// provider errors propagate.
func (e *Engine) resolveModel(ctx context.Context, productID, storeID int) (domain.DemandModel, error) {
	if e.cache != nil {
		if model, ok := e.cache.Get(productID, storeID); ok {
			return model, nil
		}
	}

	model, err := e.provider.DemandModel(ctx, productID, storeID)
	switch {
	case err == nil:
		model = model.Normalized()
		model.ProductID, model.StoreID = productID, storeID
	case domain.IsModelNotFound(err):
		e.logger.WithFields(logrus.Fields{
			"product_id": productID,
			"store_id":   storeID,
		}).Warn("no demand model found, using defaults")
		model = domain.DefaultModel(productID, storeID).Normalized()
	default:
		return domain.DemandModel{}, err
	}

	if e.cache != nil {
		e.cache.Put(model)
	}
	return model, nil
}
