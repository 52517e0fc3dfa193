package inventory

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/Rupinpatel75/ai-inventory-optimization/pkg/domain"
)

// Allocate distributes totalStock units across stores. With enough
// supply every store receives ceil(demand) and the remainder goes out
// round-robin; under scarcity stores receive floor shares proportional to
// demand and leftover units go to the lowest-coverage stores first.
// Every input store appears exactly once in the plan, including stores
// with zero demand (allocation 0, coverage 100). When total demand is
// zero nothing is allocated.
func (e *Engine) Allocate(totalStock int, demands []domain.StoreDemand) (*domain.AllocationPlan, error) {
	if totalStock < 0 {
		return nil, domain.NewValidationError("total_stock", "must not be negative")
	}
	sumDemand := 0.0
	sumCeil := 0
	for _, d := range demands {
		if d.Demand < 0 {
			return nil, domain.NewValidationError("demand", "must not be negative")
		}
		sumDemand += d.Demand
		sumCeil += int(math.Ceil(d.Demand))
	}

	plan := &domain.AllocationPlan{
		TotalStock:  totalStock,
		Allocations: make([]domain.StoreAllocation, len(demands)),
	}
	for i, d := range demands {
		plan.Allocations[i] = domain.StoreAllocation{StoreID: d.StoreID, Demand: d.Demand}
	}
	if len(demands) == 0 || sumDemand == 0 {
		finishPlan(plan)
		return plan, nil
	}

	if totalStock >= sumCeil {
		e.allocateAbundant(plan, totalStock, sumCeil)
	} else {
		plan.Constrained = true
		e.allocateScarce(plan, totalStock, sumDemand)
	}

	finishPlan(plan)

	e.logger.WithFields(logrus.Fields{
		"total_stock":     totalStock,
		"stores":          len(demands),
		"total_demand":    sumDemand,
		"constrained":     plan.Constrained,
		"total_allocated": plan.TotalAllocated,
	}).Debug("allocated stock across stores")

	return plan, nil
}

// allocateAbundant gives each store ceil(demand) and cycles the surplus
// one unit at a time in store order.
func (e *Engine) allocateAbundant(plan *domain.AllocationPlan, totalStock, sumCeil int) {
	for i := range plan.Allocations {
		plan.Allocations[i].AllocatedQuantity = int(math.Ceil(plan.Allocations[i].Demand))
	}
	remainder := totalStock - sumCeil
	for i := 0; remainder > 0; i = (i + 1) % len(plan.Allocations) {
		plan.Allocations[i].AllocatedQuantity++
		remainder--
	}
}

// allocateScarce splits the stock proportionally to demand, then hands
// the rounding remainder to the stores with the lowest coverage first.
func (e *Engine) allocateScarce(plan *domain.AllocationPlan, totalStock int, sumDemand float64) {
	allocated := 0
	for i := range plan.Allocations {
		share := int(math.Floor(float64(totalStock) * plan.Allocations[i].Demand / sumDemand))
		plan.Allocations[i].AllocatedQuantity = share
		allocated += share
	}

	remainder := totalStock - allocated
	if remainder <= 0 {
		return
	}
	order := make([]int, len(plan.Allocations))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return coverage(plan.Allocations[order[a]]) < coverage(plan.Allocations[order[b]])
	})
	for _, idx := range order {
		if remainder == 0 {
			break
		}
		plan.Allocations[idx].AllocatedQuantity++
		remainder--
	}
}

// coverage returns allocated/demand as a percentage, 100 for zero demand.
func coverage(a domain.StoreAllocation) float64 {
	if a.Demand == 0 {
		return 100
	}
	return float64(a.AllocatedQuantity) / a.Demand * 100
}

func finishPlan(plan *domain.AllocationPlan) {
	total := 0
	for i := range plan.Allocations {
		plan.Allocations[i].CoveragePct = coverage(plan.Allocations[i])
		total += plan.Allocations[i].AllocatedQuantity
	}
	plan.TotalAllocated = total
}
