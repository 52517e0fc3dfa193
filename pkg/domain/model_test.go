package domain

import (
	"testing"
)

func TestNormalizedAppliesDefaults(t *testing.T) {
	tests := []struct {
		name         string
		model        DemandModel
		wantBaseline float64
		wantElast    float64
		wantFlagged  bool
	}{
		{
			name:         "empty model gets full defaults",
			model:        DemandModel{},
			wantBaseline: DefaultBaselineDailyDemand,
			wantElast:    DefaultElasticity,
			wantFlagged:  true,
		},
		{
			name: "measured model passes through",
			model: DemandModel{
				BaselineDailyDemand: 42,
				Elasticity:          -2.2,
				SeasonalFactor:      1.1,
			},
			wantBaseline: 42,
			wantElast:    -2.2,
			wantFlagged:  false,
		},
		{
			name: "missing elasticity flags the model",
			model: DemandModel{
				BaselineDailyDemand: 42,
				SeasonalFactor:      1.0,
			},
			wantBaseline: 42,
			wantElast:    DefaultElasticity,
			wantFlagged:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.model.Normalized()
			if got.BaselineDailyDemand != tt.wantBaseline {
				t.Errorf("BaselineDailyDemand = %v, expected %v", got.BaselineDailyDemand, tt.wantBaseline)
			}
			if got.Elasticity != tt.wantElast {
				t.Errorf("Elasticity = %v, expected %v", got.Elasticity, tt.wantElast)
			}
			if got.DefaultDerived != tt.wantFlagged {
				t.Errorf("DefaultDerived = %v, expected %v", got.DefaultDerived, tt.wantFlagged)
			}
			if len(got.MonthFactors) != 12 {
				t.Errorf("MonthFactors length = %d, expected 12", len(got.MonthFactors))
			}
			if got.SeasonalFactor == 0 {
				t.Error("SeasonalFactor should never stay zero after normalization")
			}
		})
	}
}

func TestNormalizedDoesNotMutateReceiver(t *testing.T) {
	m := DemandModel{}
	_ = m.Normalized()
	if m.BaselineDailyDemand != 0 || m.DefaultDerived {
		t.Error("Normalized must not modify the receiver")
	}
}

func TestMonthFactor(t *testing.T) {
	tests := []struct {
		name     string
		model    DemandModel
		month    int
		expected float64
	}{
		{
			name:     "default table peaks in Q4",
			model:    DemandModel{MonthFactors: DefaultMonthFactors()},
			month:    11,
			expected: 1.3,
		},
		{
			name:     "default table is flat outside Q4",
			model:    DemandModel{MonthFactors: DefaultMonthFactors()},
			month:    4,
			expected: 1.0,
		},
		{
			name:     "missing table falls back to 1.0",
			model:    DemandModel{},
			month:    11,
			expected: 1.0,
		},
		{
			name:     "out of range month falls back to 1.0",
			model:    DemandModel{MonthFactors: DefaultMonthFactors()},
			month:    13,
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.MonthFactor(tt.month); got != tt.expected {
				t.Errorf("MonthFactor(%d) = %v, expected %v", tt.month, got, tt.expected)
			}
		})
	}
}

func TestDefaultModelIsFlagged(t *testing.T) {
	m := DefaultModel(3, 7)
	if !m.DefaultDerived {
		t.Error("DefaultModel must carry the DefaultDerived flag")
	}
	if m.ProductID != 3 || m.StoreID != 7 {
		t.Errorf("DefaultModel keys = (%d, %d), expected (3, 7)", m.ProductID, m.StoreID)
	}
	if m.Elasticity != DefaultElasticity {
		t.Errorf("DefaultModel elasticity = %v, expected %v", m.Elasticity, DefaultElasticity)
	}
}

func TestErrorPredicates(t *testing.T) {
	ve := NewValidationError("price", "must be positive")
	if !IsValidation(ve) {
		t.Error("IsValidation should match a ValidationError")
	}
	if IsModelNotFound(ve) {
		t.Error("IsModelNotFound should not match a ValidationError")
	}

	me := &ModelNotFoundError{ProductID: 1, StoreID: 2}
	if !IsModelNotFound(me) {
		t.Error("IsModelNotFound should match a ModelNotFoundError")
	}
	if me.Error() == "" || ve.Error() == "" {
		t.Error("error messages must not be empty")
	}
}
