package service

import (
	"testing"

	"github.com/gestio-app/gestio/internal/ledger/entity"
	"github.com/gestio-app/gestio/internal/ledger/store"
)

func newBOMFixture() (*BOMService, *store.Store) {
	st := store.New(nil, nil)
	return NewBOMService(st), st
}

// TestResolveCostRawMaterial verifies raw materials resolve to their own cost price
func TestResolveCostRawMaterial(t *testing.T) {
	bom, st := newBOMFixture()
	st.AddProduct(entity.Product{ID: "wood", Type: entity.ProductTypeRawMaterial, CostPrice: 120})

	if cost := bom.ResolveCost("wood"); cost != 120 {
		t.Fatalf("expected 120, got %v", cost)
	}
}

// TestResolveCostComposite verifies recursive component cost rollup
func TestResolveCostComposite(t *testing.T) {
	bom, st := newBOMFixture()
	st.AddProduct(entity.Product{ID: "a", Type: entity.ProductTypeRawMaterial, CostPrice: 120})
	st.AddProduct(entity.Product{
		ID:   "b",
		Type: entity.ProductTypeSubAssembly,
		// CostPrice is ignored for composites; the component graph wins
		CostPrice: 999,
		Components: []entity.ProductComponent{
			{ProductID: "a", Quantity: 2},
		},
	})

	if cost := bom.ResolveCost("b"); cost != 240 {
		t.Fatalf("expected 240, got %v", cost)
	}
}

// TestResolveCostDeepRollup verifies cost flows through multiple assembly levels
func TestResolveCostDeepRollup(t *testing.T) {
	bom, st := newBOMFixture()
	st.AddProduct(entity.Product{ID: "screw", Type: entity.ProductTypeRawMaterial, CostPrice: 0.5})
	st.AddProduct(entity.Product{ID: "board", Type: entity.ProductTypeRawMaterial, CostPrice: 30})
	st.AddProduct(entity.Product{
		ID:   "panel",
		Type: entity.ProductTypeSubAssembly,
		Components: []entity.ProductComponent{
			{ProductID: "board", Quantity: 2},
			{ProductID: "screw", Quantity: 8},
		},
	})
	st.AddProduct(entity.Product{
		ID:   "cabinet",
		Type: entity.ProductTypeFinishedGood,
		Components: []entity.ProductComponent{
			{ProductID: "panel", Quantity: 4},
			{ProductID: "screw", Quantity: 16},
		},
	})

	// panel = 2*30 + 8*0.5 = 64; cabinet = 4*64 + 16*0.5 = 264
	if cost := bom.ResolveCost("cabinet"); cost != 264 {
		t.Fatalf("expected 264, got %v", cost)
	}
}

// TestResolveCostUnknownProduct verifies missing products contribute zero
func TestResolveCostUnknownProduct(t *testing.T) {
	bom, st := newBOMFixture()
	if cost := bom.ResolveCost("ghost"); cost != 0 {
		t.Fatalf("expected 0 for unknown product, got %v", cost)
	}

	st.AddProduct(entity.Product{
		ID:   "chair",
		Type: entity.ProductTypeFinishedGood,
		Components: []entity.ProductComponent{
			{ProductID: "ghost", Quantity: 3},
		},
	})
	if cost := bom.ResolveCost("chair"); cost != 0 {
		t.Fatalf("expected 0 with dangling component, got %v", cost)
	}
}

// TestResolveCostCorruptCycle verifies resolution terminates on a cyclic catalog
func TestResolveCostCorruptCycle(t *testing.T) {
	bom, st := newBOMFixture()
	st.AddProduct(entity.Product{
		ID:   "x",
		Type: entity.ProductTypeSubAssembly,
		Components: []entity.ProductComponent{
			{ProductID: "y", Quantity: 1},
		},
	})
	st.AddProduct(entity.Product{
		ID:   "y",
		Type: entity.ProductTypeSubAssembly,
		Components: []entity.ProductComponent{
			{ProductID: "x", Quantity: 1},
		},
	})

	// Must return (not hang); revisited nodes count as zero
	if cost := bom.ResolveCost("x"); cost != 0 {
		t.Fatalf("expected 0 for cyclic catalog, got %v", cost)
	}
}

// TestWouldCreateCycleSelfReference verifies a product cannot contain itself
func TestWouldCreateCycleSelfReference(t *testing.T) {
	bom, st := newBOMFixture()
	st.AddProduct(entity.Product{ID: "p", Type: entity.ProductTypeSubAssembly})

	if !bom.WouldCreateCycle("p", "p") {
		t.Fatal("expected self-reference to be detected as a cycle")
	}
}

// TestWouldCreateCycleTransitive verifies transitive cycles are caught
func TestWouldCreateCycleTransitive(t *testing.T) {
	bom, st := newBOMFixture()
	st.AddProduct(entity.Product{ID: "a", Type: entity.ProductTypeRawMaterial})
	st.AddProduct(entity.Product{
		ID:   "b",
		Type: entity.ProductTypeSubAssembly,
		Components: []entity.ProductComponent{
			{ProductID: "a", Quantity: 1},
		},
	})
	st.AddProduct(entity.Product{
		ID:   "c",
		Type: entity.ProductTypeFinishedGood,
		Components: []entity.ProductComponent{
			{ProductID: "b", Quantity: 1},
		},
	})

	// Adding c as a component of a would close a -> ... -> c -> b -> a
	if !bom.WouldCreateCycle("a", "c") {
		t.Fatal("expected transitive cycle to be detected")
	}
	// The other direction stays a DAG
	if bom.WouldCreateCycle("c", "a") {
		t.Fatal("expected no cycle adding a leaf to the root")
	}
}

// TestValidateComponents verifies the whole component list is rejected on one violation
func TestValidateComponents(t *testing.T) {
	bom, st := newBOMFixture()
	st.AddProduct(entity.Product{ID: "leg", Type: entity.ProductTypeRawMaterial})
	st.AddProduct(entity.Product{ID: "table", Type: entity.ProductTypeFinishedGood})

	ok := []entity.ProductComponent{{ProductID: "leg", Quantity: 4}}
	if err := bom.ValidateComponents("table", ok); err != nil {
		t.Fatalf("expected valid components to pass, got %v", err)
	}

	bad := []entity.ProductComponent{
		{ProductID: "leg", Quantity: 4},
		{ProductID: "table", Quantity: 1},
	}
	if err := bom.ValidateComponents("table", bad); err != ErrCircularReference {
		t.Fatalf("expected ErrCircularReference, got %v", err)
	}
}
