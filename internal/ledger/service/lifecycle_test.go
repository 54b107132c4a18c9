package service

import (
	"testing"
	"time"

	"github.com/gestio-app/gestio/internal/ledger/entity"
)

// TestCreationEffectsQuote verifies quotes never produce ledger entries
func TestCreationEffectsQuote(t *testing.T) {
	p := entity.Project{ID: "p1", Type: entity.ProjectTypeSale, Status: entity.ProjectStatusQuote, Budget: 1000}
	if effects := CreationEffects(p, time.Now()); effects != nil {
		t.Fatalf("expected no effects for a quote, got %d", len(effects))
	}
}

// TestCreationEffectsQuoteTypeProject verifies quote-type projects are inert regardless of status
func TestCreationEffectsQuoteTypeProject(t *testing.T) {
	p := entity.Project{ID: "p1", Type: entity.ProjectTypeQuote, Status: entity.ProjectStatusApproved, Budget: 1000}
	if effects := CreationEffects(p, time.Now()); effects != nil {
		t.Fatalf("expected no effects for quote-type project, got %d", len(effects))
	}
}

// TestCreationEffectsActiveSale verifies the 50% deposit on active sale creation
func TestCreationEffectsActiveSale(t *testing.T) {
	now := time.Now()
	p := entity.Project{
		ID:     "p1",
		Title:  "Kitchen remodel",
		Type:   entity.ProjectTypeSale,
		Status: entity.ProjectStatusApproved,
		Budget: 1000,
	}

	effects := CreationEffects(p, now)
	if len(effects) != 1 {
		t.Fatalf("expected 1 effect (deposit only, no products), got %d", len(effects))
	}

	emit, ok := effects[0].(EmitTransaction)
	if !ok {
		t.Fatalf("expected EmitTransaction, got %T", effects[0])
	}
	tx := emit.Transaction
	if tx.Amount != 500 {
		t.Fatalf("expected deposit 500, got %v", tx.Amount)
	}
	if tx.Type != entity.TransactionTypeInflow || tx.Category != entity.TransactionCategoryDeposit {
		t.Fatalf("unexpected transaction kind: type=%s category=%s", tx.Type, tx.Category)
	}
	if tx.Description != "Deposit - Kitchen remodel" {
		t.Fatalf("unexpected description: %q", tx.Description)
	}
	if tx.ProjectID != "p1" || tx.ProjectTitle != "Kitchen remodel" {
		t.Fatalf("expected project linkage, got %+v", tx)
	}
	if !tx.Date.Equal(now) {
		t.Fatalf("expected transaction dated at creation time")
	}
}

// TestCreationEffectsWithProducts verifies the stock cascade follows the deposit
func TestCreationEffectsWithProducts(t *testing.T) {
	items := []entity.ProjectProduct{{ProductID: "b", Quantity: 3}}
	p := entity.Project{
		ID:       "p1",
		Type:     entity.ProjectTypeSale,
		Status:   entity.ProjectStatusInProduction,
		Budget:   2000,
		Products: items,
	}

	effects := CreationEffects(p, time.Now())
	if len(effects) != 2 {
		t.Fatalf("expected deposit + cascade, got %d effects", len(effects))
	}
	cascade, ok := effects[1].(EmitStockCascade)
	if !ok {
		t.Fatalf("expected EmitStockCascade second, got %T", effects[1])
	}
	if cascade.ProjectID != "p1" || len(cascade.Items) != 1 {
		t.Fatalf("unexpected cascade payload: %+v", cascade)
	}
}

// TestTransitionEffectsCompletion verifies the final payment fires once on entering completed
func TestTransitionEffectsCompletion(t *testing.T) {
	now := time.Now()
	prev := entity.Project{ID: "p1", Title: "Deck", Type: entity.ProjectTypeSale, Status: entity.ProjectStatusInProduction, Budget: 800}
	next := prev
	next.Status = entity.ProjectStatusCompleted

	effects := TransitionEffects(prev, next, now)
	if len(effects) != 1 {
		t.Fatalf("expected 1 effect, got %d", len(effects))
	}
	tx := effects[0].(EmitTransaction).Transaction
	if tx.Amount != 400 {
		t.Fatalf("expected final payment 400, got %v", tx.Amount)
	}
	if tx.Category != entity.TransactionCategoryFinalPayment {
		t.Fatalf("expected final_payment category, got %s", tx.Category)
	}
	if tx.Description != "Final payment - Deck" {
		t.Fatalf("unexpected description: %q", tx.Description)
	}
}

// TestTransitionEffectsIdempotent verifies re-saving a completed project emits nothing
func TestTransitionEffectsIdempotent(t *testing.T) {
	prev := entity.Project{ID: "p1", Type: entity.ProjectTypeSale, Status: entity.ProjectStatusCompleted, Budget: 800}
	next := prev
	next.Notes = "edited after completion"

	if effects := TransitionEffects(prev, next, time.Now()); effects != nil {
		t.Fatalf("expected no effects when already completed, got %d", len(effects))
	}
}

// TestTransitionEffectsOtherStatuses verifies plain status moves are side-effect free
func TestTransitionEffectsOtherStatuses(t *testing.T) {
	prev := entity.Project{ID: "p1", Type: entity.ProjectTypeSale, Status: entity.ProjectStatusQuote, Budget: 800}
	for _, status := range []string{
		entity.ProjectStatusApproved,
		entity.ProjectStatusInProduction,
		entity.ProjectStatusDelivered,
	} {
		next := prev
		next.Status = status
		if effects := TransitionEffects(prev, next, time.Now()); effects != nil {
			t.Fatalf("expected no effects for transition to %s, got %d", status, len(effects))
		}
	}
}

// TestTransitionEffectsQuoteType verifies quote-type projects never emit payments
func TestTransitionEffectsQuoteType(t *testing.T) {
	prev := entity.Project{ID: "p1", Type: entity.ProjectTypeQuote, Status: entity.ProjectStatusInProduction, Budget: 800}
	next := prev
	next.Status = entity.ProjectStatusCompleted

	if effects := TransitionEffects(prev, next, time.Now()); effects != nil {
		t.Fatalf("expected no effects for quote-type project, got %d", len(effects))
	}
}
