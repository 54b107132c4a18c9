package service

import (
	"testing"
	"time"

	"github.com/gestio-app/gestio/internal/ledger/entity"
	"github.com/gestio-app/gestio/internal/ledger/store"
)

// TestSummarize verifies counters over a mixed ledger
func TestSummarize(t *testing.T) {
	st := store.New(nil, nil)
	dash := NewDashboardService(st)
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	st.AddClient(entity.Client{ID: "c1", Name: "Acme"})
	st.AddClient(entity.Client{ID: "c2", Name: "Beta"})

	st.AddProject(entity.Project{ID: "p1", Status: entity.ProjectStatusQuote, Budget: 100})
	st.AddProject(entity.Project{ID: "p2", Status: entity.ProjectStatusApproved, Budget: 1000})
	st.AddProject(entity.Project{ID: "p3", Status: entity.ProjectStatusInProduction, Budget: 2000})
	st.AddProject(entity.Project{ID: "p4", Status: entity.ProjectStatusCompleted, Budget: 3000})
	st.AddProject(entity.Project{ID: "p5", Status: entity.ProjectStatusDelivered, Budget: 4000})

	st.AddTransaction(entity.Transaction{ID: "t1", Type: entity.TransactionTypeInflow, Amount: 500, Date: now})
	st.AddTransaction(entity.Transaction{ID: "t2", Type: entity.TransactionTypeInflow, Amount: 300, Date: now.AddDate(0, -1, 0)}) // last month
	st.AddTransaction(entity.Transaction{ID: "t3", Type: entity.TransactionTypeOutflow, Amount: 200, Date: now})                  // outflow ignored

	st.AddProduct(entity.Product{ID: "low", CurrentStock: 2, MinStock: 5})
	st.AddProduct(entity.Product{ID: "edge", CurrentStock: 5, MinStock: 5}) // at threshold counts
	st.AddProduct(entity.Product{ID: "ok", CurrentStock: 50, MinStock: 5})

	s := dash.Summarize(now)
	if s.TotalClients != 2 {
		t.Fatalf("expected 2 clients, got %d", s.TotalClients)
	}
	if s.OpenProjects != 2 {
		t.Fatalf("expected 2 open projects, got %d", s.OpenProjects)
	}
	if s.PendingCollection != 3500 {
		t.Fatalf("expected pending collection 3500, got %v", s.PendingCollection)
	}
	if s.MonthInflow != 500 {
		t.Fatalf("expected month inflow 500, got %v", s.MonthInflow)
	}
	if s.LowStockProducts != 2 {
		t.Fatalf("expected 2 low-stock products, got %d", s.LowStockProducts)
	}
}

// TestSummarizeEmpty verifies zero values on a fresh ledger
func TestSummarizeEmpty(t *testing.T) {
	st := store.New(nil, nil)
	dash := NewDashboardService(st)

	s := dash.Summarize(time.Now())
	if s.TotalClients != 0 || s.OpenProjects != 0 || s.MonthInflow != 0 ||
		s.PendingCollection != 0 || s.LowStockProducts != 0 {
		t.Fatalf("expected zeroed summary, got %+v", s)
	}
	if len(s.RecentActivity) != 0 {
		t.Fatalf("expected empty activity, got %d items", len(s.RecentActivity))
	}
}

// TestRecentActivity verifies the 3+3 merge sorted by creation time, capped at 5
func TestRecentActivity(t *testing.T) {
	st := store.New(nil, nil)
	dash := NewDashboardService(st)
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		st.AddProject(entity.Project{
			ID:        "p" + string(rune('1'+i)),
			Title:     "Project",
			CreatedAt: base.Add(time.Duration(i*2) * time.Hour),
		})
	}
	for i := 0; i < 4; i++ {
		st.AddTransaction(entity.Transaction{
			ID:          "t" + string(rune('1'+i)),
			Description: "Payment",
			CreatedAt:   base.Add(time.Duration(i*2+1) * time.Hour),
		})
	}

	s := dash.Summarize(time.Now())
	if len(s.RecentActivity) != 5 {
		t.Fatalf("expected activity capped at 5, got %d", len(s.RecentActivity))
	}
	for i := 1; i < len(s.RecentActivity); i++ {
		if s.RecentActivity[i].CreatedAt.After(s.RecentActivity[i-1].CreatedAt) {
			t.Fatal("expected activity sorted newest first")
		}
	}
	// Oldest entries of each kind (p1, t1) never make the cut
	for _, item := range s.RecentActivity {
		if item.ID == "p1" || item.ID == "t1" {
			t.Fatalf("expected oldest records excluded, found %s", item.ID)
		}
	}
}
