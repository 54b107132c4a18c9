package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gestio-app/gestio/internal/ledger/entity"
	"github.com/gestio-app/gestio/internal/ledger/testutil"
	"github.com/gin-gonic/gin"
)

// TestCreateProjectAPI verifies creation, numbering and the deposit side effect
func TestCreateProjectAPI(t *testing.T) {
	r, _, st := setupAPI(t)

	w := testutil.DoRequest(r, "POST", "/api/v1/projects", gin.H{
		"title":  "Kitchen remodel",
		"type":   "sale",
		"status": "approved",
		"budget": 3000,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["number"].(float64) != 1 {
		t.Fatalf("expected project number 1, got %v", data["number"])
	}

	txs := st.Transactions()
	if len(txs) != 1 || txs[0].Amount != 1500 {
		t.Fatalf("expected 1500 deposit from active sale, got %+v", txs)
	}
}

// TestCreateProjectValidation verifies type is required and constrained
func TestCreateProjectValidation(t *testing.T) {
	r, _, _ := setupAPI(t)

	w := testutil.DoRequest(r, "POST", "/api/v1/projects", gin.H{
		"title": "No type",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing type, got %d", w.Code)
	}

	w = testutil.DoRequest(r, "POST", "/api/v1/projects", gin.H{
		"title":  "Bad status",
		"type":   "sale",
		"status": "shipped",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}
}

// TestCompleteProjectAPI verifies the final payment fires through the update endpoint
func TestCompleteProjectAPI(t *testing.T) {
	r, _, st := setupAPI(t)

	w := testutil.DoRequest(r, "POST", "/api/v1/projects", gin.H{
		"title":  "Wardrobe",
		"type":   "sale",
		"status": "in_production",
		"budget": 2000,
	})
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	id := data["id"].(string)

	w = testutil.DoRequest(r, "PUT", "/api/v1/projects/"+id, gin.H{"status": "completed"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	txs := st.Transactions()
	if len(txs) != 2 {
		t.Fatalf("expected deposit + final payment, got %d transactions", len(txs))
	}
	if txs[0].Category != entity.TransactionCategoryFinalPayment || txs[0].Amount != 1000 {
		t.Fatalf("unexpected final payment: %+v", txs[0])
	}

	// Second identical update must not duplicate the payment
	testutil.DoRequest(r, "PUT", "/api/v1/projects/"+id, gin.H{"status": "completed"})
	if len(st.Transactions()) != 2 {
		t.Fatalf("expected no duplicate payment, got %d transactions", len(st.Transactions()))
	}
}

// TestDeleteProjectAPI verifies the cascade through the delete endpoint
func TestDeleteProjectAPI(t *testing.T) {
	r, _, st := setupAPI(t)

	w := testutil.DoRequest(r, "POST", "/api/v1/projects", gin.H{
		"title":  "Short-lived",
		"type":   "sale",
		"status": "approved",
		"budget": 1000,
	})
	id := testutil.ParseResponse(w)["data"].(map[string]interface{})["id"].(string)

	w = testutil.DoRequest(r, "DELETE", "/api/v1/projects/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(st.Transactions()) != 0 {
		t.Fatalf("expected cascaded transaction cleanup, got %d", len(st.Transactions()))
	}

	w = testutil.DoRequest(r, "GET", "/api/v1/projects/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

// TestExportImportClientsAPI verifies the CSV endpoints end to end
func TestExportImportClientsAPI(t *testing.T) {
	r, _, _ := setupAPI(t)

	w := testutil.DoRequest(r, "POST", "/api/v1/clients", gin.H{
		"name": "Maria Silva",
		"type": "individual",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	w = testutil.DoRequest(r, "GET", "/api/v1/export/clients", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected text/csv content type, got %q", ct)
	}
	csv := w.Body.String()
	if !strings.Contains(csv, "Maria Silva") {
		t.Fatalf("expected exported client in CSV, got %q", csv)
	}

	// Import the export into a fresh API
	r2, _, st2 := setupAPI(t)
	w = testutil.DoRawRequest(r2, "POST", "/api/v1/import/clients", csv, "text/csv")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if st2.CountClients() != 1 {
		t.Fatalf("expected 1 client after import, got %d", st2.CountClients())
	}
}

// TestDashboardAPI verifies the summary endpoint shape
func TestDashboardAPI(t *testing.T) {
	r, _, _ := setupAPI(t)

	testutil.DoRequest(r, "POST", "/api/v1/clients", gin.H{"name": "Acme", "type": "organization"})
	testutil.DoRequest(r, "POST", "/api/v1/projects", gin.H{
		"title": "Shelving", "type": "sale", "status": "approved", "budget": 1000,
	})

	w := testutil.DoRequest(r, "GET", "/api/v1/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["total_clients"].(float64) != 1 {
		t.Fatalf("expected 1 client, got %v", data["total_clients"])
	}
	if data["open_projects"].(float64) != 1 {
		t.Fatalf("expected 1 open project, got %v", data["open_projects"])
	}
	if data["month_inflow"].(float64) != 500 {
		t.Fatalf("expected month inflow 500 from deposit, got %v", data["month_inflow"])
	}
}
