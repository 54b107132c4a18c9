package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gestio-app/gestio/internal/ledger/service"
	"github.com/gestio-app/gestio/internal/ledger/store"
	"github.com/gin-gonic/gin"
)

// SetupStore creates a pure in-memory record store (no persistence backend)
func SetupStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(nil, nil)
}

// SetupServices creates the full service set over an in-memory store
func SetupServices(t *testing.T) (*service.Services, *store.Store) {
	t.Helper()
	st := SetupStore(t)
	return service.NewServices(st), st
}

// SetupRouter creates a gin test router
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// DoRequest executes an HTTP request against the test router
func DoRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// DoRawRequest executes an HTTP request with a raw text body (CSV import)
func DoRawRequest(r *gin.Engine, method, path, body, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response body into a map
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}
