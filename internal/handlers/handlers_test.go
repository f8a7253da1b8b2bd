package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/services"
	"github.com/SscSPs/ledgerbook/internal/handlers"
	"github.com/SscSPs/ledgerbook/internal/platform/config"
	"github.com/SscSPs/ledgerbook/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details"`
	Count   int             `json:"count"`
}

func newRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	container := services.NewServiceContainer(memory.NewRepositoryProvider(memory.NewStore()))
	handlers.RegisterRoutes(r, cfg, container)
	return r
}

type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.router = newRouter(&config.Config{})
}

func (suite *HandlersTestSuite) do(method, path, body string) (*httptest.ResponseRecorder, envelope) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (suite *HandlersTestSuite) TestIncomeLifecycle() {
	w, env := suite.do(http.MethodPost, "/api/v1/incomes", `{"amount": 5500, "source": "Consulting", "receivedAt": "2024-01-10"}`)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID     int64  `json:"id"`
		Amount string `json:"amount"`
		Source string `json:"source"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &created))
	suite.Equal(int64(1), created.ID)
	suite.Equal("5500", created.Amount)

	w, env = suite.do(http.MethodPatch, "/api/v1/incomes/1", `{"notes": "Q1 retainer"}`)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Contains(string(env.Data), `"notes":"Q1 retainer"`)

	w, _ = suite.do(http.MethodDelete, "/api/v1/incomes/1", "")
	suite.Equal(http.StatusNoContent, w.Code)
	suite.Zero(w.Body.Len())

	w, env = suite.do(http.MethodGet, "/api/v1/incomes/1", "")
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Resource not found", env.Error)

	w, _ = suite.do(http.MethodDelete, "/api/v1/incomes/1", "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestValidationEnvelope() {
	w, env := suite.do(http.MethodPost, "/api/v1/invoices", `{"client": "Acme", "amount": 0}`)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Validation failed", env.Error)

	var issues []struct {
		Path    string `json:"path"`
		Message string `json:"message"`
	}
	suite.Require().NoError(json.Unmarshal(env.Details, &issues))
	paths := make([]string, len(issues))
	for i, is := range issues {
		paths[i] = is.Path
	}
	suite.Contains(paths, "number")
	suite.Contains(paths, "amount")
	suite.Contains(paths, "issuedAt")
}

func (suite *HandlersTestSuite) TestTransportErrors() {
	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		status  int
		message string
	}{
		{"malformed json", http.MethodPost, "/api/v1/expenses", `{"amount":`, http.StatusBadRequest, "Request body must be valid JSON"},
		{"trailing data", http.MethodPost, "/api/v1/expenses", `{} {}`, http.StatusBadRequest, "Request body must be valid JSON"},
		{"non numeric id", http.MethodGet, "/api/v1/expenses/abc", "", http.StatusBadRequest, "Invalid identifier provided"},
		{"zero id", http.MethodDelete, "/api/v1/credits/0", "", http.StatusBadRequest, "Invalid identifier provided"},
		{"negative id", http.MethodPut, "/api/v1/payments/-3", `{"amount": 1}`, http.StatusBadRequest, "Invalid identifier provided"},
		{"empty update", http.MethodPut, "/api/v1/invoices/1", `{}`, http.StatusBadRequest, "Validation failed"},
		{"non object", http.MethodPost, "/api/v1/credits", `[1, 2]`, http.StatusBadRequest, "Validation failed"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w, env := suite.do(tt.method, tt.path, tt.body)
			suite.Equal(tt.status, w.Code, w.Body.String())
			suite.Equal(tt.message, env.Error)
		})
	}
}

func (suite *HandlersTestSuite) TestRelationsAndConflicts() {
	invoice := `{"number": "INV-1", "client": "Acme", "amount": "100.00", "issuedAt": "2024-01-01", "dueAt": "2024-01-31"}`
	w, _ := suite.do(http.MethodPost, "/api/v1/invoices", invoice)
	suite.Require().Equal(http.StatusCreated, w.Code)

	w, env := suite.do(http.MethodPost, "/api/v1/invoices", invoice)
	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("Resource conflict", env.Error)

	w, env = suite.do(http.MethodPost, "/api/v1/payments", `{"amount": 10, "method": "CASH", "receivedAt": "2024-01-05", "invoiceId": 99}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid relation reference", env.Error)

	w, _ = suite.do(http.MethodPost, "/api/v1/payments", `{"amount": 10, "method": "CASH", "receivedAt": "2024-01-05", "invoiceId": 1}`)
	suite.Equal(http.StatusCreated, w.Code)

	w, env = suite.do(http.MethodGet, "/api/v1/payments", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(string(env.Data), `"invoiceId":1`)
}

func (suite *HandlersTestSuite) TestEmptyListIsArray() {
	w, _ := suite.do(http.MethodGet, "/api/v1/credits", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"data": []}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestDictionary() {
	w, env := suite.do(http.MethodGet, "/api/v1/dictionary", "")

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("public, max-age=120, stale-while-revalidate=86400", w.Header().Get("Cache-Control"))
	suite.Positive(env.Count)

	var entries []map[string]any
	suite.Require().NoError(json.Unmarshal(env.Data, &entries))
	suite.Len(entries, env.Count)
}

func (suite *HandlersTestSuite) TestHealthAndMetrics() {
	w, _ := suite.do(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())

	suite.do(http.MethodGet, "/api/v1/expenses", "")
	w, _ = suite.do(http.MethodGet, "/metrics", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "ledgerbook_entity_operations_total")
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func TestAPIRequiresTokenWhenSecretSet(t *testing.T) {
	const secret = "test-secret"
	router := newRouter(&config.Config{JWTSecret: secret, JWTIssuer: "ledgerbook"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    "ledgerbook",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Health stays public.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
