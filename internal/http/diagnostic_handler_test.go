package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ai-hunter/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRunner struct {
	html     string
	err      error
	calls    int
	lastLead domain.LeadProfile
}

func (s *stubRunner) Run(_ context.Context, lead domain.LeadProfile) (string, error) {
	s.calls++
	s.lastLead = lead
	return s.html, s.err
}

type stubLimiter struct {
	allow   bool
	lastKey string
}

func (s *stubLimiter) Allow(key string) bool {
	s.lastKey = key
	return s.allow
}

func validBody() string {
	return `{
		"name": "Joao Silva",
		"email": "joao@empresa.com",
		"sector": "Tecnologia/Software",
		"company_size": "11-50 funcionários",
		"role": "Sócio(a)/CEO/Fundador(a)",
		"main_pain": "Processos manuais e repetitivos",
		"digital_maturity": "Temos sistemas centralizados (CRM/ERP)",
		"investment_capacity": "Entre R$ 30.000 e R$ 100.000",
		"urgency": "Média - Próximos 6-12 meses"
	}`
}

func newTestRouter(runner *stubRunner, limiter *stubLimiter) *gin.Engine {
	logger := zap.NewNop()
	diagH := &DiagnosticHandler{logger: logger, diagnostics: runner}
	if limiter != nil {
		diagH.limiter = limiter
	}
	return NewRouter(logger, diagH, NewHealthHandler(logger, nil))
}

func postDiagnostic(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v2/diagnostico", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRunDiagnosticHappyPath(t *testing.T) {
	runner := &stubRunner{html: "<html>Joao Silva</html>"}
	router := newTestRouter(runner, nil)

	w := postDiagnostic(router, validBody())

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Fatalf("expected text/html response, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Joao Silva") {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
	if runner.calls != 1 || runner.lastLead.Email != "joao@empresa.com" {
		t.Fatalf("runner must receive the bound lead, got %+v", runner.lastLead)
	}
}

func TestRunDiagnosticInvalidPayload(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"json malformado", `{"name": `},
		{"sem email", strings.Replace(validBody(), `"email": "joao@empresa.com",`, "", 1)},
		{"email inválido", strings.Replace(validBody(), "joao@empresa.com", "não-é-email", 1)},
		{"sem campos obrigatórios", `{"email": "joao@empresa.com"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runner := &stubRunner{html: "<html></html>"}
			router := newTestRouter(runner, nil)

			w := postDiagnostic(router, tc.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("error body is not json: %v", err)
			}
			if body["detail"] == "" {
				t.Fatalf("expected detail field in error body, got %v", body)
			}
			if runner.calls != 0 {
				t.Fatal("runner must not be called for invalid payload")
			}
		})
	}
}

func TestRunDiagnosticRateLimited(t *testing.T) {
	runner := &stubRunner{html: "<html></html>"}
	limiter := &stubLimiter{allow: false}
	router := newTestRouter(runner, limiter)

	w := postDiagnostic(router, validBody())

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d: %s", w.Code, w.Body.String())
	}
	if limiter.lastKey != "joao@empresa.com" {
		t.Fatalf("limiter must be keyed by email, got %q", limiter.lastKey)
	}
	if runner.calls != 0 {
		t.Fatal("runner must not be called when rate limited")
	}
}

func TestRunDiagnosticPipelineFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("template quebrado")}
	router := newTestRouter(runner, nil)

	w := postDiagnostic(router, validBody())

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not json: %v", err)
	}
	if body["detail"] == "" {
		t.Fatalf("expected detail field in error body, got %v", body)
	}
	if strings.Contains(body["detail"], "template quebrado") {
		t.Fatal("internal error details must not leak to the client")
	}
}

func TestHealthEndpointsWithoutDatabase(t *testing.T) {
	router := newTestRouter(&stubRunner{}, nil)

	cases := []struct {
		path string
		want map[string]string
	}{
		{"/", map[string]string{"db_status": "disconnected", "version": "2.0.0"}},
		{"/health", map[string]string{"status": "healthy", "database": "disconnected", "version": "2.0.0"}},
		{"/test-db", map[string]string{"status": "no_connection"}},
		{"/db-info", map[string]string{"status": "disconnected"}},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("body is not json: %v", err)
			}
			for k, v := range tc.want {
				if body[k] != v {
					t.Fatalf("expected %s=%q, got %v", k, v, body[k])
				}
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(&stubRunner{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v2/diagnostico", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("expected permissive CORS header on preflight")
	}
}
