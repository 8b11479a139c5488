package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RajatShinde3/callmate-ai-backend/internal/ai"
	"github.com/gin-gonic/gin"
)

type stubClient struct {
	res     ai.Result
	err     error
	enabled bool
	calls   int
}

func (s *stubClient) Enabled() bool { return s.enabled }

func (s *stubClient) Complete(_ context.Context, _ ai.Request) (ai.Result, error) {
	s.calls++
	return s.res, s.err
}

func newSuggestRouter(client ai.CompletionClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := Handlers{Service: NewService(client, 120)}
	r.POST("/api/suggest", h.Suggest)
	return r
}

func post(t *testing.T, r http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/suggest", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSuggest_BlankTextSkipsProvider(t *testing.T) {
	stub := &stubClient{enabled: true}
	r := newSuggestRouter(stub)

	for _, payload := range []string{`{}`, `{"text":""}`, `{"text":"  \t "}`} {
		w := post(t, r, payload)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("payload %s: expected 400, got %d", payload, w.Code)
		}
		var b map[string]any
		json.Unmarshal(w.Body.Bytes(), &b)
		if b["error"] != "Validation error" || b["message"] != "text is required" {
			t.Fatalf("payload %s: unexpected envelope %v", payload, b)
		}
	}
	if stub.calls != 0 {
		t.Fatalf("provider must not be called for blank text")
	}
}

func TestSuggest_FallbackMode(t *testing.T) {
	r := newSuggestRouter(ai.NewFallbackClient())

	w := post(t, r, `{"text":"My order is broken and I am frustrated"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var out Suggestion
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if out.AIEnabled {
		t.Fatalf("expected ai_enabled false in fallback mode")
	}
	if out.Suggestion != ai.FallbackMessage {
		t.Fatalf("expected fixed fallback suggestion, got %q", out.Suggestion)
	}
	if out.Confidence != ai.FallbackConfidence {
		t.Fatalf("expected fallback confidence, got %f", out.Confidence)
	}
	if out.Sentiment != "negative" {
		t.Fatalf("sentiment must still be computed locally, got %q", out.Sentiment)
	}
	if out.CallID != "demo" {
		t.Fatalf("expected default call_id, got %q", out.CallID)
	}
}

func TestSuggest_ProviderPath(t *testing.T) {
	stub := &stubClient{enabled: true, res: ai.Result{Text: "Offer a replacement.", CompletionTokens: 60}}
	r := newSuggestRouter(stub)

	w := post(t, r, `{"text":"Thanks, the support was great and very helpful","call_id":"call-42"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out Suggestion
	json.Unmarshal(w.Body.Bytes(), &out)
	if !out.AIEnabled {
		t.Fatalf("expected ai_enabled true")
	}
	if out.Suggestion != "Offer a replacement." {
		t.Fatalf("unexpected suggestion %q", out.Suggestion)
	}
	if out.Confidence != 0.5 { // 60 of 120 tokens
		t.Fatalf("expected confidence 0.5, got %f", out.Confidence)
	}
	if out.Sentiment != "positive" {
		t.Fatalf("expected positive sentiment, got %q", out.Sentiment)
	}
	if out.CallID != "call-42" {
		t.Fatalf("call_id must be echoed, got %q", out.CallID)
	}
	if out.LatencyMS < 0 {
		t.Fatalf("latency must be non-negative")
	}
}

func TestSuggest_ProviderFailure(t *testing.T) {
	stub := &stubClient{enabled: true, err: errors.New("boom")}
	r := newSuggestRouter(stub)

	w := post(t, r, `{"text":"hello"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var b map[string]any
	json.Unmarshal(w.Body.Bytes(), &b)
	if b["error"] != "AI service failed" {
		t.Fatalf("expected AI service failed envelope, got %v", b)
	}
}
