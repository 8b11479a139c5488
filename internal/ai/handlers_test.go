package ai

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubClient struct {
	res   Result
	err   error
	calls int
}

func (s *stubClient) Enabled() bool { return true }

func (s *stubClient) Complete(_ context.Context, _ Request) (Result, error) {
	s.calls++
	return s.res, s.err
}

func newAITestRouter(client CompletionClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandlers(client, rand.New(rand.NewSource(1)))
	r.POST("/api/ai/analyze", h.Analyze)
	r.POST("/api/ai/summarize", h.Summarize)
	r.POST("/api/ai/intent", h.Intent)
	r.POST("/api/ai/chat", h.Chat)
	r.POST("/api/chat", h.Chat)
	return r
}

func post(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func body(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", w.Body.String(), err)
	}
	return out
}

func TestAnalyze_RequiresText(t *testing.T) {
	r := newAITestRouter(&stubClient{})
	w := post(t, r, "/api/ai/analyze", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if body(t, w)["error"] != "Validation error" {
		t.Fatalf("expected validation envelope")
	}
}

func TestAnalyze_MockShape(t *testing.T) {
	r := newAITestRouter(&stubClient{})
	long := strings.Repeat("x", 150)
	w := post(t, r, "/api/ai/analyze", `{"text":"`+long+`","type":"billing"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	b := body(t, w)
	analysis := b["analysis"].(map[string]any)
	mood := analysis["sentiment"].(string)
	if mood != "positive" && mood != "negative" {
		t.Fatalf("unexpected mock sentiment %q", mood)
	}
	if !strings.Contains(analysis["summary"].(string), "billing") {
		t.Fatalf("summary must echo the analysis type")
	}
	echo := b["originalText"].(string)
	if len(echo) != 103 || !strings.HasSuffix(echo, "...") {
		t.Fatalf("expected 100-char echo with ellipsis, got %d chars", len(echo))
	}
}

func TestSummarize_RequiresTranscriptAndTruncates(t *testing.T) {
	r := newAITestRouter(&stubClient{})

	w := post(t, r, "/api/ai/summarize", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	w = post(t, r, "/api/ai/summarize", `{"transcript":"the customer talked a lot","maxLength":20}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	b := body(t, w)
	if got := b["summary"].(string); len(got) > 20 {
		t.Fatalf("summary exceeds maxLength: %d", len(got))
	}
	if b["originalLength"] != float64(len("the customer talked a lot")) {
		t.Fatalf("unexpected originalLength: %v", b["originalLength"])
	}
}

func TestIntent_RankedList(t *testing.T) {
	r := newAITestRouter(&stubClient{})

	w := post(t, r, "/api/ai/intent", `{"message":"where is my refund"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	b := body(t, w)
	all := b["allIntents"].([]any)
	if len(all) != 4 {
		t.Fatalf("expected 4 ranked intents, got %d", len(all))
	}
	top := b["topIntent"].(map[string]any)
	if top["name"] != "customer_support" {
		t.Fatalf("unexpected top intent: %v", top)
	}
	prev := 2.0
	for _, it := range all {
		conf := it.(map[string]any)["confidence"].(float64)
		if conf > prev {
			t.Fatalf("intents must be ranked by confidence")
		}
		prev = conf
	}
}

func TestChat_BlankMessageSkipsProvider(t *testing.T) {
	stub := &stubClient{}
	r := newAITestRouter(stub)

	for _, payload := range []string{`{}`, `{"message":""}`, `{"message":"   "}`} {
		w := post(t, r, "/api/ai/chat", payload)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("payload %s: expected 400, got %d", payload, w.Code)
		}
	}
	if stub.calls != 0 {
		t.Fatalf("provider must not be invoked for blank input, got %d calls", stub.calls)
	}
}

func TestChat_DelegatesAndShapesResponse(t *testing.T) {
	stub := &stubClient{res: Result{Text: "Happy to help.", LatencyMS: 12, CompletionTokens: 8}}
	r := newAITestRouter(stub)

	for _, path := range []string{"/api/ai/chat", "/api/chat"} {
		w := post(t, r, path, `{"message":"hello"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		b := body(t, w)
		if b["reply"] != "Happy to help." {
			t.Fatalf("%s: unexpected reply %v", path, b["reply"])
		}
		if b["ai_enabled"] != true {
			t.Fatalf("%s: expected ai_enabled true", path)
		}
		if !strings.HasPrefix(b["conversationId"].(string), "conv_") {
			t.Fatalf("%s: unexpected conversationId %v", path, b["conversationId"])
		}
	}
	if stub.calls != 2 {
		t.Fatalf("expected one provider call per request, got %d", stub.calls)
	}
}

func TestChat_ProviderFailure(t *testing.T) {
	stub := &stubClient{err: errors.New("upstream timeout")}
	r := newAITestRouter(stub)

	w := post(t, r, "/api/ai/chat", `{"message":"hello"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if body(t, w)["error"] != "AI service failed" {
		t.Fatalf("expected AI service failed envelope")
	}
}
