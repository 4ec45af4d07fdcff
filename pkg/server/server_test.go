package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/wordnet/pkg/config"
	"github.com/matzehuels/wordnet/pkg/observability"
	"github.com/matzehuels/wordnet/pkg/wordnet"
)

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	testdata := filepath.Join("..", "wordnet", "testdata")
	wn, err := wordnet.Open(context.Background(),
		filepath.Join(testdata, "synsets.txt"),
		filepath.Join(testdata, "hypernyms.txt"))
	require.NoError(t, err)

	opts = append([]Option{WithLogger(log.New(io.Discard))}, opts...)
	s, err := New(wn, opts...)
	require.NoError(t, err)
	return s
}

func do(t *testing.T, s *Server, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func TestNewNil(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[HealthResponse](t, w).Status)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestNoun(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodGet, "/v1/nouns/horse", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[NounResponse](t, w)
	assert.Equal(t, "horse", resp.Noun)
	assert.Equal(t, []Synset{
		{ID: 9, Nouns: "horse Equus_caballus"},
		{ID: 18, Nouns: "horse buck sawhorse"},
	}, resp.Synsets)

	w = do(t, s, http.MethodGet, "/v1/nouns/unicorn", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_A_NOUN", decode[ErrorResponse](t, w).Code)
}

func TestDistanceAndSCA(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/v1/distance?a=horse&b=cat", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, DistanceResponse{A: "horse", B: "cat", Distance: 4}, decode[DistanceResponse](t, w))

	w = do(t, s, http.MethodGet, "/v1/sca?a=horse&b=zebra", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "equine equid", decode[SCAResponse](t, w).Ancestor)
}

func TestErrorStatus(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
		code   string
	}{
		{"missing param", http.MethodGet, "/v1/distance?a=horse", "", http.StatusBadRequest, "NULL_INPUT"},
		{"comma in noun", http.MethodGet, "/v1/sca?a=horse&b=a,b", "", http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown noun", http.MethodGet, "/v1/distance?a=horse&b=unicorn", "", http.StatusNotFound, "NOT_A_NOUN"},
		{"bad json", http.MethodPost, "/v1/outcast", "{", http.StatusBadRequest, "INVALID_INPUT"},
		{"no nouns", http.MethodPost, "/v1/outcast", "{}", http.StatusBadRequest, "NULL_INPUT"},
		{"empty nouns", http.MethodPost, "/v1/outcast", `{"nouns": []}`, http.StatusBadRequest, "EMPTY_INPUT"},
		{"unknown route", http.MethodGet, "/v2/nothing", "", http.StatusNotFound, "NOT_FOUND"},
		{"wrong method", http.MethodGet, "/v1/outcast", "", http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, tt.method, tt.target, strings.NewReader(tt.body))
			assert.Equal(t, tt.status, w.Code)
			resp := decode[ErrorResponse](t, w)
			assert.Equal(t, tt.code, resp.Code)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestOutcast(t *testing.T) {
	s := newTestServer(t, WithParallelism(2))

	body, _ := json.Marshal(OutcastRequest{Nouns: []string{"horse", "zebra", "cat", "oak"}})
	w := do(t, s, http.MethodPost, "/v1/outcast", bytes.NewReader(body))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[OutcastResponse](t, w)
	assert.Equal(t, "oak", resp.Outcast)
	require.Len(t, resp.Scores, 4)
	assert.Equal(t, 21, resp.Scores[3].Sum)
}

type queryOps struct {
	mu  sync.Mutex
	ops []string
}

func (q *queryOps) OnQuery(op string, _ time.Duration, _ error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ops = append(q.ops, op)
}

func (q *queryOps) count(op string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := 0
	for _, o := range q.ops {
		if o == op {
			n++
		}
	}
	return n
}

func TestOutcastQueryEvent(t *testing.T) {
	s := newTestServer(t)
	q := &queryOps{}
	observability.SetQueryHooks(q)
	t.Cleanup(observability.Reset)

	body, _ := json.Marshal(OutcastRequest{Nouns: []string{"entity", "physical_entity", "abstraction"}})
	w := do(t, s, http.MethodPost, "/v1/outcast", bytes.NewReader(body))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "physical_entity", decode[OutcastResponse](t, w).Outcast)
	assert.Equal(t, 1, q.count(observability.OpOutcast))
}

func TestNilLogger(t *testing.T) {
	s := newTestServer(t, WithLogger(nil))
	w := do(t, s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDEcho(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))

	a := do(t, s, http.MethodGet, "/healthz", nil).Header().Get(HeaderRequestID)
	b := do(t, s, http.MethodGet, "/healthz", nil).Header().Get(HeaderRequestID)
	assert.NotEqual(t, a, b)
}

func TestMetricsRoute(t *testing.T) {
	s := newTestServer(t, WithMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "metrics")
	})))
	w := do(t, s, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "metrics", w.Body.String())

	w = do(t, newTestServer(t), http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type recordingHooks struct {
	mu     sync.Mutex
	routes []string
	status []int
}

func (h *recordingHooks) OnResponse(_ context.Context, method, route string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.routes = append(h.routes, method+" "+route)
	h.status = append(h.status, status)
}

func TestHTTPHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetHTTPHooks(h)
	t.Cleanup(observability.Reset)

	s := newTestServer(t)
	do(t, s, http.MethodGet, "/v1/nouns/cat", nil)
	do(t, s, http.MethodGet, "/v1/nouns/unicorn", nil)

	h.mu.Lock()
	defer h.mu.Unlock()
	assert.Equal(t, []string{"GET /v1/nouns/{noun}", "GET /v1/nouns/{noun}"}, h.routes)
	assert.Equal(t, []int{http.StatusOK, http.StatusNotFound}, h.status)
}

func TestListenAndServeShutdown(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- s.ListenAndServe(ctx, config.Server{Addr: "127.0.0.1:0"})
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
