package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dragonnestlite/assetgen/internal/client"
	"github.com/dragonnestlite/assetgen/internal/config"
	"github.com/dragonnestlite/assetgen/internal/storage"
)

// meshyFake is a scripted Meshy API. Submits answer with the id registered
// for the endpoint; status polls replay the scripted bodies, repeating the
// last one.
type meshyFake struct {
	srv *httptest.Server

	mu       sync.Mutex
	calls    int
	polls    map[string]int
	bodies   map[string]map[string]any
	submits  map[string]string
	statuses map[string][]string
	files    map[string]string
}

func newMeshyFake(t *testing.T) *meshyFake {
	t.Helper()
	f := &meshyFake{
		polls:    map[string]int{},
		bodies:   map[string]map[string]any{},
		submits:  map[string]string{},
		statuses: map[string][]string{},
		files:    map[string]string{},
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *meshyFake) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	if body, ok := f.files[r.URL.Path]; ok {
		_, _ = w.Write([]byte(body))
		return
	}

	switch r.Method {
	case http.MethodPost:
		id, ok := f.submits[r.URL.Path]
		if !ok {
			http.Error(w, `{"message":"unexpected submit"}`, http.StatusBadRequest)
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.bodies[r.URL.Path] = body
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprintf(w, `{"result":%q}`, id)
	case http.MethodGet:
		id := path.Base(r.URL.Path)
		script, ok := f.statuses[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		n := f.polls[id]
		f.polls[id] = n + 1
		if n >= len(script) {
			n = len(script) - 1
		}
		_, _ = w.Write([]byte(script[n]))
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// task scripts a job created through endpoint (e.g. "/v1/rigging").
func (f *meshyFake) task(endpoint, id string, statuses ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submits["/openapi"+endpoint] = id
	f.statuses[id] = statuses
}

func (f *meshyFake) file(p, content string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[p] = content
	return f.srv.URL + p
}

func (f *meshyFake) client() *client.MeshyClient {
	return client.NewMeshyClient(&config.MeshyConfig{APIKey: "msy_test", BaseURL: f.srv.URL + "/openapi"}, nil)
}

func (f *meshyFake) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *meshyFake) pollCount(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.polls[id]
}

func (f *meshyFake) body(endpoint string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies["/openapi"+endpoint]
}

func running() string {
	return `{"status":"IN_PROGRESS","progress":40}`
}

func succeeded(glb string) string {
	return fmt.Sprintf(`{"status":"SUCCEEDED","progress":100,"model_urls":{"glb":%q}}`, glb)
}

func failed(msg string) string {
	return fmt.Sprintf(`{"status":"FAILED","progress":0,"task_error":{"message":%q}}`, msg)
}

func rigged(glb, walk string) string {
	return fmt.Sprintf(`{"status":"SUCCEEDED","progress":100,"result":{"rigged_character_glb_url":%q,"basic_animations":{"walking_glb_url":%q}}}`, glb, walk)
}

// noSleep records requested sleeps without waiting.
type noSleep struct {
	mu     sync.Mutex
	waited []time.Duration
}

func (s *noSleep) sleep(_ context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waited = append(s.waited, d)
	return nil
}

func (s *noSleep) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.waited)
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core), logs
}

func newTestStore(t *testing.T) *storage.FileStore {
	t.Helper()
	return storage.NewFileStore(t.TempDir())
}

func containsAny(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
