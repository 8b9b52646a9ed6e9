package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/shortlink/internal/tuitest"
)

type apiStub struct {
	mu       sync.Mutex
	received []string
}

func (s *apiStub) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/urls" {
			http.NotFound(w, r)
			return
		}
		var body struct {
			URL string `json:"url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		s.received = append(s.received, body.URL)
		s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"original_url": body.URL,
			"short_url":    "http://sho.rt/e2e",
		})
	})
}

func (s *apiStub) urls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.received...)
}

func TestShortenFromKeyboard(t *testing.T) {
	t.Parallel()

	stub := &apiStub{}
	api := httptest.NewServer(stub.handler(t))
	defer api.Close()

	binary := buildBinary(t, moduleDir(t))
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--no-mouse", "--api-url", api.URL},
		Width:   100,
		Height:  32,
		Steps: []tuitest.Step{
			tuitest.Type(time.Second, "https://example.com/some/long/path"),
			tuitest.Press(200*time.Millisecond, tuitest.KeyEnter),
			tuitest.Press(time.Second, tuitest.KeyCtrlC),
		},
		Timeout:        10 * time.Second,
		AllowInterrupt: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/some/long/path"}, stub.urls())
	text := rec.Text()
	assert.Contains(t, text, "http://sho.rt/e2e")
	assert.Contains(t, text, "Copiar")
}

func TestInvalidURLNeverReachesAPI(t *testing.T) {
	t.Parallel()

	stub := &apiStub{}
	api := httptest.NewServer(stub.handler(t))
	defer api.Close()

	binary := buildBinary(t, moduleDir(t))
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--no-mouse", "--api-url", api.URL},
		Width:   100,
		Height:  32,
		Steps: []tuitest.Step{
			tuitest.Type(time.Second, "example.com"),
			tuitest.Press(200*time.Millisecond, tuitest.KeyEnter),
			tuitest.Press(500*time.Millisecond, tuitest.KeyCtrlC),
		},
		Timeout:        10 * time.Second,
		AllowInterrupt: true,
	})
	require.NoError(t, err)

	assert.Empty(t, stub.urls())
	assert.Contains(t, rec.Text(), "Insira uma URL válida")
}

func TestPositionalURLSubmitsOnStart(t *testing.T) {
	t.Parallel()

	stub := &apiStub{}
	api := httptest.NewServer(stub.handler(t))
	defer api.Close()

	binary := buildBinary(t, moduleDir(t))
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--no-mouse", "--api-url", api.URL, "https://example.com/x"},
		Width:   100,
		Height:  32,
		Steps: []tuitest.Step{
			tuitest.Press(1500*time.Millisecond, tuitest.KeyCtrlC),
		},
		Timeout:        10 * time.Second,
		AllowInterrupt: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/x"}, stub.urls())
	assert.Contains(t, rec.Text(), "http://sho.rt/e2e")
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	name := "shortlink-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
