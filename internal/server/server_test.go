package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/generate"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	var frame map[string]any
	require.NoError(t, json.Unmarshal(payload, &frame))
	return frame
}

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(New(nil).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestPresets(t *testing.T) {
	ts := httptest.NewServer(New(nil).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/presets")
	require.NoError(t, err)
	defer resp.Body.Close()

	var entries []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Contains(t, names, "default")
	assert.Contains(t, names, "volcanic")
}

func TestGenerateStreamsPhasesThenSummary(t *testing.T) {
	ts := httptest.NewServer(New(nil).Handler())
	defer ts.Close()
	conn := dial(t, ts)

	require.NoError(t, conn.WriteJSON(map[string]any{"size": 120, "seed": 5}))

	var phases []string
	var summary map[string]any
	for summary == nil {
		frame := readFrame(t, conn)
		switch frame["type"] {
		case "phase":
			phases = append(phases, frame["name"].(string))
		case "summary":
			summary = frame
		default:
			t.Fatalf("unexpected frame %v", frame)
		}
	}

	assert.Contains(t, phases, "elevation")
	assert.Contains(t, phases, "terrain")
	assert.Contains(t, phases, "lava")
	assert.Equal(t, float64(120), summary["size"])
	assert.Equal(t, float64(5), summary["seed"])

	terrain, ok := summary["terrain"].(map[string]any)
	require.True(t, ok)
	total := 0.0
	for _, share := range terrain {
		total += share.(float64)
	}
	assert.InDelta(t, 1.0, total, 1e-9, "terrain shares sum to one")
}

func TestGenerateAppliesOverrides(t *testing.T) {
	ts := httptest.NewServer(New(nil).Handler())
	defer ts.Close()
	conn := dial(t, ts)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"size": 120,
		"seed": 5,
		"overrides": map[string]string{
			"order":             "lava",
			"lava.spawn_points": "0",
		},
	}))

	var summary map[string]any
	for summary == nil {
		frame := readFrame(t, conn)
		if frame["type"] == "summary" {
			summary = frame
		}
	}
	terrain := summary["terrain"].(map[string]any)
	_, hasLava := terrain["lava"]
	assert.False(t, hasLava, "zero spawn points must leave no lava")
	contents := summary["contents"].(map[string]any)
	assert.InDelta(t, 1.0, contents["none"].(float64), 1e-9, "lava-only order places no content")
}

func TestGenerateRejectsMalformedRequest(t *testing.T) {
	ts := httptest.NewServer(New(nil).Handler())
	defer ts.Close()
	conn := dial(t, ts)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame["type"])
	assert.Contains(t, frame["error"], "malformed request")

	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "connection closes after the error frame")
}

func TestGenerateRejectsUnknownOverride(t *testing.T) {
	ts := httptest.NewServer(New(nil).Handler())
	defer ts.Close()
	conn := dial(t, ts)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"size":      120,
		"overrides": map[string]string{"climate": "dry"},
	}))

	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame["type"])
	assert.Contains(t, frame["error"], "unknown key")
}

func TestGenerateRejectsOversizedWorld(t *testing.T) {
	ts := httptest.NewServer(New(nil).Handler())
	defer ts.Close()
	conn := dial(t, ts)

	require.NoError(t, conn.WriteJSON(map[string]any{"size": MaxWorldSize + 1}))

	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame["type"])
	assert.Contains(t, frame["error"], "maximum")
}
