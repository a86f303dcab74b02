// Package server streams world generation over websockets. A client sends
// one JSON request per connection, receives a progress frame per pipeline
// phase while the generator runs, and a summary frame at the end.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/websocket"

	"badlands/internal/config"
	"badlands/internal/generate"
	"badlands/internal/logger"
	"badlands/internal/world"
)

// MaxWorldSize caps requested sizes so a single request cannot exhaust the
// process.
const MaxWorldSize = 2048

const writeWait = 10 * time.Second

// Server handles generation requests.
type Server struct {
	log      *logger.Logger
	upgrader websocket.Upgrader
}

// New returns a server logging through log, which may be nil.
func New(log *logger.Logger) *Server {
	return &Server{
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Handler returns the HTTP surface: /health, /presets, and the /generate
// websocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/presets", s.handlePresets)
	mux.HandleFunc("/generate", s.handleGenerate)
	return mux
}

// request asks for one world. A non-positive size falls back to the
// default; the seed is used exactly as sent.
type request struct {
	Size      int               `json:"size"`
	Seed      int64             `json:"seed"`
	Preset    string            `json:"preset,omitempty"`
	Overrides map[string]string `json:"overrides,omitempty"`
}

type phaseMessage struct {
	Type      string  `json:"type"`
	Name      string  `json:"name"`
	ElapsedMS float64 `json:"elapsed_ms"`
}

type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

type summaryMessage struct {
	Type      string             `json:"type"`
	Size      int                `json:"size"`
	Seed      int64              `json:"seed"`
	Spawn     world.Coordinate   `json:"spawn"`
	Terrain   map[string]float64 `json:"terrain"`
	Contents  map[string]float64 `json:"contents"`
	ElapsedMS float64            `json:"elapsed_ms"`
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	var out []entry
	for _, p := range generate.Presets() {
		out = append(out, entry{Name: p.Name, Description: p.Description})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logf("upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	_, payload, err := conn.ReadMessage()
	if err != nil {
		return
	}
	var req request
	if err := json.Unmarshal(payload, &req); err != nil {
		s.fail(conn, fmt.Sprintf("malformed request: %v", err))
		return
	}

	cfg, err := s.buildConfig(&req)
	if err != nil {
		s.fail(conn, err.Error())
		return
	}
	g, err := cfg.Generator()
	if err != nil {
		s.fail(conn, err.Error())
		return
	}

	// OnPhase fires synchronously inside Generate, so frames go out in
	// pipeline order without extra locking.
	g.OnPhase = func(pt generate.PhaseTiming) {
		s.write(conn, phaseMessage{
			Type:      "phase",
			Name:      pt.Name,
			ElapsedMS: float64(pt.Elapsed.Microseconds()) / 1000,
		})
	}

	start := time.Now()
	res, err := g.Generate()
	if err != nil {
		s.fail(conn, err.Error())
		return
	}

	summary := summaryMessage{
		Type:      "summary",
		Size:      res.World.Size(),
		Seed:      res.Seed,
		Spawn:     res.Spawn,
		Terrain:   nameShares(world.TerrainPercentage(res.World)),
		Contents:  contentShares(world.ContentPercentage(res.World)),
		ElapsedMS: float64(time.Since(start).Microseconds()) / 1000,
	}
	if s.write(conn, summary) {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	}
	s.logf("generated %dx%d seed %d in %.1fms", summary.Size, summary.Size, summary.Seed, summary.ElapsedMS)
}

func (s *Server) buildConfig(req *request) (*config.Config, error) {
	size := req.Size
	if size <= 0 {
		size = config.DefaultSize
	}
	if size > MaxWorldSize {
		return nil, fmt.Errorf("size %d exceeds the maximum %d", size, MaxWorldSize)
	}
	cfg := config.Default(size, req.Seed)
	if req.Preset != "" {
		if err := cfg.Set("preset", req.Preset); err != nil {
			return nil, err
		}
	}
	keys := make([]string, 0, len(req.Overrides))
	for k := range req.Overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := cfg.Set(k, req.Overrides[k]); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// write sends one JSON frame, reporting whether it went out.
func (s *Server) write(conn *websocket.Conn, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		s.logf("marshal frame: %v", err)
		return false
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return false
	}
	return true
}

func (s *Server) fail(conn *websocket.Conn, msg string) {
	s.write(conn, errorMessage{Type: "error", Error: msg})
	frame := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "")
	conn.WriteControl(websocket.CloseMessage, frame, time.Now().Add(writeWait))
}

func (s *Server) logf(format string, v ...interface{}) {
	if s.log != nil {
		s.log.Infof(format, v...)
	}
}

func nameShares(shares map[world.TileType]float64) map[string]float64 {
	out := make(map[string]float64, len(shares))
	for t, share := range shares {
		out[t.String()] = share
	}
	return out
}

func contentShares(shares map[world.ContentKind]float64) map[string]float64 {
	out := make(map[string]float64, len(shares))
	for k, share := range shares {
		out[k.String()] = share
	}
	return out
}
