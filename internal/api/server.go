// Package api serves Numbers sessions as JSON over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-numbers/internal/games/numbers/boards"
	"github.com/vovakirdan/tui-numbers/internal/games/numbers/core"
	"github.com/vovakirdan/tui-numbers/internal/storage"
)

// Variant names recorded with results, matching the TUI variants.
const (
	gameWrap    = "numbers"
	gameBounded = "numbers_bounded"
)

// maxBodyBytes caps request bodies. A snapshot of core.MaxSnapshotTiles
// tiles fits well inside it.
const maxBodyBytes = 256 << 10

// Config holds optional server dependencies.
type Config struct {
	Loader  *boards.Loader // Nil serves built-in presets only
	Results *storage.Store // Nil disables result recording
	Logger  *log.Logger    // Nil discards request logs
	Timeout time.Duration  // Per-request handler timeout
}

// Server bundles the router, session store and dependencies.
type Server struct {
	r       *chi.Mux
	store   Store
	loader  *boards.Loader
	results *storage.Store
	logger  *log.Logger
}

// New constructs a Server, installs middleware and registers routes.
func New(st Store, cfg Config) *Server {
	if cfg.Loader == nil {
		cfg.Loader = boards.NewLoader("")
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	s := &Server{
		r:       chi.NewRouter(),
		store:   st,
		loader:  cfg.Loader,
		results: cfg.Results,
		logger:  cfg.Logger,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(s.requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(cfg.Timeout))
	s.r.Use(chimw.RequestSize(maxBodyBytes))
	s.r.Use(jsonContentType)

	s.r.Get("/health", s.handleHealth)
	s.r.Get("/boards", s.handleBoards)
	s.r.Get("/results", s.handleResults)

	s.r.Route("/games", func(r chi.Router) {
		r.Post("/", s.handleNewGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetGame)
			r.Delete("/", s.handleDeleteGame)
			r.Get("/rows", s.handleRows)
			r.Get("/hints", s.handleHints)
			r.Post("/activate", s.handleActivate)
			r.Post("/undo", s.handleUndo)
			r.Get("/snapshot", s.handleGetSnapshot)
			r.Put("/snapshot", s.handlePutSnapshot)
		})
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	return s
}

// Router exposes the router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// writeBodyError reports a request body that could not be decoded.
func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "body_too_large")
		return
	}
	writeError(w, http.StatusBadRequest, "bad_json")
}

// session resolves the {id} URL parameter, writing a 404 when unknown.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	return sess, true
}

// record saves a finished session once.
func (s *Server) record(sess *Session, b *core.Board) {
	if s.results == nil || !b.Status().Terminal() || !sess.markRecorded() {
		return
	}
	if _, err := s.results.SaveResult(sess.GameID, b.Status().String(), b.Moves(), b.Len()); err != nil {
		s.logger.Warn("could not save result", "session", sess.ID, "error", err)
	}
}

// -------------------------------- routes -----------------------------------

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "sessions": s.store.Len()})
}

type boardInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	EdgePolicy  string `json:"edge_policy,omitempty"`
	Tiles       int    `json:"tiles"`
}

func (s *Server) handleBoards(w http.ResponseWriter, r *http.Request) {
	presets, err := s.loader.LoadAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}
	out := make([]boardInfo, len(presets))
	for i, p := range presets {
		out[i] = boardInfo{ID: p.ID, Name: p.Name, Description: p.Description, EdgePolicy: p.EdgePolicy, Tiles: len(p.Tiles)}
	}
	writeJSON(w, http.StatusOK, out)
}

type resultView struct {
	ID        int64     `json:"id"`
	Game      string    `json:"game"`
	Outcome   string    `json:"outcome"`
	Moves     int       `json:"moves"`
	Tiles     int       `json:"tiles"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	out := []resultView{}
	if s.results != nil {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		results, err := s.results.RecentResults(r.URL.Query().Get("game"), limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "query_failed")
			return
		}
		for _, res := range results {
			out = append(out, resultView{ID: res.ID, Game: res.GameID, Outcome: res.Outcome, Moves: res.Moves, Tiles: res.Tiles, CreatedAt: res.CreatedAt})
		}
	}
	writeJSON(w, http.StatusOK, out)
}

type newGameReq struct {
	Board      string `json:"board"`
	EdgePolicy string `json:"edge_policy"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeBodyError(w, err)
		return
	}

	preset, err := s.loader.LoadByID(req.Board)
	if errors.Is(err, boards.ErrNotFound) {
		writeError(w, http.StatusBadRequest, "unknown_board")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}

	var opts []core.Option
	if req.EdgePolicy != "" {
		p, err := core.ParseEdgePolicy(req.EdgePolicy)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_edge_policy")
			return
		}
		opts = append(opts, core.WithEdgePolicy(p))
	}

	b, err := preset.NewBoard(opts...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "bad_preset")
		return
	}

	gameID := gameWrap
	if b.EdgePolicy() == core.EdgeRowBounded {
		gameID = gameBounded
	}
	sess := NewSession(gameID, preset.ID, b)
	if err := s.store.Save(r.Context(), sess); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.logger.Info("session created", "session", sess.ID, "board", preset.ID, "edge_policy", b.EdgePolicy())

	var v stateView
	sess.Do(func(b *core.Board) { v = newStateView(sess, b) })
	writeJSON(w, http.StatusCreated, v)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var v stateView
	sess.Do(func(b *core.Board) { v = newStateView(sess, b) })
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRows(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var v rowsView
	sess.Do(func(b *core.Board) { v = newRowsView(sess, b) })
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleHints(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var hints []int
	sess.Do(func(b *core.Board) { hints = nonNil(b.Hints()) })
	writeJSON(w, http.StatusOK, map[string][]int{"hints": hints})
}

type activateReq struct {
	Index *int `json:"index"`
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req activateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBodyError(w, err)
		return
	}
	if req.Index == nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var v activateView
	sess.Do(func(b *core.Board) {
		res := b.Activate(*req.Index)
		s.record(sess, b)
		v = activateView{
			State:   newStateView(sess, b),
			Outcome: res.Outcome.String(),
			Grown:   res.Grown,
		}
		if res.Outcome == core.OutcomeMatched {
			v.Pair = res.Pair[:]
		}
	})
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var v struct {
		State  stateView `json:"state"`
		Undone bool      `json:"undone"`
	}
	sess.Do(func(b *core.Board) {
		v.Undone = b.StepBack()
		v.State = newStateView(sess, b)
	})
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var snap core.Snapshot
	sess.Do(func(b *core.Board) { snap = b.Serialize() })
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handlePutSnapshot(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var snap core.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		writeBodyError(w, err)
		return
	}

	var (
		v       stateView
		restErr error
	)
	sess.Do(func(b *core.Board) {
		if restErr = b.RestoreFrom(snap); restErr != nil {
			return
		}
		b.Evaluate()
		s.record(sess, b)
		v = newStateView(sess, b)
	})
	if restErr != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_snapshot")
		return
	}
	writeJSON(w, http.StatusOK, v)
}
