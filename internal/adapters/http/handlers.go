package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"svw.info/matchsticks/internal/domain"
	"svw.info/matchsticks/internal/ports"
	"svw.info/matchsticks/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
	mux.HandleFunc("/api/glyphs", h.handleGlyphs)
}

type errorResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResp{Error: msg})
}

func allow(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

// decode reads a JSON body; an empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// puzzleReq names a statement by text ("6+4=4") or by glyph names.
type puzzleReq struct {
	Text   string   `json:"text,omitempty"`
	Glyphs []string `json:"glyphs,omitempty"`
}

func (p puzzleReq) puzzle() *domain.Puzzle {
	return &domain.Puzzle{Text: p.Text, Glyphs: p.Glyphs}
}

// ---- Solve ----

type solveResp struct {
	Moves      []domain.Move `json:"moves"`
	DurationMs int64         `json:"durationMs"`
	Nodes      int           `json:"nodes"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req puzzleReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	moves, st, err := h.UC.Solve(r.Context(), req.puzzle())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if moves == nil {
		moves = []domain.Move{}
	}
	writeJSON(w, http.StatusOK, solveResp{Moves: moves, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Validate ----

type validateResp struct {
	OK      bool  `json:"ok"`
	Failing []int `json:"failing,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req puzzleReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	ok, failing, err := h.UC.Validate(r.Context(), req.puzzle())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Failing: failing})
}

// ---- Hint ----

type hintReq struct {
	puzzleReq
	Level string `json:"level,omitempty"`
}
type hintResp struct {
	Found bool         `json:"found"`
	Hint  *domain.Hint `json:"hint,omitempty"`
}

func parseLevel(s string) domain.HintLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "move":
		return domain.HintMove
	case "solution":
		return domain.HintSolution
	default:
		return domain.HintSource
	}
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req hintReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), req.puzzle(), parseLevel(req.Level))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp := hintResp{Found: ok}
	if ok {
		resp.Hint = &hh
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	DurationMs int64          `json:"durationMs"`
	Nodes      int            `json:"nodes"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}
	var req generateReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	diff, err := domain.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.Generate(r.Context(), seed, diff)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, generateResp{Puzzle: p, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Load / List / Glyphs ----

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	p, err := h.UC.Load(r.Context(), id)
	switch {
	case errors.Is(err, os.ErrNotExist):
		writeError(w, http.StatusNotFound, "puzzle not found: "+id)
		return
	case errors.Is(err, ports.ErrInvalidID):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if ps == nil {
		ps = []domain.PuzzleMeta{}
	}
	writeJSON(w, http.StatusOK, listResp{Puzzles: ps})
}

type glyphsResp struct {
	Glyphs []usecase.GlyphInfo `json:"glyphs"`
}

func (h *Handler) handleGlyphs(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	gs, err := h.UC.Glyphs()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, glyphsResp{Glyphs: gs})
}
