package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/jimorie/forbidden-lands-dice/internal/dice"
	"github.com/jimorie/forbidden-lands-dice/internal/modifier"
	"github.com/jimorie/forbidden-lands-dice/internal/session"
	"github.com/jimorie/forbidden-lands-dice/internal/table"
)

const (
	maxBody       = 1 << 16
	defaultTrials = 10000
	maxTrials     = 200000
)

var errBadInput = errors.New("bad input")

type rollReq struct {
	dice.Request
	Bonus string `json:"bonus,omitempty"` // "+1 d8" style modifier text
}

type rollResp struct {
	ID     string      `json:"id"`
	Result dice.Result `json:"result"`
}

type consumableReq struct {
	Name  string `json:"name"`
	Faces int    `json:"faces"`
}

type errResp struct {
	Err string `json:"err"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadInput), errors.Is(err, dice.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound), errors.Is(err, table.ErrUnknownPreset):
		return http.StatusNotFound
	case errors.Is(err, dice.ErrAlreadyPushed):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusOf(err), errResp{Err: err.Error()})
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadInput, err)
	}
	return nil
}

// author identifies the chat user behind a request.
func author(r *http.Request) string {
	if u := strings.TrimSpace(r.Header.Get("X-User")); u != "" {
		return u
	}
	if u := strings.TrimSpace(r.URL.Query().Get("user")); u != "" {
		return u
	}
	return "anonymous"
}

func (s *Server) handleRoll(w http.ResponseWriter, r *http.Request) {
	var in rollReq
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	req := modifier.Parse(in.Bonus).Apply(in.Request)
	id, res, err := s.svc.Roll(r.Context(), author(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rollResp{ID: id, Result: res})
}

func (s *Server) handleGetRoll(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, err := s.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rollResp{ID: id, Result: res})
}

func (s *Server) handleDiscardRoll(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Discard(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePush(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, err := s.svc.Push(r.Context(), author(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rollResp{ID: id, Result: res})
}

func (s *Server) handleConsumable(w http.ResponseWriter, r *http.Request) {
	var in consumableReq
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	out := s.svc.Consumable(r.Context(), author(r), in.Name, in.Faces)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"presets": s.tables.Settings().Presets()})
}

// handlePresetRoll rolls a named preset; ?bonus= adds bonus text such as
// "+1 d8" on top of the preset's own.
func (s *Server) handlePresetRoll(w http.ResponseWriter, r *http.Request) {
	req, err := s.tables.Settings().Request(mux.Vars(r)["name"], r.URL.Query().Get("bonus"))
	if err != nil {
		writeError(w, err)
		return
	}
	id, res, err := s.svc.Roll(r.Context(), author(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rollResp{ID: id, Result: res})
}

func parseInt(r *http.Request, key string, def int) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", errBadInput, key)
	}
	return v, nil
}

// handleSimulate runs a Monte Carlo estimate for a roll described by query
// params: base, skill, gear, bonus, goal, trials.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req dice.Request
	var err error
	if req.Base, err = parseInt(r, "base", 0); err != nil {
		writeError(w, err)
		return
	}
	if req.Skill, err = parseInt(r, "skill", 0); err != nil {
		writeError(w, err)
		return
	}
	if req.Gear, err = parseInt(r, "gear", 0); err != nil {
		writeError(w, err)
		return
	}
	trials, err := parseInt(r, "trials", defaultTrials)
	if err != nil {
		writeError(w, err)
		return
	}
	if trials <= 0 || trials > maxTrials {
		writeError(w, fmt.Errorf("%w: trials must be in [1,%d]", errBadInput, maxTrials))
		return
	}
	goal := dice.TrialGoal(r.URL.Query().Get("goal"))
	if goal == "" {
		goal = dice.GoalSwords
	}
	req = modifier.Parse(r.URL.Query().Get("bonus")).Apply(req)

	st, err := dice.RunMonteCarlo(req, goal, trials, s.rng)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
