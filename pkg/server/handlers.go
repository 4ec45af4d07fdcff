package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/wordnet/pkg/buildinfo"
	errs "github.com/matzehuels/wordnet/pkg/errors"
	"github.com/matzehuels/wordnet/pkg/outcast"
)

// maxBodyBytes bounds POST bodies.
const maxBodyBytes = 1 << 20

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Synset is one synset in a noun lookup.
type Synset struct {
	ID    int    `json:"id"`
	Nouns string `json:"nouns"`
}

// NounResponse is the body of GET /v1/nouns/{noun}.
type NounResponse struct {
	Noun    string   `json:"noun"`
	Synsets []Synset `json:"synsets"`
}

// DistanceResponse is the body of GET /v1/distance.
type DistanceResponse struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Distance int    `json:"distance"`
}

// SCAResponse is the body of GET /v1/sca.
type SCAResponse struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Ancestor string `json:"ancestor"`
}

// OutcastRequest is the body of POST /v1/outcast.
type OutcastRequest struct {
	Nouns []string `json:"nouns"`
}

// OutcastResponse is the result of POST /v1/outcast.
type OutcastResponse struct {
	Outcast string          `json:"outcast"`
	Scores  []outcast.Score `json:"scores"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleNoun(w http.ResponseWriter, r *http.Request) {
	noun := chi.URLParam(r, "noun")
	if err := errs.ValidateNoun(noun); err != nil {
		writeError(w, err)
		return
	}
	ids, err := s.lex.Synsets(noun)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := NounResponse{Noun: noun, Synsets: make([]Synset, 0, len(ids))}
	for _, id := range ids {
		text, err := s.lex.Synset(id)
		if err != nil {
			writeError(w, err)
			return
		}
		resp.Synsets = append(resp.Synsets, Synset{ID: id, Nouns: text})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDistance(w http.ResponseWriter, r *http.Request) {
	a, b, err := nounPair(r)
	if err != nil {
		writeError(w, err)
		return
	}
	d, err := s.lex.Distance(a, b)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DistanceResponse{A: a, B: b, Distance: d})
}

func (s *Server) handleSCA(w http.ResponseWriter, r *http.Request) {
	a, b, err := nounPair(r)
	if err != nil {
		writeError(w, err)
		return
	}
	anc, err := s.lex.SCA(a, b)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SCAResponse{A: a, B: b, Ancestor: anc})
}

func (s *Server) handleOutcast(w http.ResponseWriter, r *http.Request) {
	var req OutcastRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if req.Nouns == nil {
		writeError(w, errs.New(errs.ErrCodeNullInput, "nouns is required"))
		return
	}
	for _, n := range req.Nouns {
		if err := errs.ValidateNoun(n); err != nil {
			writeError(w, err)
			return
		}
	}

	res, err := s.outcast.Rank(r.Context(), req.Nouns)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OutcastResponse{Outcast: res.Outcast, Scores: res.Scores})
}

func nounPair(r *http.Request) (string, string, error) {
	q := r.URL.Query()
	a, b := q.Get("a"), q.Get("b")
	if err := errs.ValidateNoun(a); err != nil {
		return "", "", errs.New(errs.GetCode(err), "parameter a: %s", errs.UserMessage(err))
	}
	if err := errs.ValidateNoun(b); err != nil {
		return "", "", errs.New(errs.GetCode(err), "parameter b: %s", errs.UserMessage(err))
	}
	return a, b, nil
}

// statusOf maps an error code to an HTTP status.
func statusOf(err error) int {
	switch errs.GetCode(err) {
	case errs.ErrCodeNullInput, errs.ErrCodeEmptyInput, errs.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case errs.ErrCodeNotANoun:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := string(errs.GetCode(err))
	if code == "" {
		code = string(errs.ErrCodeInternal)
	}
	writeStatus(w, statusOf(err), code, errs.UserMessage(err))
}

func writeStatus(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
