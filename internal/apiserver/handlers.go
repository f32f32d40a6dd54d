package apiserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/snic/snic/internal/comparisons"
	"github.com/snic/snic/internal/counting"
	"github.com/snic/snic/internal/gber"
	"github.com/snic/snic/internal/matchups"
	"github.com/snic/snic/internal/ranker"
	snicerrors "github.com/snic/snic/pkg/errors"
	"github.com/snic/snic/pkg/model"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch snicerrors.GetErrorCode(err) {
	case snicerrors.CodeInvalidBase, snicerrors.CodeInvalidInput:
		status = http.StatusBadRequest
	case snicerrors.CodeExternalRankerFailure:
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, map[string]string{"error": snicerrors.GetErrorMessage(err)})
}

func parseUint64Query(r *http.Request, key string) (uint64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, snicerrors.Wrap(snicerrors.CodeInvalidInput, "missing required query parameter "+key, nil)
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, snicerrors.Wrap(snicerrors.CodeInvalidInput, "query parameter "+key+" must be a non-negative integer", err)
	}
	return value, nil
}

// handleDecompose serves GET /api/v1/decompose?n=&base=, returning the
// GBER of n under base.
func (s *Server) handleDecompose(w http.ResponseWriter, r *http.Request) {
	_, end := startSpan(r, "decompose")
	defer end()

	n, err := parseUint64Query(r, "n")
	if err != nil {
		writeError(w, err)
		return
	}
	base, err := parseUint64Query(r, "base")
	if err != nil {
		writeError(w, err)
		return
	}

	d, err := gber.Decompose(n, base)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.DecompositionResponse{
		Base:            d.Base,
		ComponentPowers: d.ComponentPowers,
		Remainder:       d.Remainder,
		Value:           d.ToDecimal(),
	})
}

// handleMatchups serves GET /api/v1/matchups?n=&base=, streaming every
// matchup of the decomposed network as newline-delimited JSON.
func (s *Server) handleMatchups(w http.ResponseWriter, r *http.Request) {
	_, end := startSpan(r, "matchups")
	defer end()

	n, err := parseUint64Query(r, "n")
	if err != nil {
		writeError(w, err)
		return
	}
	base, err := parseUint64Query(r, "base")
	if err != nil {
		writeError(w, err)
		return
	}

	d, err := gber.Decompose(n, base)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)

	flusher, canFlush := w.(http.Flusher)
	encoder := json.NewEncoder(w)
	manager := matchups.NewManager(d)
	for {
		items, ok := manager.Next()
		if !ok {
			break
		}
		if err := encoder.Encode(model.Matchup{Items: items}); err != nil {
			s.logger.Warn("failed writing matchup to response: %v", err)
			return
		}
		if canFlush {
			flusher.Flush()
		}
	}
}

// handleRank serves POST /api/v1/rank. It takes a stream of ranked
// matchups (each ordered best to worst), expands each one through the
// expansion mould into directed comparisons (C6), then ranks the result
// via PageRank (C7).
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	_, end := startSpan(r, "rank")
	defer end()

	if r.Method != http.MethodPost {
		writeError(w, snicerrors.Wrap(snicerrors.CodeInvalidInput, "rank requires POST", nil))
		return
	}

	var req model.RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, snicerrors.Wrap(snicerrors.CodeInvalidInput, "malformed rank request body", err))
		return
	}

	damping, tolerance := 0.85, 1e-6
	if req.Damping != nil {
		damping = *req.Damping
	}
	if req.Tolerance != nil {
		tolerance = *req.Tolerance
	}

	cmps := comparisons.ExpandRankedMatchups(req.RankedMatchups)

	var allItems []uint64
	for _, matchup := range req.RankedMatchups {
		allItems = append(allItems, matchup...)
	}

	result, err := ranker.Rank(allItems, cmps, damping, tolerance)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.RankResponse{
		Scores:          result.Scores,
		AscendingByRank: result.AscendingByRank,
	})
}

// handleCount serves GET /api/v1/count?n=&base=, returning the closed-form
// matchups and comparisons counts for the decomposed network, without
// iterating either stream.
func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	_, end := startSpan(r, "count")
	defer end()

	n, err := parseUint64Query(r, "n")
	if err != nil {
		writeError(w, err)
		return
	}
	base, err := parseUint64Query(r, "base")
	if err != nil {
		writeError(w, err)
		return
	}

	d, err := gber.Decompose(n, base)
	if err != nil {
		writeError(w, err)
		return
	}

	var totalMatchups uint64
	for _, size := range d.StreamComponents() {
		totalMatchups += counting.MatchupsNumberFor(size, base)
	}

	writeJSON(w, http.StatusOK, model.CountResponse{
		N:                 n,
		Base:              base,
		MatchupsNumber:    totalMatchups,
		ComparisonsNumber: counting.ComparisonsNumberFor(totalMatchups, base),
	})
}
