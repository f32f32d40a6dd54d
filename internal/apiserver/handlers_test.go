package apiserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snic/snic/pkg/model"
	"github.com/snic/snic/pkg/utils"
)

func newTestServer() *Server {
	return NewServer(":0", utils.NewDefaultLogger(utils.LevelError, io.Discard))
}

func TestHandleDecompose(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/decompose?n=7&base=3", nil)
	rec := httptest.NewRecorder()

	s.handleDecompose(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.DecompositionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []uint8{1, 1}, resp.ComponentPowers)
	assert.Equal(t, uint64(1), resp.Remainder)
	assert.Equal(t, uint64(7), resp.Value)
}

func TestHandleDecompose_InvalidBase(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/decompose?n=7&base=1", nil)
	rec := httptest.NewRecorder()

	s.handleDecompose(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDecompose_MissingParam(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/decompose?n=7", nil)
	rec := httptest.NewRecorder()

	s.handleDecompose(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMatchups_StreamsNDJSON(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matchups?n=7&base=3", nil)
	rec := httptest.NewRecorder()

	s.handleMatchups(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/x-ndjson", rec.Header().Get("Content-Type"))

	var matchup model.Matchup
	dec := json.NewDecoder(bytes.NewReader(rec.Body.Bytes()))
	count := 0
	for dec.More() {
		require.NoError(t, dec.Decode(&matchup))
		count++
	}
	assert.Greater(t, count, 0)
}

func TestHandleCount(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/count?n=256&base=2", nil)
	rec := httptest.NewRecorder()

	s.handleCount(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.CountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, resp.MatchupsNumber*1, resp.ComparisonsNumber)
}

func TestHandleRank(t *testing.T) {
	s := newTestServer()
	body, err := json.Marshal(model.RankRequest{
		RankedMatchups: [][]uint64{{1, 2, 3}},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rank", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleRank(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.RankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.AscendingByRank, 3)
	// Item 1 won every comparison the matchup implies, so it never
	// accrues incoming-edge rank and sorts first, ascending by score.
	assert.Equal(t, uint64(1), resp.AscendingByRank[0])
	assert.Equal(t, uint64(3), resp.AscendingByRank[len(resp.AscendingByRank)-1])
}

func TestHandleRank_RejectsGet(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rank", nil)
	rec := httptest.NewRecorder()

	s.handleRank(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealthz(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	s.handleHealthz(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
