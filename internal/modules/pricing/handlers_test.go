package pricing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/cardpricer/internal/domain"
)

type fakeRecorder struct {
	records int
	fail    bool
}

func (f *fakeRecorder) Record(card domain.CardQuery, query string, result domain.PriceResult) error {
	f.records++
	if f.fail {
		return assert.AnError
	}
	return nil
}

func newTestHandler(src Source, recorder Recorder) *Handler {
	resolver := NewResolver([]Source{src}, time.Second, zerolog.Nop())
	return NewHandler(resolver, recorder, zerolog.Nop())
}

func TestHandleResolvePrice_Success(t *testing.T) {
	src := &stubSource{name: "live-listings", result: found(domain.SourceLiveListings, 11.00)}
	handler := newTestHandler(src, nil)

	body := `{"player":"Connor Bedard","sport":"hockey","year":"2023-24"}`
	req := httptest.NewRequest(http.MethodPost, "/api/price", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleResolvePrice(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.PriceResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.True(t, result.Found)
	assert.Equal(t, 11.00, result.Price)
}

func TestHandleResolvePrice_InvalidBody(t *testing.T) {
	handler := newTestHandler(&stubSource{name: "x", err: ErrNoData}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/price", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.HandleResolvePrice(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleResolvePrice_MissingPlayer(t *testing.T) {
	handler := newTestHandler(&stubSource{name: "x", err: ErrNoData}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/price", strings.NewReader(`{"year":"2024"}`))
	rec := httptest.NewRecorder()

	handler.HandleResolvePrice(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleResolvePrice_NotFoundIsStillOK(t *testing.T) {
	// A miss is a normal outcome, not an HTTP error.
	handler := newTestHandler(&stubSource{name: "x", err: ErrNoData}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/price", strings.NewReader(`{"player":"Nobody"}`))
	rec := httptest.NewRecorder()

	handler.HandleResolvePrice(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.PriceResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.False(t, result.Found)
	assert.Equal(t, "no pricing available from any source", result.Message)
}

func TestHandleResolvePrice_RecordsResolution(t *testing.T) {
	recorder := &fakeRecorder{}
	src := &stubSource{name: "live-listings", result: found(domain.SourceLiveListings, 11.00)}
	handler := newTestHandler(src, recorder)

	req := httptest.NewRequest(http.MethodPost, "/api/price", strings.NewReader(`{"player":"Connor Bedard"}`))
	rec := httptest.NewRecorder()

	handler.HandleResolvePrice(rec, req)

	assert.Equal(t, 1, recorder.records)
}

func TestHandleResolvePrice_RecorderFailureDoesNotFailRequest(t *testing.T) {
	recorder := &fakeRecorder{fail: true}
	src := &stubSource{name: "live-listings", result: found(domain.SourceLiveListings, 11.00)}
	handler := newTestHandler(src, recorder)

	req := httptest.NewRequest(http.MethodPost, "/api/price", strings.NewReader(`{"player":"Connor Bedard"}`))
	rec := httptest.NewRecorder()

	handler.HandleResolvePrice(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
