package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/royalsquare/internal/api/apierr"
	"github.com/mcoot/royalsquare/internal/testutil"
)

func TestRecovery_WritesJSONError(t *testing.T) {
	logger, buf := testutil.CaptureLogger()
	handler := RequestID(Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("board exploded")
	})))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/games/X", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, apierr.CodeInternalError, resp.Error.Code)

	assert.Contains(t, buf.String(), "board exploded")
	assert.Contains(t, buf.String(), rr.Header().Get("X-Request-ID"))
}
