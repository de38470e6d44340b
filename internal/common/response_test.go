package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bbapp/bulletin-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(path string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	return c, w
}

func TestErrorResponse_ServerErrorIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(logger.New("production", &buf))

	c, w := newTestContext("/api/v1/bulletins")
	c.Set("request_id", "req-42")

	HandleError(c, "Failed to load bulletins", NewStoreError("bulletins.list", errors.New("connection refused")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", resp.Error.Code)
	assert.Empty(t, resp.Error.Details)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "/api/v1/bulletins", entry["path"])
	assert.Contains(t, entry["error"], "connection refused")
}

func TestErrorResponse_BadRequestCarriesDetails(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(logger.New("production", &buf))

	c, w := newTestContext("/api/v1/star")
	HandleError(c, "Invalid star request", InvalidInput("missing star target"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "missing star target")
	assert.Zero(t, buf.Len())
}
