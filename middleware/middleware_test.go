package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging(t *testing.T) {
	hook := test.NewGlobal()

	called := false
	wrapped := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Write([]byte("ok"))
	})

	rr := httptest.NewRecorder()
	wrapped(rr, httptest.NewRequest(http.MethodPost, "/calculate", nil))

	assert.True(t, called, "wrapped handler must run")
	assert.Equal(t, "ok", rr.Body.String())

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "request started", entries[0].Message)
	assert.Equal(t, "request completed", entries[1].Message)

	for _, entry := range entries {
		assert.Equal(t, log.InfoLevel, entry.Level)
		assert.Equal(t, http.MethodPost, entry.Data["method"])
		assert.Equal(t, "/calculate", entry.Data["path"])
	}

	// Both lines carry the same non-empty request ID so they can be read
	// together in the log.
	requestID, ok := entries[0].Data["request_id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, requestID)
	assert.Equal(t, requestID, entries[1].Data["request_id"])
}

func TestWithLoggingAssignsDistinctIDs(t *testing.T) {
	hook := test.NewGlobal()

	wrapped := WithLogging(func(w http.ResponseWriter, r *http.Request) {})

	wrapped(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	wrapped(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entries := hook.AllEntries()
	require.Len(t, entries, 4)
	assert.NotEqual(t, entries[0].Data["request_id"], entries[2].Data["request_id"])
}
