package controllers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuition-calculator/testutil"
)

func postLookup(t *testing.T, db *sql.DB, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	handler := LookupController{}.Lookup(testutil.NewAppState(db))
	rr := httptest.NewRecorder()
	handler(rr, testutil.PostForm("/lookup", form))
	return rr
}

func TestLookupFound(t *testing.T) {
	db := testutil.OpenTestDB(t)
	testutil.SeedUserTuition(t, db, "Grace", "Hopper", "1234.50")

	rr := postLookup(t, db, url.Values{
		"first_name": {"Grace"},
		"last_name":  {"Hopper"},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	body := rr.Body.String()
	assert.Contains(t, body, "<td>Grace Hopper</td>")
	assert.Contains(t, body, "<td>$1234.50</td>")
}

func TestLookupUnknownName(t *testing.T) {
	db := testutil.OpenTestDB(t)
	hook := test.NewGlobal()

	rr := postLookup(t, db, url.Values{
		"first_name": {"Grace"},
		"last_name":  {"Hopper"},
	})

	// Unknown names surface as the generic error page, status 200, with the
	// diagnostic kept to the log.
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Something went wrong.")

	require.NotEmpty(t, hook.AllEntries())
	last := hook.LastEntry()
	assert.Equal(t, log.ErrorLevel, last.Level)
	assert.Contains(t, last.Message, "Error while accessing database:")
}

func TestLookupRequiresBothNames(t *testing.T) {
	db := testutil.OpenTestDB(t)
	testutil.SeedUserTuition(t, db, "Grace", "Hopper", "1234.50")

	tests := []struct {
		name    string
		form    url.Values
		message string
	}{
		{"missing first name", url.Values{"last_name": {"Hopper"}}, "First name not provided"},
		{"missing last name", url.Values{"first_name": {"Grace"}}, "Last name not provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := test.NewGlobal()

			rr := postLookup(t, db, tt.form)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), "Something went wrong.")

			require.NotEmpty(t, hook.AllEntries())
			assert.Equal(t, tt.message, hook.LastEntry().Message)
		})
	}
}
