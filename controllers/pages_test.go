package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	rr := httptest.NewRecorder()
	PageController{}.Index()(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	body := rr.Body.String()
	assert.Contains(t, body, `action="/calculate"`)
	assert.Contains(t, body, `action="/lookup"`)
	assert.Contains(t, body, `name="num_credits"`)
	assert.Contains(t, body, `name="student_type"`)
	assert.Contains(t, body, `name="student_studies"`)
}

func TestStyle(t *testing.T) {
	rr := httptest.NewRecorder()
	PageController{}.Style()(rr, httptest.NewRequest(http.MethodGet, "/style.css", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/css", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "body")
}
