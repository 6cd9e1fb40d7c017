package candidates_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit-api/internal/bootstrap"
	"recruit-api/internal/shared/config"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(config.Config{Env: "dev"})
	require.NoError(t, err)
	return app.Router
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/candidates", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
	return resp
}

func TestCandidateEmailRules(t *testing.T) {
	r := newRouter(t)

	cases := []struct {
		email string
		want  int
	}{
		{email: "not-an-email", want: http.StatusUnprocessableEntity},
		{email: "a@localhost", want: http.StatusUnprocessableEntity},
		{email: "a@.com", want: http.StatusUnprocessableEntity},
		{email: "a@b.co", want: http.StatusOK},
		{email: "first.last@mail.example.org", want: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			resp := post(r, fmt.Sprintf(`{"name":"A","email":%q}`, tc.email))
			assert.Equal(t, tc.want, resp.Code, resp.Body.String())
		})
	}
}

func TestCandidateExperienceBoundary(t *testing.T) {
	r := newRouter(t)

	cases := []struct {
		years string
		want  int
	}{
		{years: "81", want: http.StatusUnprocessableEntity},
		{years: "80", want: http.StatusOK},
		{years: "0", want: http.StatusOK},
		{years: "-1", want: http.StatusUnprocessableEntity},
		{years: "2.5", want: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.years, func(t *testing.T) {
			resp := post(r, `{"name":"A","email":"a@b.co","experience_years":`+tc.years+`}`)
			assert.Equal(t, tc.want, resp.Code, resp.Body.String())
		})
	}
}

func TestCandidateValidationReport(t *testing.T) {
	r := newRouter(t)

	resp := post(r, `{"email":"nope"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	var body struct {
		Detail string `json:"detail"`
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "name", body.Errors[0].Field)
	assert.Equal(t, "field required", body.Errors[0].Message)
	assert.Equal(t, "email", body.Errors[1].Field)
	assert.Equal(t, "value is not a valid email address", body.Errors[1].Message)
}

func TestCreateListAndGetCandidate(t *testing.T) {
	r := newRouter(t)

	resp := post(r, `{"name":"Ada","email":"ada@example.com","phone":"555-0100","experience_years":80}`)
	require.Equal(t, http.StatusOK, resp.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	require.Len(t, created.ID, 24)

	resp = get(r, "/api/candidates")
	require.Equal(t, http.StatusOK, resp.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0]["id"])
	assert.Equal(t, "555-0100", list[0]["phone"])
	assert.Nil(t, list[0]["resume_url"])
	assert.Equal(t, []any{}, list[0]["skills"])

	resp = get(r, "/api/candidates/"+created.ID)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = get(r, "/api/candidates/zzz")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = get(r, "/api/candidates/0123456789abcdef01234567")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"detail":"Candidate not found"}`, resp.Body.String())
}
