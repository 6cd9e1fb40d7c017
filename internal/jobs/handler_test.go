package jobs_test

import (
	"encoding/json"
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

const validJob = `{
	"title": "Backend Engineer",
	"description": "Build APIs",
	"location": "Remote",
	"department": "Engineering",
	"employment_type": "full-time",
	"salary_min": 100000
}`

type errorBody struct {
	Detail string `json:"detail"`
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func newRouter(t *testing.T, env string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(config.Config{Env: env})
	require.NoError(t, err)
	return app.Router
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body
}

func TestCreateAndGetJob(t *testing.T) {
	r := newRouter(t, "dev")

	resp := do(r, http.MethodPost, "/api/jobs", validJob)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	require.Len(t, created.ID, 24)

	resp = do(r, http.MethodGet, "/api/jobs/"+created.ID, "")
	require.Equal(t, http.StatusOK, resp.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got["id"])
	assert.Equal(t, "Backend Engineer", got["title"])
	assert.Equal(t, float64(100000), got["salary_min"])
	assert.Nil(t, got["salary_max"])
	assert.Equal(t, []any{}, got["skills"])
	assert.Equal(t, true, got["is_active"])
	assert.NotEmpty(t, got["created_at"])
	_, hasMongoID := got["_id"]
	assert.False(t, hasMongoID)
}

func TestListJobs(t *testing.T) {
	r := newRouter(t, "dev")

	resp := do(r, http.MethodGet, "/api/jobs", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/jobs", validJob).Code)
	inactive := strings.Replace(validJob, `"salary_min": 100000`, `"is_active": false, "skills": ["go"]`, 1)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/jobs", inactive).Code)

	resp = do(r, http.MethodGet, "/api/jobs", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var jobs []map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &jobs))
	require.Len(t, jobs, 2)
	assert.Equal(t, true, jobs[0]["is_active"])
	assert.Equal(t, false, jobs[1]["is_active"])
	assert.Equal(t, []any{"go"}, jobs[1]["skills"])
}

func TestCreateJobValidation(t *testing.T) {
	r := newRouter(t, "dev")

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{name: "missing title", body: `{"description":"d","location":"l","department":"d","employment_type":"e"}`, field: "title"},
		{name: "negative salary", body: strings.Replace(validJob, "100000", "-1", 1), field: "salary_min"},
		{name: "wrong type", body: strings.Replace(validJob, `"Backend Engineer"`, `5`, 1), field: "title"},
		{name: "not json", body: `{"title":`, field: "body"},
		{name: "array body", body: `[]`, field: "body"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := do(r, http.MethodPost, "/api/jobs", tc.body)
			require.Equal(t, http.StatusUnprocessableEntity, resp.Code, resp.Body.String())
			body := decodeError(t, resp)
			assert.NotEmpty(t, body.Detail)
			require.NotEmpty(t, body.Errors)
			assert.Equal(t, tc.field, body.Errors[0].Field)
		})
	}

	resp := do(r, http.MethodGet, "/api/jobs", "")
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestCreateJobIgnoresUnknownFields(t *testing.T) {
	r := newRouter(t, "dev")
	body := strings.Replace(validJob, `"salary_min"`, `"headcount": 3, "salary_min"`, 1)
	resp := do(r, http.MethodPost, "/api/jobs", body)
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestGetJobErrors(t *testing.T) {
	r := newRouter(t, "dev")

	resp := do(r, http.MethodGet, "/api/jobs/not-an-id", "")
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Invalid ID format", decodeError(t, resp).Detail)

	resp = do(r, http.MethodGet, "/api/jobs/0123456789abcdef01234567", "")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Job not found", decodeError(t, resp).Detail)
}

func TestJobsWithoutStore(t *testing.T) {
	r := newRouter(t, "production")

	resp := do(r, http.MethodGet, "/api/jobs", "")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "Database not available", decodeError(t, resp).Detail)

	resp = do(r, http.MethodPost, "/api/jobs", validJob)
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}
