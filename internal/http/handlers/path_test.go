package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/skillone/skillpath-backend/internal/domain"
	"github.com/skillone/skillpath-backend/internal/http/response"
	"github.com/skillone/skillpath-backend/internal/platform/apierr"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
	"github.com/skillone/skillpath-backend/internal/services"
)

func TestGenerateLearningPathReturnsResult(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeRecommendationService{
		result: &services.GeneratePathResult{
			LearnerID:       "learner-1",
			Path:            []string{"go-101", "go-201"},
			RelevanceScores: map[string]float64{"go-101": 0.91, "go-201": 0.64},
			Reasoning:       "matched on go",
			TotalCourses:    2,
			GeneratedAt:     time.Now().UTC(),
		},
	}
	r := newPathRouter(t, svc)

	body := `{
		"learner_id": "learner-1",
		"career_goal": "Backend Engineer",
		"education_level": "Undergraduate",
		"desired_skills": ["go", "sql"],
		"interests": ["distributed systems"],
		"proficiency_level": "Beginner"
	}`
	rec := performRequest(r, http.MethodPost, "/api/generate-learning-path", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if svc.lastInput.CareerGoal != "Backend Engineer" {
		t.Fatalf("career goal not forwarded: got=%q", svc.lastInput.CareerGoal)
	}
	if len(svc.lastInput.DesiredSkills) != 2 || svc.lastInput.DesiredSkills[0] != "go" {
		t.Fatalf("desired skills not forwarded: got=%v", svc.lastInput.DesiredSkills)
	}

	var out struct {
		LearnerID string             `json:"learner_id"`
		Path      []string           `json:"learning_path"`
		Scores    map[string]float64 `json:"scores"`
		Reasoning string             `json:"reasoning"`
	}
	decodeBody(t, rec, &out)
	if out.LearnerID != "learner-1" {
		t.Fatalf("unexpected learner id: got=%q", out.LearnerID)
	}
	if len(out.Path) != 2 || out.Path[0] != "go-101" {
		t.Fatalf("unexpected path: got=%v", out.Path)
	}
	if out.Scores["go-201"] != 0.64 {
		t.Fatalf("unexpected score: got=%v", out.Scores["go-201"])
	}
	if out.Reasoning == "" {
		t.Fatal("expected reasoning in response")
	}
}

func TestGenerateLearningPathRejectsMalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeRecommendationService{}
	r := newPathRouter(t, svc)

	rec := performRequest(r, http.MethodPost, "/api/generate-learning-path", `{"learner_id": `)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusBadRequest)
	}
	if code := errorCode(t, rec); code != "invalid_request" {
		t.Fatalf("unexpected error code: got=%q want=%q", code, "invalid_request")
	}
	if svc.calls != 0 {
		t.Fatalf("service should not be called on bind failure, got %d calls", svc.calls)
	}
}

func TestGenerateLearningPathKeepsServiceStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeRecommendationService{
		err: apierr.New(http.StatusNotFound, "no_courses", context.DeadlineExceeded),
	}
	r := newPathRouter(t, svc)

	rec := performRequest(r, http.MethodPost, "/api/generate-learning-path", `{"learner_id":"l","career_goal":"g"}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusNotFound)
	}
	if code := errorCode(t, rec); code != "no_courses" {
		t.Fatalf("unexpected error code: got=%q want=%q", code, "no_courses")
	}
}

func TestGenerateLearningPathWrapsUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeRecommendationService{err: context.DeadlineExceeded}
	r := newPathRouter(t, svc)

	rec := performRequest(r, http.MethodPost, "/api/generate-learning-path", `{"learner_id":"l","career_goal":"g"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusInternalServerError)
	}
	if code := errorCode(t, rec); code != "path_generation_failed" {
		t.Fatalf("unexpected error code: got=%q want=%q", code, "path_generation_failed")
	}
}

func TestListLearningPathsReturnsRows(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeRecommendationService{
		listRows: []*types.LearningPath{
			{
				ID:             uuid.New(),
				LearnerID:      "learner-1",
				CourseSequence: types.StringList([]string{"go-101"}),
				TotalCourses:   1,
			},
		},
	}
	r := newPathRouter(t, svc)

	rec := performRequest(r, http.MethodGet, "/api/learning-paths/learner-1", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	if svc.lastLearner != "learner-1" {
		t.Fatalf("learner id not forwarded: got=%q", svc.lastLearner)
	}

	var out struct {
		Paths []types.LearningPath `json:"paths"`
	}
	decodeBody(t, rec, &out)
	if len(out.Paths) != 1 || out.Paths[0].LearnerID != "learner-1" {
		t.Fatalf("unexpected paths payload: got=%+v", out.Paths)
	}
}

func newPathRouter(t *testing.T, svc services.RecommendationService) *gin.Engine {
	t.Helper()
	h := NewPathHandler(svc, newTestLog(t))
	r := gin.New()
	r.POST("/api/generate-learning-path", h.GenerateLearningPath)
	r.GET("/api/learning-paths/:learner_id", h.ListLearningPaths)
	return r
}

func newTestLog(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	return log
}

func performRequest(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env response.ErrorEnvelope
	decodeBody(t, rec, &env)
	return env.Error.Code
}

type fakeRecommendationService struct {
	result      *services.GeneratePathResult
	err         error
	listRows    []*types.LearningPath
	listErr     error
	calls       int
	lastInput   services.GeneratePathInput
	lastLearner string
}

func (f *fakeRecommendationService) GenerateLearningPath(ctx context.Context, input services.GeneratePathInput) (*services.GeneratePathResult, error) {
	f.calls++
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeRecommendationService) ListLearningPaths(ctx context.Context, learnerID string) ([]*types.LearningPath, error) {
	f.lastLearner = learnerID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listRows, nil
}
