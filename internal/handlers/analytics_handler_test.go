package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"prep-service/internal/repository"
	"prep-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newTestAnalyticsHandler(t *testing.T) *AnalyticsHandler {
	t.Helper()
	// The driver connects lazily; no server is needed for these tests.
	client, err := mongo.Connect(context.Background(),
		options.Client().
			ApplyURI("mongodb://127.0.0.1:27017").
			SetServerSelectionTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("Failed to build mongo client: %v", err)
	}
	db := client.Database("prep_service_test")
	svc := service.NewAnalyticsService(
		repository.NewUserRepository(db),
		repository.NewSubmissionRepository(db),
		repository.NewAnswerRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewGroupRepository(db),
		repository.NewPartRepository(db),
		repository.NewTagRepository(db),
		repository.NewTestRepository(db),
	)
	return NewAnalyticsHandler(svc)
}

func TestGetUserAnalyticsInvalidWindow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &AnalyticsHandler{}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/analytics/u1?days=FOUR_MONTHS", nil)
	c.Params = gin.Params{{Key: "userId", Value: "u1"}}

	h.GetUserAnalytics(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for an unknown window label, got %d", w.Code)
	}
}

func TestGetUserAnalyticsHonorsRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestAnalyticsHandler(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/analytics/u1?days=ONE_MONTH", nil).WithContext(ctx)
	c.Params = gin.Params{{Key: "userId", Value: "u1"}}

	h.GetUserAnalytics(c)

	// The caller's deadline must reach the store: a canceled request dies
	// with the context error, not a server-selection timeout.
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500 for a canceled request, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "context canceled") {
		t.Errorf("Expected the context error to surface, got %s", w.Body.String())
	}
}
