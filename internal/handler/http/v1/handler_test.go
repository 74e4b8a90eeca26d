package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lumina-safety/safety_signal_system/internal/auth"
	"github.com/lumina-safety/safety_signal_system/internal/config"
	"github.com/lumina-safety/safety_signal_system/internal/export"
	"github.com/lumina-safety/safety_signal_system/internal/models"
	"github.com/lumina-safety/safety_signal_system/internal/service"
	"github.com/lumina-safety/safety_signal_system/internal/service/mocks"
)

type testEnv struct {
	signals   *mocks.MockSignalService
	analytics *mocks.MockAnalyticsService
	users     *mocks.MockUserService
	tokens    *auth.JWTService
	router    *gin.Engine
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DefaultCity:     "demo_city",
		SignalPageLimit: 1000,
	}

	env := &testEnv{
		signals:   mocks.NewMockSignalService(ctrl),
		analytics: mocks.NewMockAnalyticsService(ctrl),
		users:     mocks.NewMockUserService(ctrl),
		tokens:    auth.NewJWTService("test-secret", time.Hour),
	}

	handler := NewHandler(env.signals, env.analytics, env.users, env.tokens, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	env.router = router

	return env
}

// bearerHeader выпускает токен и возвращает заголовок авторизации
func (e *testEnv) bearerHeader(t *testing.T, userID uuid.UUID, role string) map[string]string {
	token, err := e.tokens.Generate(userID.String(), role)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister_HandlerSuccess(t *testing.T) {
	env := newTestHandler(t)
	reqBody := RegisterRequest{
		Email:    "anna@example.com",
		Password: "secret-pass",
		Name:     "Anna",
	}
	registered := &models.User{
		ID:    uuid.New(),
		Email: reqBody.Email,
		Name:  reqBody.Name,
		Role:  models.RoleUser,
	}

	env.users.EXPECT().
		Register(gomock.Any(), reqBody.Email, reqBody.Password, reqBody.Name, "").
		Return(registered, "issued-token", nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(env.router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AuthResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "issued-token", resp.Token)
	assert.Equal(t, registered.ID, resp.User.ID)
	assert.Equal(t, models.RoleUser, resp.User.Role)
}

func TestRegister_EmailConflict(t *testing.T) {
	env := newTestHandler(t)
	reqBody := RegisterRequest{
		Email:    "anna@example.com",
		Password: "secret-pass",
		Name:     "Anna",
	}

	env.users.EXPECT().
		Register(gomock.Any(), reqBody.Email, reqBody.Password, reqBody.Name, "").
		Return(nil, "", service.ErrEmailTaken).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(env.router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestRegister_ValidationError(t *testing.T) {
	env := newTestHandler(t)
	reqBody := RegisterRequest{ // Пароль слишком короткий
		Email:    "anna@example.com",
		Password: "short",
		Name:     "Anna",
	}

	env.users.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(env.router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Password' failed on the 'min' tag")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newTestHandler(t)
	reqBody := LoginRequest{
		Email:    "anna@example.com",
		Password: "wrong-pass",
	}

	env.users.EXPECT().
		Login(gomock.Any(), reqBody.Email, reqBody.Password).
		Return(nil, "", service.ErrInvalidCredentials).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(env.router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email or password")
}

func TestMe_Success(t *testing.T) {
	env := newTestHandler(t)
	userID := uuid.New()
	stored := &models.User{
		ID:    userID,
		Email: "anna@example.com",
		Name:  "Anna",
		Role:  models.RoleNGO,
	}

	env.users.EXPECT().GetUser(gomock.Any(), userID).Return(stored, nil).Times(1)

	w := makeRequest(env.router, "GET", "/api/v1/auth/me", nil, env.bearerHeader(t, userID, models.RoleNGO))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp UserResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, userID, resp.ID)
	assert.Equal(t, models.RoleNGO, resp.Role)
}

func TestCreateSignal_Success(t *testing.T) {
	env := newTestHandler(t)
	signalID := uuid.New()
	reqBody := CreateSignalRequest{
		Latitude:     55.7558,
		Longitude:    37.6173,
		IncidentType: models.IncidentTheft,
		Severity:     models.SeverityMedium,
		Description:  "Bag snatched near the metro exit",
		TimeOfDay:    models.TimeOfDayEvening,
	}

	env.signals.EXPECT().
		CreateSignal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sig *models.SafetySignal) error {
			assert.Equal(t, reqBody.Latitude, sig.Location.Lat)
			assert.Equal(t, reqBody.IncidentType, sig.IncidentType)
			sig.ID = signalID
			sig.ConfidenceScore = 0.7
			sig.City = "demo_city"
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(env.router, "POST", "/api/v1/signals", bytes.NewBuffer(bodyBytes), env.bearerHeader(t, uuid.New(), models.RoleUser))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SignalResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, signalID, resp.ID)
	assert.Equal(t, 0.7, resp.ConfidenceScore)
	assert.Equal(t, "demo_city", resp.City)
}

func TestCreateSignal_Unauthorized(t *testing.T) {
	env := newTestHandler(t)

	env.signals.EXPECT().CreateSignal(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CreateSignalRequest{
		Latitude:     55.7558,
		Longitude:    37.6173,
		IncidentType: models.IncidentTheft,
		Severity:     models.SeverityMedium,
		TimeOfDay:    models.TimeOfDayEvening,
	})
	w := makeRequest(env.router, "POST", "/api/v1/signals", bytes.NewBuffer(bodyBytes)) // Нет токена

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "bearer token required")
}

func TestCreateSignal_ValidationError(t *testing.T) {
	env := newTestHandler(t)
	reqBody := CreateSignalRequest{ // Недопустимый уровень серьезности
		Latitude:     55.7558,
		Longitude:    37.6173,
		IncidentType: models.IncidentTheft,
		Severity:     "catastrophic",
		TimeOfDay:    models.TimeOfDayEvening,
	}

	env.signals.EXPECT().CreateSignal(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(env.router, "POST", "/api/v1/signals", bytes.NewBuffer(bodyBytes), env.bearerHeader(t, uuid.New(), models.RoleUser))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Severity' failed on the 'oneof' tag")
}

func TestListSignals_Success(t *testing.T) {
	env := newTestHandler(t)
	expectedSignals := []*models.SafetySignal{
		{ID: uuid.New(), IncidentType: models.IncidentTheft, Severity: models.SeverityHigh, City: "demo_city"},
		{ID: uuid.New(), IncidentType: models.IncidentPoorLighting, Severity: models.SeverityLow, City: "demo_city"},
	}

	env.signals.EXPECT().
		ListSignals(gomock.Any(), models.SignalFilter{City: "demo_city", Severity: models.SeverityHigh, Limit: 50}).
		Return(expectedSignals, nil).
		Times(1)

	w := makeRequest(env.router, "GET", "/api/v1/signals?city=demo_city&severity=high&limit=50", nil, env.bearerHeader(t, uuid.New(), models.RoleUser))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []SignalResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, expectedSignals[0].ID, resp[0].ID)
}

func TestValidateSignal_Success(t *testing.T) {
	env := newTestHandler(t)
	signalID := uuid.New()
	reqBody := ValidateSignalRequest{ValidationType: "confirm"}

	env.signals.EXPECT().
		ValidateSignal(gomock.Any(), signalID, "confirm").
		Return(0.8, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(env.router, "POST", fmt.Sprintf("/api/v1/signals/%s/validate", signalID.String()), bytes.NewBuffer(bodyBytes), env.bearerHeader(t, uuid.New(), models.RoleUser))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ValidateSignalResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, signalID, resp.SignalID)
	assert.Equal(t, 0.8, resp.ConfidenceScore)
}

func TestValidateSignal_InvalidID(t *testing.T) {
	env := newTestHandler(t)

	env.signals.EXPECT().ValidateSignal(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(ValidateSignalRequest{ValidationType: "confirm"})
	w := makeRequest(env.router, "POST", "/api/v1/signals/not-a-uuid/validate", bytes.NewBuffer(bodyBytes), env.bearerHeader(t, uuid.New(), models.RoleUser))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid signal ID")
}

func TestValidateSignal_NotFound(t *testing.T) {
	env := newTestHandler(t)
	signalID := uuid.New()

	env.signals.EXPECT().
		ValidateSignal(gomock.Any(), signalID, "confirm").
		Return(0.0, errors.New("signal not found")).
		Times(1)

	bodyBytes, _ := json.Marshal(ValidateSignalRequest{ValidationType: "confirm"})
	w := makeRequest(env.router, "POST", fmt.Sprintf("/api/v1/signals/%s/validate", signalID.String()), bytes.NewBuffer(bodyBytes), env.bearerHeader(t, uuid.New(), models.RoleUser))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "signal not found")
}

func TestListAreaScores_Success(t *testing.T) {
	env := newTestHandler(t)
	expectedAreas := []*models.AreaScore{
		{ID: "demo_city_5575_3761", City: "demo_city", IncidentCount: 4},
	}

	env.analytics.EXPECT().
		ListAreaScores(gomock.Any(), "demo_city", 500).
		Return(expectedAreas, nil).
		Times(1)

	w := makeRequest(env.router, "GET", "/api/v1/areas/scores?city=demo_city", nil, env.bearerHeader(t, uuid.New(), models.RoleUser))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*models.AreaScore
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "demo_city_5575_3761", resp[0].ID)
}

func TestListHotspots_Success(t *testing.T) {
	env := newTestHandler(t)
	expectedHotspots := []*models.Hotspot{
		{ID: uuid.New(), AreaName: "Hotspot 2787_1880", RiskScore: 72.0, TrendVelocity: models.TrendStable},
	}

	env.analytics.EXPECT().
		DetectHotspots(gomock.Any(), "", 20).
		Return(expectedHotspots, nil).
		Times(1)

	w := makeRequest(env.router, "GET", "/api/v1/hotspots", nil, env.bearerHeader(t, uuid.New(), models.RoleUser))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*models.Hotspot
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, 72.0, resp[0].RiskScore)
}

func TestPlanRoute_Success(t *testing.T) {
	env := newTestHandler(t)
	reqBody := PlanRouteRequest{
		StartLat: 55.7558,
		StartLng: 37.6173,
		EndLat:   55.7600,
		EndLng:   37.6200,
	}
	expectedRoute := &models.Route{
		RouteID:            uuid.New(),
		OverallSafetyScore: 85.0,
		Points: []models.RoutePoint{
			{Lat: reqBody.StartLat, Lng: reqBody.StartLng, SafetyScore: 85.0},
		},
	}

	env.analytics.EXPECT().
		PlanRoute(gomock.Any(), models.Location{Lat: reqBody.StartLat, Lng: reqBody.StartLng}, models.Location{Lat: reqBody.EndLat, Lng: reqBody.EndLng}, "", false).
		Return(expectedRoute, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(env.router, "POST", "/api/v1/routes/plan", bytes.NewBuffer(bodyBytes), env.bearerHeader(t, uuid.New(), models.RoleUser))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.Route
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expectedRoute.RouteID, resp.RouteID)
	assert.Equal(t, 85.0, resp.OverallSafetyScore)
}

func TestDashboardMetrics_ForbiddenForUserRole(t *testing.T) {
	env := newTestHandler(t)

	env.analytics.EXPECT().DashboardMetrics(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(env.router, "GET", "/api/v1/dashboard/metrics", nil, env.bearerHeader(t, uuid.New(), models.RoleUser))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "dashboard access requires")
}

func TestDashboardMetrics_Success(t *testing.T) {
	env := newTestHandler(t)
	expectedMetrics := &models.DashboardMetrics{
		TotalSignals:      42,
		Last30Days:        17,
		HighSeverityCount: 5,
		AreasMonitored:    9,
		City:              "demo_city",
	}

	env.analytics.EXPECT().
		DashboardMetrics(gomock.Any(), "demo_city").
		Return(expectedMetrics, nil).
		Times(1)

	w := makeRequest(env.router, "GET", "/api/v1/dashboard/metrics?city=demo_city", nil, env.bearerHeader(t, uuid.New(), models.RoleCity))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.DashboardMetrics
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 42, resp.TotalSignals)
	assert.Equal(t, 9, resp.AreasMonitored)
}

func TestRiskTrends_Success(t *testing.T) {
	env := newTestHandler(t)
	expectedTrends := []*models.TrendPoint{
		{Date: "2025-06-14", Count: 3, HighSeverity: 1},
		{Date: "2025-06-15", Count: 5, HighSeverity: 0},
	}

	env.analytics.EXPECT().
		RiskTrends(gomock.Any(), "", 7).
		Return(expectedTrends, nil).
		Times(1)

	w := makeRequest(env.router, "GET", "/api/v1/dashboard/trends?days=7", nil, env.bearerHeader(t, uuid.New(), models.RoleNGO))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*models.TrendPoint
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "2025-06-14", resp[0].Date)
}

func TestRequestExport_Accepted(t *testing.T) {
	env := newTestHandler(t)
	userID := uuid.New()
	jobID := uuid.New()
	reqBody := ExportRequest{Format: "csv", City: "demo_city"}

	env.analytics.EXPECT().
		RequestExport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, job export.Job) (*export.Job, error) {
			assert.Equal(t, "csv", job.Format)
			assert.Equal(t, userID.String(), job.RequestedBy)
			job.ID = jobID
			job.CreatedAt = time.Now().UTC()
			return &job, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(env.router, "POST", "/api/v1/dashboard/export", bytes.NewBuffer(bodyBytes), env.bearerHeader(t, userID, models.RoleAdmin))

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp ExportJobResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, jobID, resp.ID)
	assert.Equal(t, export.StatusProcessing, resp.Status)
}

func TestGetExportResult_Completed(t *testing.T) {
	env := newTestHandler(t)
	jobID := uuid.New()
	expectedResult := &export.Result{
		ID:       jobID,
		Status:   export.StatusCompleted,
		Format:   "csv",
		RowCount: 12,
	}

	env.analytics.EXPECT().
		GetExportResult(gomock.Any(), jobID).
		Return(expectedResult, nil).
		Times(1)

	w := makeRequest(env.router, "GET", fmt.Sprintf("/api/v1/dashboard/export/%s", jobID.String()), nil, env.bearerHeader(t, uuid.New(), models.RoleNGO))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp export.Result
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, export.StatusCompleted, resp.Status)
	assert.Equal(t, 12, resp.RowCount)
}

func TestGetExportResult_StillProcessing(t *testing.T) {
	env := newTestHandler(t)
	jobID := uuid.New()

	env.analytics.EXPECT().
		GetExportResult(gomock.Any(), jobID).
		Return(nil, nil).
		Times(1)

	w := makeRequest(env.router, "GET", fmt.Sprintf("/api/v1/dashboard/export/%s", jobID.String()), nil, env.bearerHeader(t, uuid.New(), models.RoleNGO))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), export.StatusProcessing)
}

func TestListCities_Success(t *testing.T) {
	env := newTestHandler(t)

	w := makeRequest(env.router, "GET", "/api/v1/cities", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []CityResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.NotEmpty(t, resp)
	assert.Equal(t, "demo_city", resp[0].ID)
}

func TestTransparency_Success(t *testing.T) {
	env := newTestHandler(t)

	w := makeRequest(env.router, "GET", "/api/v1/privacy/transparency", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp TransparencyResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.DataCollected)
	assert.NotEmpty(t, resp.DataNotCollected)
}

func TestHealthCheck_Success(t *testing.T) {
	env := newTestHandler(t)

	w := makeRequest(env.router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	env := newTestHandler(t)

	expired := auth.NewJWTService("test-secret", -time.Hour)
	token, err := expired.Generate(uuid.New().String(), models.RoleUser)
	require.NoError(t, err)

	w := makeRequest(env.router, "GET", "/api/v1/auth/me", nil, map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestJWTAuthMiddleware_WrongSecret(t *testing.T) {
	env := newTestHandler(t)

	foreign := auth.NewJWTService("another-secret", time.Hour)
	token, err := foreign.Generate(uuid.New().String(), models.RoleUser)
	require.NoError(t, err)

	w := makeRequest(env.router, "GET", "/api/v1/auth/me", nil, map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}
