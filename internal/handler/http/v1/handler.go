package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lumina-safety/safety_signal_system/internal/auth"
	"github.com/lumina-safety/safety_signal_system/internal/config"
	"github.com/lumina-safety/safety_signal_system/internal/export"
	"github.com/lumina-safety/safety_signal_system/internal/models"
	"github.com/lumina-safety/safety_signal_system/internal/service"
)

type Handler struct {
	signalService    service.SignalService
	analyticsService service.AnalyticsService
	userService      service.UserService
	tokens           *auth.JWTService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(signalService service.SignalService, analyticsService service.AnalyticsService, userService service.UserService, tokens *auth.JWTService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		signalService:    signalService,
		analyticsService: analyticsService,
		userService:      userService,
		tokens:           tokens,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Register a new user
// @Description Register a new user and issue an access token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration request"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.userService.Register(c.Request.Context(), input.Email, input.Password, input.Name, input.Role)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		log.WithError(err).Error("Failed to register user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: ModelToUserResponse(user)})
}

// @Summary Log in
// @Description Verify credentials and issue an access token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.userService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		log.WithError(err).Error("Failed to log in user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: ModelToUserResponse(user)})
}

// @Summary Get current user
// @Description Get the profile of the authenticated user. Requires Bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Router /auth/me [get]
func (h *Handler) me(c *gin.Context) {
	id, err := uuid.Parse(c.GetString(ctxUserID))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token subject"})
		return
	}
	log := h.logger.WithField("method", "me").WithField("user_id", id)

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get user from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Report a safety signal
// @Description Report a new community safety signal. The area score of the signal's grid cell is recomputed synchronously. Requires Bearer token.
// @Tags Signals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param signal body CreateSignalRequest true "Signal creation request"
// @Success 201 {object} SignalResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /signals [post]
func (h *Handler) createSignal(c *gin.Context) {
	var input CreateSignalRequest
	log := h.logger.WithField("method", "createSignal")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToSignalModel(input)
	if err := h.signalService.CreateSignal(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create signal in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToSignalResponse(model))
}

// @Summary Get a list of safety signals
// @Description Get recent safety signals filtered by city, time of day and severity. Requires Bearer token.
// @Tags Signals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param city query string false "City identifier" default(demo_city)
// @Param time_of_day query string false "Time of day filter (morning, day, evening, night)"
// @Param severity query string false "Severity filter (low, medium, high)"
// @Param limit query int false "Maximum number of signals" default(100)
// @Success 200 {array} SignalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /signals [get]
func (h *Handler) listSignals(c *gin.Context) {
	log := h.logger.WithField("method", "listSignals")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	filter := models.SignalFilter{
		City:      c.Query("city"),
		TimeOfDay: c.Query("time_of_day"),
		Severity:  c.Query("severity"),
		Limit:     limit,
	}

	signals, err := h.signalService.ListSignals(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list signals from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToSignalResponses(signals))
}

// @Summary Validate a safety signal
// @Description Confirm a signal reported by another user. Each validation raises the signal's confidence score up to the 0.9 cap. Requires Bearer token.
// @Tags Signals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Signal ID"
// @Param validation body ValidateSignalRequest true "Validation request"
// @Success 200 {object} ValidateSignalResponse
// @Failure 400 {object} map[string]string "Invalid signal ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Signal not found"
// @Router /signals/{id}/validate [post]
func (h *Handler) validateSignal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signal ID"})
		return
	}
	log := h.logger.WithField("method", "validateSignal").WithField("id", id)

	var input ValidateSignalRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confidence, err := h.signalService.ValidateSignal(c.Request.Context(), id, input.ValidationType)
	if err != nil {
		log.WithError(err).Warn("Failed to validate signal in service")
		c.JSON(http.StatusNotFound, gin.H{"error": "signal not found"})
		return
	}

	c.JSON(http.StatusOK, ValidateSignalResponse{SignalID: id, ConfidenceScore: confidence})
}

// @Summary Get area safety scores
// @Description Get derived safety scores for all monitored areas of a city. Requires Bearer token.
// @Tags Analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param city query string false "City identifier" default(demo_city)
// @Param limit query int false "Maximum number of areas" default(500)
// @Success 200 {array} models.AreaScore
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /areas/scores [get]
func (h *Handler) listAreaScores(c *gin.Context) {
	log := h.logger.WithField("method", "listAreaScores")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "500"))

	areas, err := h.analyticsService.ListAreaScores(c.Request.Context(), c.Query("city"), limit)
	if err != nil {
		log.WithError(err).Error("Failed to list area scores from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, areas)
}

// @Summary Get ranked hotspots
// @Description Detect spatial clusters of recent signals and rank them by risk. Requires Bearer token.
// @Tags Analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param city query string false "City identifier" default(demo_city)
// @Param limit query int false "Maximum number of hotspots" default(20)
// @Success 200 {array} models.Hotspot
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots [get]
func (h *Handler) listHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "listHotspots")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	hotspots, err := h.analyticsService.DetectHotspots(c.Request.Context(), c.Query("city"), limit)
	if err != nil {
		log.WithError(err).Error("Failed to detect hotspots in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, hotspots)
}

// @Summary Plan a route risk profile
// @Description Score a straight-line route between two points against nearby signals. Requires Bearer token.
// @Tags Analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param route body PlanRouteRequest true "Route planning request"
// @Success 200 {object} models.Route
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /routes/plan [post]
func (h *Handler) planRoute(c *gin.Context) {
	var input PlanRouteRequest
	log := h.logger.WithField("method", "planRoute")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := models.Location{Lat: input.StartLat, Lng: input.StartLng}
	end := models.Location{Lat: input.EndLat, Lng: input.EndLng}

	route, err := h.analyticsService.PlanRoute(c.Request.Context(), start, end, input.TimeOfDay, input.PreferSafety)
	if err != nil {
		log.WithError(err).Error("Failed to plan route in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, route)
}

// @Summary Get dashboard metrics
// @Description Get aggregate city metrics for the analytics dashboard. Requires ngo, city or admin role.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param city query string false "City identifier" default(demo_city)
// @Success 200 {object} models.DashboardMetrics
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/metrics [get]
func (h *Handler) dashboardMetrics(c *gin.Context) {
	log := h.logger.WithField("method", "dashboardMetrics")

	dashboard, err := h.analyticsService.DashboardMetrics(c.Request.Context(), c.Query("city"))
	if err != nil {
		log.WithError(err).Error("Failed to collect dashboard metrics in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// @Summary Get risk trends
// @Description Get daily signal counts for a city over the requested period. Requires ngo, city or admin role.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param city query string false "City identifier" default(demo_city)
// @Param days query int false "Number of days" default(30)
// @Success 200 {array} models.TrendPoint
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/trends [get]
func (h *Handler) riskTrends(c *gin.Context) {
	log := h.logger.WithField("method", "riskTrends")
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	trends, err := h.analyticsService.RiskTrends(c.Request.Context(), c.Query("city"), days)
	if err != nil {
		log.WithError(err).Error("Failed to compute risk trends in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, trends)
}

// @Summary Request a data export
// @Description Enqueue a background export of anonymized signals. Requires ngo, city or admin role.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param export body ExportRequest true "Export request"
// @Success 202 {object} ExportJobResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/export [post]
func (h *Handler) requestExport(c *gin.Context) {
	var input ExportRequest
	log := h.logger.WithField("method", "requestExport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.analyticsService.RequestExport(c.Request.Context(), export.Job{
		Format:      input.Format,
		City:        input.City,
		DateFrom:    input.DateFrom,
		DateTo:      input.DateTo,
		RequestedBy: c.GetString(ctxUserID),
	})
	if err != nil {
		log.WithError(err).Error("Failed to enqueue export job in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusAccepted, ExportJobResponse{
		ID:        job.ID,
		Status:    export.StatusProcessing,
		Format:    job.Format,
		City:      job.City,
		CreatedAt: job.CreatedAt,
	})
}

// @Summary Get an export result
// @Description Get the status and artifact of a previously requested export. Requires ngo, city or admin role.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Export job ID"
// @Success 200 {object} export.Result
// @Failure 400 {object} map[string]string "Invalid export job ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/export/{id} [get]
func (h *Handler) getExportResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid export job ID"})
		return
	}
	log := h.logger.WithField("method", "getExportResult").WithField("id", id)

	result, err := h.analyticsService.GetExportResult(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to get export result from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if result == nil {
		// Результата еще нет: задача обрабатывается либо артефакт истек
		c.JSON(http.StatusOK, ExportJobResponse{ID: id, Status: export.StatusProcessing})
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Get the city catalogue
// @Description Get the list of cities known to the platform.
// @Tags Meta
// @Accept json
// @Produce json
// @Success 200 {array} CityResponse
// @Router /cities [get]
func (h *Handler) listCities(c *gin.Context) {
	c.JSON(http.StatusOK, []CityResponse{
		{ID: h.cfg.DefaultCity, Name: "Demo City"},
		{ID: "santiago", Name: "Santiago"},
		{ID: "bogota", Name: "Bogota"},
		{ID: "mexico_city", Name: "Mexico City"},
	})
}

// @Summary Get the data transparency document
// @Description Describes which data the platform collects and how it is anonymized.
// @Tags Meta
// @Accept json
// @Produce json
// @Success 200 {object} TransparencyResponse
// @Router /privacy/transparency [get]
func (h *Handler) transparency(c *gin.Context) {
	c.JSON(http.StatusOK, TransparencyResponse{
		DataCollected: []string{
			"approximate incident location (grid cell level)",
			"incident type, severity and time of day",
			"free-text description provided by the reporter",
		},
		DataNotCollected: []string{
			"reporter identity attached to a signal",
			"precise home or work addresses",
			"device identifiers or movement history",
		},
		RetentionPolicy: "signals older than 30 days are excluded from hotspot and trend analytics",
		Anonymization:   "exports contain no user identifiers; signals are aggregated per grid cell",
		Contact:         "privacy@lumina-safety.example",
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
