package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/rescue_pulse/internal/config"
	"github.com/shenikar/rescue_pulse/internal/models"
	"github.com/shenikar/rescue_pulse/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	alerts   AlertService
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
	upgrader websocket.Upgrader
}

func NewHandler(alerts AlertService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		alerts:   alerts,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
		upgrader: newUpgrader(),
	}
}

// @Summary List open alerts
// @Description Get the user's own alerts and nearby alerts from the reconciled set. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param view query string false "mine or nearby; both when omitted"
// @Param radius_km query number false "Nearby radius in km, 0 disables the filter" default(0)
// @Success 200 {object} AlertsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Alert store unavailable"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")

	view := c.Query("view")
	if view != "" && view != "mine" && view != "nearby" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "view must be mine or nearby"})
		return
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius_km", "0"), 64)
	if err != nil || radius < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius_km"})
		return
	}

	if !h.alerts.Healthy() {
		log.Warn("Alert list requested while store is unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "alert store unavailable"})
		return
	}

	views := h.alerts.Views(radius)
	resp := AlertsResponse{RadiusKm: views.RadiusKm}
	if view == "" || view == "mine" {
		resp.Mine = ModelsToAlertResponses(views.Mine)
	}
	if view == "" || view == "nearby" {
		resp.Nearby = NearbyToAlertResponses(views.Nearby)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create an alert
// @Description Publish a help request at the user's current location. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body CreateAlertRequest true "Alert creation request"
// @Success 201 {object} CreateAlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Emergency broadcast already active"
// @Failure 503 {object} map[string]string "Alert store unavailable"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	var input CreateAlertRequest
	log := h.logger.WithField("method", "createAlert")

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

	alert, mut, err := h.alerts.CreateAlert(c.Request.Context(), DTOToCreateInput(input))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreateAlertResponse{
		Alert:    ModelToAlertResponse(alert),
		Mutation: ModelToMutationResponse(mut),
	})
}

// @Summary Respond to an alert
// @Description Join the responders of someone else's alert. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} MutationResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert already resolved"
// @Failure 500 {object} map[string]string "Internal server error"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /alerts/{id}/respond [post]
func (h *Handler) respond(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "respond").WithField("id", id)

	mut, err := h.alerts.Respond(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToMutationResponse(mut))
}

// @Summary Resolve the active broadcast
// @Description Mark the user's active emergency broadcast as resolved. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} MutationResponse
// @Failure 409 {object} map[string]string "No active broadcast"
// @Failure 500 {object} map[string]string "Internal server error"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /alerts/resolve [post]
func (h *Handler) resolveActive(c *gin.Context) {
	log := h.logger.WithField("method", "resolveActive")

	mut, err := h.alerts.ResolveActive(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToMutationResponse(mut))
}

// @Summary Delete an alert
// @Description Delete the user's own alert; falls back to resolving it when deletion is rejected. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} MutationResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /alerts/{id} [delete]
func (h *Handler) deleteAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "deleteAlert").WithField("id", id)

	mut, err := h.alerts.DeleteAlert(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToMutationResponse(mut))
}

// @Summary Get the active broadcast
// @Description Get the user's tracked emergency broadcast, if any. Requires API key.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} AlertResponse
// @Failure 404 {object} map[string]string "No active broadcast"
// @Router /alerts/active [get]
func (h *Handler) activeBroadcast(c *gin.Context) {
	alert, ok := h.alerts.ActiveBroadcast()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active broadcast"})
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Update location
// @Description Push the latest watched coordinates of the user. Requires API key.
// @Tags Location
// @Accept json
// @Security ApiKeyAuth
// @Param location body LocationRequest true "Coordinates"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /location [put]
func (h *Handler) updateLocation(c *gin.Context) {
	var input LocationRequest
	log := h.logger.WithField("method", "updateLocation")

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

	h.alerts.UpdateLocation(models.Coordinates{Lat: *input.Lat, Lng: *input.Lng})
	c.Status(http.StatusNoContent)
}

// @Summary List recent mutations
// @Description Get the ledger of recent optimistic writes, newest first. Requires API key.
// @Tags Session
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} MutationResponse
// @Router /mutations [get]
func (h *Handler) listMutations(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToMutationResponses(h.alerts.Mutations()))
}

// @Summary Reload alerts
// @Description Replace the reconciled set with a fresh fetch from the store. Requires API key.
// @Tags Session
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 503 {object} map[string]string "Alert store unavailable"
// @Router /session/reload [post]
func (h *Handler) reload(c *gin.Context) {
	log := h.logger.WithField("method", "reload")

	if err := h.alerts.Reload(c.Request.Context()); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Log out
// @Description Close the session: unsubscribe, stop probing and clear local state. Requires API key.
// @Tags Session
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Router /session/logout [post]
func (h *Handler) logout(c *gin.Context) {
	h.alerts.Logout()
	h.logger.WithField("method", "logout").Info("Session closed by request")
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application: ok or degraded while the store schema is missing
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	status := "ok"
	if !h.alerts.Healthy() {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// writeError переводит ошибку сервиса в код ответа
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrUnavailable):
		log.WithError(err).Warn("Alert store unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "alert store unavailable"})
	case errors.Is(err, service.ErrSessionClosed):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session closed"})
	case errors.Is(err, service.ErrAlertNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "alert belongs to another user"})
	case errors.Is(err, service.ErrNoActiveBroadcast):
		c.JSON(http.StatusConflict, gin.H{"error": "no active broadcast"})
	case errors.Is(err, service.ErrBroadcastActive):
		c.JSON(http.StatusConflict, gin.H{"error": "emergency broadcast already active"})
	case errors.Is(err, service.ErrAlertClosed):
		c.JSON(http.StatusConflict, gin.H{"error": "alert already resolved"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
