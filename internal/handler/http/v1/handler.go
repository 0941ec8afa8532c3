package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/gaia_guard/internal/alert"
	"github.com/shenikar/gaia_guard/internal/config"
	"github.com/shenikar/gaia_guard/internal/models"
	"github.com/shenikar/gaia_guard/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	landService     service.LandService
	favoriteService service.FavoriteService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(landService service.LandService, favoriteService service.FavoriteService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		landService:     landService,
		favoriteService: favoriteService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondError переводит ошибку сервиса в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var (
		deliveryErr *alert.DeliveryError
		analysisErr *service.AnalysisError
	)
	switch {
	case errors.Is(err, service.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, alert.ErrPhoneRequired):
		log.WithError(err).Warn("Rejected invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, models.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, alert.ErrSenderNotConfigured):
		log.WithError(err).Warn("Alert sender is not configured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "alert sender is not configured"})
	case errors.As(err, &deliveryErr):
		log.WithError(err).Error("Alert delivery failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "alert delivery failed", "reason": deliveryErr.Reason()})
	case errors.As(err, &analysisErr):
		log.WithError(err).Error("Location analysis failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed", "stage": analysisErr.Stage})
	default:
		log.WithError(err).Error("Request failed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary List land data entries
// @Description Get the caller's analysis entries, newest first. Requires API key.
// @Tags LandData
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} LandDataResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /land-data [get]
func (h *Handler) listLandData(c *gin.Context) {
	log := h.logger.WithField("method", "listLandData")

	entries, err := h.landService.FetchLandData(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToLandDataResponses(entries))
}

// @Summary Get land data entry by ID
// @Description Get a single analysis entry owned by the caller. Requires API key.
// @Tags LandData
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} LandDataResponse
// @Failure 400 {object} map[string]string "Invalid entry ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /land-data/{id} [get]
func (h *Handler) getLandData(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getLandData").WithField("id", id)

	entry, err := h.landService.GetEntry(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToLandDataResponse(entry))
}

// @Summary Dashboard summary
// @Description Averages of readings and counts per degradation level over the caller's entries. Requires API key.
// @Tags LandData
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /land-data/summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	log := h.logger.WithField("method", "getSummary")

	summary, err := h.landService.Summary(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSummaryResponse(summary))
}

// @Summary Analyze a location
// @Description Fetch environmental readings, assess degradation and store the result. Requires API key.
// @Tags LandData
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body AnalyzeLocationRequest true "Location to analyze"
// @Success 201 {object} AnalyzeLocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Analysis failed"
// @Router /land-data/analyze [post]
func (h *Handler) analyzeLocation(c *gin.Context) {
	var input AnalyzeLocationRequest
	log := h.logger.WithField("method", "analyzeLocation")

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

	result, err := h.landService.AnalyzeLocation(c.Request.Context(), input.LocationName, *input.Latitude, *input.Longitude)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAnalyzeResponse(result))
}

// @Summary Send an alert for an entry
// @Description Deliver a WhatsApp alert built from the entry. Re-sending is allowed. Requires API key.
// @Tags LandData
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Entry ID"
// @Param alert body SendAlertRequest true "Recipient phone"
// @Success 200 {object} SendAlertResponse
// @Failure 400 {object} map[string]string "Invalid entry ID or phone missing"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 502 {object} map[string]string "Delivery failed"
// @Failure 503 {object} map[string]string "Sender not configured"
// @Router /land-data/{id}/alert [post]
func (h *Handler) sendAlert(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "sendAlert").WithField("id", id)

	var input SendAlertRequest
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

	messageID, err := h.landService.SendAlert(c.Request.Context(), id, input.Phone)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SendAlertResponse{MessageID: messageID})
}

// @Summary List favorite locations
// @Description Get the caller's favorite locations, newest first. Requires API key.
// @Tags Favorites
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} FavoriteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /favorites [get]
func (h *Handler) listFavorites(c *gin.Context) {
	log := h.logger.WithField("method", "listFavorites")

	favorites, err := h.favoriteService.ListFavorites(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToFavoriteResponses(favorites))
}

// @Summary Add a favorite location
// @Description Save a location for the caller. The same coordinates can be saved once. Requires API key.
// @Tags Favorites
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param favorite body AddFavoriteRequest true "Favorite location"
// @Success 201 {object} FavoriteResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /favorites [post]
func (h *Handler) addFavorite(c *gin.Context) {
	var input AddFavoriteRequest
	log := h.logger.WithField("method", "addFavorite")

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

	fav, err := h.favoriteService.AddFavorite(c.Request.Context(), input.Name, *input.Latitude, *input.Longitude)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToFavoriteResponse(fav))
}

// @Summary Remove a favorite location
// @Description Delete a favorite location owned by the caller. Requires API key.
// @Tags Favorites
// @Security ApiKeyAuth
// @Param id path string true "Favorite ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid favorite ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Favorite not found"
// @Router /favorites/{id} [delete]
func (h *Handler) removeFavorite(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "removeFavorite").WithField("id", id)

	if err := h.favoriteService.RemoveFavorite(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear the readings cache
// @Description Remove every cached environmental reading. Requires API key.
// @Tags System
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ClearCacheResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cache [delete]
func (h *Handler) clearCache(c *gin.Context) {
	log := h.logger.WithField("method", "clearCache")

	removed, err := h.landService.ClearCache(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ClearCacheResponse{Removed: removed})
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
