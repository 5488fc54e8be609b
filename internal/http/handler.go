package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"plate-registry/internal/http/middleware"
	"plate-registry/internal/model"
	"plate-registry/internal/service"
	"plate-registry/internal/validator"
)

type Handler struct {
	registrationService *service.RegistrationService
	log                 zerolog.Logger
}

func NewHandler(registrationService *service.RegistrationService, log zerolog.Logger) *Handler {
	return &Handler{
		registrationService: registrationService,
		log:                 log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := r.Group("/")
	protected.Use(authMiddleware)

	plates := protected.Group("/plates")
	{
		plates.POST("", h.registerPlate)
		plates.GET("/count", h.countPlates)
	}
}

type registrationResponse struct {
	Plate      string                    `json:"plate"`
	Category   model.CustomerCategory    `json:"category"`
	Outcome    model.RegistrationOutcome `json:"outcome"`
	Violations []string                  `json:"violations,omitempty"`
}

func (h *Handler) registerPlate(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}
	if !principal.CanRegisterPlates() {
		h.handleError(c, service.ErrPermissionDenied)
		return
	}

	var req struct {
		Plate    string `json:"plate" binding:"required"`
		Category string `json:"category" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	category, err := model.ParseCustomerCategory(req.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	outcome, err := h.registrationService.Register(c.Request.Context(), req.Plate, category)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := registrationResponse{
		Plate:    req.Plate,
		Category: category,
		Outcome:  outcome,
	}

	switch outcome {
	case model.RegistrationOutcomeSuccess:
		h.log.Info().
			Str("plate", req.Plate).
			Str("category", string(category)).
			Str("user_id", principal.UserID.String()).
			Msg("plate registered")
		c.JSON(http.StatusCreated, successResponse(resp))
	case model.RegistrationOutcomeInvalidFormat:
		resp.Violations = validator.Violations(req.Plate, category)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid plate format", "data": resp})
	case model.RegistrationOutcomeNotAvailable:
		c.JSON(http.StatusConflict, gin.H{"error": "plate not available", "data": resp})
	default:
		h.handleError(c, errors.New("unexpected registration outcome "+string(outcome)))
	}
}

func (h *Handler) countPlates(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	count, err := h.registrationService.CountRegistered(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"registered": count}))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}
