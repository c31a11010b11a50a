// Package http provides HTTP handlers for the drinks menu.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/drinks/internal/auth/http"
	"github.com/allisson/drinks/internal/drinks/http/dto"
	drinksUseCase "github.com/allisson/drinks/internal/drinks/usecase"
	"github.com/allisson/drinks/internal/httputil"
	customValidation "github.com/allisson/drinks/internal/validation"
)

// DrinkHandler handles HTTP requests for the drinks menu.
// Authorization happens in the route middleware; handlers only parse, call the use case
// and render.
type DrinkHandler struct {
	drinkUseCase drinksUseCase.DrinkUseCase
	logger       *slog.Logger
}

// NewDrinkHandler creates a new drink handler with required dependencies.
func NewDrinkHandler(drinkUseCase drinksUseCase.DrinkUseCase, logger *slog.Logger) *DrinkHandler {
	return &DrinkHandler{
		drinkUseCase: drinkUseCase,
		logger:       logger,
	}
}

// ListHandler lists the menu in short form.
// GET /drinks - Public.
func (h *DrinkHandler) ListHandler(c *gin.Context) {
	drinks, err := h.drinkUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDrinksToShortResponse(drinks))
}

// ListDetailHandler lists the menu with recipes.
// GET /drinks-detail - Requires get:details.
func (h *DrinkHandler) ListDetailHandler(c *gin.Context) {
	drinks, err := h.drinkUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDrinksToLongResponse(drinks))
}

// CreateHandler adds a drink to the menu.
// POST /drinks - Requires post:drinks.
func (h *DrinkHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	drink, err := h.drinkUseCase.Create(c.Request.Context(), req.Title, req.ToRecipe())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	h.logChange(c, "drink created", drink.ID)

	c.JSON(http.StatusOK, dto.MapDrinkIDToMutationResponse(drink.ID))
}

// UpdateHandler renames a drink.
// PATCH /drinks/:id - Requires patch:drink.
func (h *DrinkHandler) UpdateHandler(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	drink, err := h.drinkUseCase.UpdateTitle(c.Request.Context(), id, req.Title)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	h.logChange(c, "drink renamed", drink.ID)

	c.JSON(http.StatusOK, dto.MapDrinkIDToMutationResponse(drink.ID))
}

// DeleteHandler removes a drink.
// DELETE /drinks/:id - Requires delete:drinks.
func (h *DrinkHandler) DeleteHandler(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.drinkUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	h.logChange(c, "drink deleted", id)

	c.JSON(http.StatusOK, dto.MapDrinkIDToMutationResponse(id))
}

// logChange records a menu change with the subject of the token that made it.
// The subject is empty when the route was made public by the route policy.
func (h *DrinkHandler) logChange(c *gin.Context, msg string, drinkID int64) {
	var subject string
	if claims, ok := authHTTP.GetClaims(c.Request.Context()); ok {
		subject = claims.Subject()
	}
	h.logger.Info(msg, slog.Int64("drink_id", drinkID), slog.String("subject", subject))
}
