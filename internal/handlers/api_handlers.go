package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/epeers/fundmanager/internal/models"
	"github.com/epeers/fundmanager/internal/services"
	"github.com/gin-gonic/gin"
)

// APIHandler exposes the screen actions as JSON. Backend failures are not
// HTTP errors here; they show up in the returned statusMessage, exactly as on
// the screen.
type APIHandler struct {
	manager *services.FundManager
}

// NewAPIHandler creates a new APIHandler
func NewAPIHandler(manager *services.FundManager) *APIHandler {
	return &APIHandler{
		manager: manager,
	}
}

// State handles GET /api/state
// @Summary Current screen state
// @Description Funds, form draft, lookup result, status message and edit mode as last rendered
// @Tags screen
// @Produce json
// @Success 200 {object} models.StateResponse
// @Router /api/state [get]
func (h *APIHandler) State(c *gin.Context) {
	h.respond(c)
}

// Add handles POST /api/funds
// @Summary Add a fund
// @Description Validate the draft, create the fund on the backend, then refresh the list
// @Tags funds
// @Accept json
// @Produce json
// @Param request body models.Draft true "Form draft (all fields as text)"
// @Success 200 {object} models.StateResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/funds [post]
func (h *APIHandler) Add(c *gin.Context) {
	var d models.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	h.manager.Add(backendContext(c), d)
	h.respond(c)
}

// Update handles PUT /api/funds
// @Summary Update a fund
// @Description Validate the draft and replace the fund keyed by fundId, then refresh the list
// @Tags funds
// @Accept json
// @Produce json
// @Param request body models.Draft true "Form draft (all fields as text)"
// @Success 200 {object} models.StateResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/funds [put]
func (h *APIHandler) Update(c *gin.Context) {
	var d models.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	h.manager.Update(backendContext(c), d)
	h.respond(c)
}

// Delete handles DELETE /api/funds/:id
// @Summary Delete a fund
// @Description Delete the fund on the backend, then refresh the list
// @Tags funds
// @Produce json
// @Param id path int true "Fund ID"
// @Success 200 {object} models.StateResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/funds/{id} [delete]
func (h *APIHandler) Delete(c *gin.Context) {
	id, ok := fundID(c)
	if !ok {
		return
	}

	h.manager.Delete(backendContext(c), id)
	h.respond(c)
}

// Get handles GET /api/funds/:id
// @Summary Fetch a fund by ID
// @Description Look the fund up on the backend and store it as the lookup result
// @Tags funds
// @Produce json
// @Param id path string true "Fund ID as typed"
// @Success 200 {object} models.StateResponse
// @Router /api/funds/{id} [get]
func (h *APIHandler) Get(c *gin.Context) {
	h.manager.Lookup(backendContext(c), c.Param("id"))
	h.respond(c)
}

// Edit handles POST /api/funds/:id/edit
// @Summary Start editing a listed fund
// @Description Load the listed fund into the form and enter update mode
// @Tags screen
// @Produce json
// @Param id path int true "Fund ID"
// @Success 200 {object} models.StateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/funds/{id}/edit [post]
func (h *APIHandler) Edit(c *gin.Context) {
	id, ok := fundID(c)
	if !ok {
		return
	}

	if err := h.manager.Edit(id); err != nil {
		if errors.Is(err, services.ErrFundNotListed) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "fund is not in the current list",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}
	h.respond(c)
}

// Cancel handles POST /api/cancel
// @Summary Leave update mode
// @Description Empty the form and return to create mode without calling the backend
// @Tags screen
// @Produce json
// @Success 200 {object} models.StateResponse
// @Router /api/cancel [post]
func (h *APIHandler) Cancel(c *gin.Context) {
	h.manager.Cancel()
	h.respond(c)
}

// Refresh handles POST /api/refresh
// @Summary Reload the fund list
// @Description Replace the list with the backend's current records
// @Tags funds
// @Produce json
// @Success 200 {object} models.StateResponse
// @Router /api/refresh [post]
func (h *APIHandler) Refresh(c *gin.Context) {
	h.manager.Refresh(backendContext(c))
	h.respond(c)
}

func (h *APIHandler) respond(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewStateResponse(h.manager.Snapshot()))
}

func fundID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid fund ID",
		})
		return 0, false
	}
	return id, true
}
