package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/epeers/fundmanager/internal/models"
	"github.com/epeers/fundmanager/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ScreenHandler serves the fund management screen. Every action posts back
// here and redirects to the screen, which renders the resulting state.
type ScreenHandler struct {
	manager *services.FundManager
}

// NewScreenHandler creates a new ScreenHandler
func NewScreenHandler(manager *services.FundManager) *ScreenHandler {
	return &ScreenHandler{
		manager: manager,
	}
}

// Index handles GET /
func (h *ScreenHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", newScreenView(h.manager.Snapshot()))
}

// Add handles POST /funds/add
func (h *ScreenHandler) Add(c *gin.Context) {
	var d models.Draft
	if err := c.ShouldBind(&d); err != nil {
		log.Warnf("Add: unreadable form: %v", err)
		h.backToScreen(c)
		return
	}

	h.manager.Add(backendContext(c), d)
	h.backToScreen(c)
}

// Update handles POST /funds/update
func (h *ScreenHandler) Update(c *gin.Context) {
	var d models.Draft
	if err := c.ShouldBind(&d); err != nil {
		log.Warnf("Update: unreadable form: %v", err)
		h.backToScreen(c)
		return
	}

	h.manager.Update(backendContext(c), d)
	h.backToScreen(c)
}

// Cancel handles POST /funds/cancel
func (h *ScreenHandler) Cancel(c *gin.Context) {
	h.manager.Cancel()
	h.backToScreen(c)
}

// Edit handles POST /funds/:id/edit
func (h *ScreenHandler) Edit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		log.Warnf("Edit: invalid fund ID %q", c.Param("id"))
		h.backToScreen(c)
		return
	}

	if err := h.manager.Edit(id); err != nil {
		log.Warnf("Edit: fund %d: %v", id, err)
	}
	h.backToScreen(c)
}

// Delete handles POST /funds/:id/delete
func (h *ScreenHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		log.Warnf("Delete: invalid fund ID %q", c.Param("id"))
		h.backToScreen(c)
		return
	}

	h.manager.Delete(backendContext(c), id)
	h.backToScreen(c)
}

// Lookup handles POST /lookup
func (h *ScreenHandler) Lookup(c *gin.Context) {
	var req models.LookupRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Warnf("Lookup: unreadable form: %v", err)
		h.backToScreen(c)
		return
	}

	h.manager.Lookup(backendContext(c), req.LookupID)
	h.backToScreen(c)
}

func (h *ScreenHandler) backToScreen(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

// backendContext keeps a backend call running after the browser goes away;
// in-flight calls are never cancelled.
func backendContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}
