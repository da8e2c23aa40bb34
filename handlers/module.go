package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/business-launch/modules-api/middleware"
	"github.com/business-launch/modules-api/models"
	"github.com/business-launch/modules-api/services"
	"github.com/business-launch/modules-api/utils"
)

// ModuleHandler drives the module list and detail screens: load-or-draft,
// create, edit, save and delete, all against an injected ModuleStore.
type ModuleHandler struct {
	Store services.ModuleStore
	WS    *WSHandler
}

func NewModuleHandler(store services.ModuleStore, ws *WSHandler) *ModuleHandler {
	return &ModuleHandler{Store: store, WS: ws}
}

// ListModules returns every module owned by the caller.
func (h *ModuleHandler) ListModules(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	modules, err := h.Store.ListByOwner(userID)
	if err != nil {
		storeError(c, err, "Failed to fetch modules")
		return
	}

	c.JSON(http.StatusOK, modules)
}

// GetModule returns one module, or a fresh draft when the route parameter is
// the literal "new".
func (h *ModuleHandler) GetModule(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	if id == "new" {
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}
		c.JSON(http.StatusOK, services.NewDraft(userID))
		return
	}

	module, err := h.Store.GetByID(id)
	if err != nil {
		storeError(c, err, "Failed to fetch module")
		return
	}
	if module.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, module)
}

// CreateModule persists a draft from the creation form. Module fields are
// not validated here; required-field checks belong to the UI.
func (h *ModuleHandler) CreateModule(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req models.CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := models.BusinessModule{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Income:      req.Income,
		Tasks:       req.Tasks,
	}
	if draft.Tasks == nil {
		draft.Tasks = []models.Task{}
	}

	record, err := h.Store.Create(draft)
	if err != nil {
		storeError(c, err, "Failed to create module")
		return
	}

	utils.LogModuleAction("created", record.ID, userID)
	h.WS.BroadcastUpdate(userID, "module_created", record.ID)

	c.JSON(http.StatusCreated, record)
}

// UpdateModule replaces a stored module wholesale. Any field missing from
// the request body is dropped, so clients always send a fully populated
// record. Income figures are stored exactly as given; the creation-time
// normalization does not run here.
func (h *ModuleHandler) UpdateModule(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	existing, err := h.Store.GetByID(id)
	if err != nil {
		storeError(c, err, "Failed to fetch module")
		return
	}
	if existing.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var req models.CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := existing
	record.Name = req.Name
	record.Description = req.Description
	record.Type = req.Type
	record.Income = req.Income
	record.Tasks = req.Tasks
	if record.Tasks == nil {
		record.Tasks = []models.Task{}
	}

	if err := h.Store.Update(id, record); err != nil {
		storeError(c, err, "Failed to save module")
		return
	}

	utils.LogModuleAction("updated", id, userID)
	h.WS.BroadcastUpdate(userID, "module_updated", id)

	c.JSON(http.StatusOK, record)
}

// EditModule applies an ordered batch of tagged edit commands to a stored
// module and persists the result as a full overwrite.
func (h *ModuleHandler) EditModule(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	module, err := h.Store.GetByID(id)
	if err != nil {
		storeError(c, err, "Failed to fetch module")
		return
	}
	if module.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var req models.EditModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	module = services.ApplyEdits(module, req.Commands)

	if err := h.Store.Update(id, module); err != nil {
		storeError(c, err, "Failed to save module")
		return
	}

	utils.LogModuleAction("updated", id, userID)
	h.WS.BroadcastUpdate(userID, "module_updated", id)

	c.JSON(http.StatusOK, module)
}

// DeleteModule removes a module permanently. A repeat delete surfaces the
// not-found error rather than absorbing it.
func (h *ModuleHandler) DeleteModule(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	existing, err := h.Store.GetByID(id)
	if err != nil {
		storeError(c, err, "Failed to fetch module")
		return
	}
	if existing.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if err := h.Store.Delete(id); err != nil {
		storeError(c, err, "Failed to delete module")
		return
	}

	utils.LogModuleAction("deleted", id, userID)
	h.WS.BroadcastUpdate(userID, "module_deleted", id)

	c.JSON(http.StatusOK, gin.H{"message": "Module deleted successfully"})
}

// NormalizeIncome recomputes the full income 4-tuple from one edited period.
// The creation form calls this on every income keystroke; the edit screen
// never does.
func (h *ModuleHandler) NormalizeIncome(c *gin.Context) {
	var req models.NormalizeIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.NormalizeIncome(req.Period, req.Value))
}

func storeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
	case errors.Is(err, services.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": fallback})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
