package leads

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/YuvarajaDev/NoeonApi/models"
	"github.com/YuvarajaDev/NoeonApi/notify"
	"github.com/YuvarajaDev/NoeonApi/store"
	"github.com/YuvarajaDev/NoeonApi/validation"
)

// Notifier dispatches lead notifications without blocking the caller.
type Notifier interface {
	Dispatch(lead notify.LeadData)
}

// Handler serves the lead endpoints. A nil store runs the
// notification-only variant: submissions are accepted and fanned out
// but never persisted, and the admin CRUD routes are not mounted.
type Handler struct {
	store    *store.LeadStore
	notifier Notifier
}

func New(s *store.LeadStore, n Notifier) *Handler {
	return &Handler{store: s, notifier: n}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/leads", h.CreateLead)
	if h.store != nil {
		r.GET("/leads", h.ListLeads)
		r.GET("/leads/:id", h.GetLead)
		r.PUT("/leads/:id", h.UpdateLead)
		r.DELETE("/leads/:id", h.DeleteLead)
	}
}

// CreateLead accepts a form submission. The response reflects the
// persistence outcome only: notifications are dispatched after the
// record is stored and their results never change the status code.
func (h *Handler) CreateLead(c *gin.Context) {
	var in models.LeadInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}
	if verr := validation.ValidateLead(in); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": verr.Message})
		return
	}

	snapshot := notify.LeadData{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Course:  in.CourseLookingFor,
		Message: in.Message,
	}

	var data models.Lead
	if h.store != nil {
		lead, err := h.store.Insert(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to submit lead. Please try again.",
				"error":   err.Error(),
			})
			return
		}
		data = lead
	} else {
		data = models.Lead{
			Name:             in.Name,
			Email:            in.Email,
			Phone:            in.Phone,
			CourseLookingFor: in.CourseLookingFor,
			CreatedAt:        time.Now(),
		}
		if in.Message != "" {
			msg := in.Message
			data.Message = &msg
		}
	}

	if h.notifier != nil {
		h.notifier.Dispatch(snapshot)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Lead submitted successfully! We will contact you soon.",
		"data":    data,
	})
}

func (h *Handler) ListLeads(c *gin.Context) {
	leads, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch leads",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(leads),
		"data":    leads,
	})
}

func (h *Handler) GetLead(c *gin.Context) {
	id, ok := h.leadID(c)
	if !ok {
		return
	}
	lead, err := h.store.GetByID(c.Request.Context(), id)
	if store.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Lead not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch lead",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": lead})
}

func (h *Handler) UpdateLead(c *gin.Context) {
	id, ok := h.leadID(c)
	if !ok {
		return
	}
	var in models.LeadInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}
	if verr := validation.ValidateLead(in); verr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": verr.Message})
		return
	}

	lead, err := h.store.Update(c.Request.Context(), id, in)
	if store.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Lead not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update lead",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Lead updated successfully",
		"data":    lead,
	})
}

func (h *Handler) DeleteLead(c *gin.Context) {
	id, ok := h.leadID(c)
	if !ok {
		return
	}
	_, err := h.store.Delete(c.Request.Context(), id)
	if store.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Lead not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete lead",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Lead deleted successfully"})
}

// leadID parses the :id path parameter. A non-numeric id cannot match
// any row, so it is reported as not found rather than a server error.
func (h *Handler) leadID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Lead not found"})
		return 0, false
	}
	return uint(id), true
}
