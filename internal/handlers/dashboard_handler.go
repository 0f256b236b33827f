package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/onechair/booking/internal/httperr"
	ucAppointment "github.com/onechair/booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type DashboardHandler struct {
	dashboardUC  *ucAppointment.GetDashboard
	cancelByIDUC *ucAppointment.CancelByID
	blockUC      *ucAppointment.BlockSlot
}

func NewDashboardHandler(
	dashboardUC *ucAppointment.GetDashboard,
	cancelByIDUC *ucAppointment.CancelByID,
	blockUC *ucAppointment.BlockSlot,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC:  dashboardUC,
		cancelByIDUC: cancelByIDUC,
		blockUC:      blockUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BlockRequest struct {
	Time string `form:"time" json:"time" binding:"required"` // YYYY-MM-DD HH:MM
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	view, err := h.dashboardUC.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.Internal(c, "dashboard_failed", "Failed to load dashboard.")
		return
	}

	c.JSON(http.StatusOK, view)
}

// ======================================================
// CANCEL BY ID
// ======================================================

func (h *DashboardHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	// Cancelling an id that no longer exists is still a success; the
	// caller lands back on the dashboard either way.
	existed, err := h.cancelByIDUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Internal(c, "cancel_failed", "Failed to cancel appointment.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cancelled":     existed,
		"dashboard_url": "/api/admin/dashboard",
	})
}

// ======================================================
// BLOCK SLOT
// ======================================================

func (h *DashboardHandler) Block(c *gin.Context) {
	var req BlockRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	ap, err := h.blockUC.Execute(
		c.Request.Context(),
		ucAppointment.BlockInput{Time: req.Time},
	)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}
