package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ucAppointment "github.com/onechair/booking/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	scheduleUC  *ucAppointment.GetSchedule
	bookUC      *ucAppointment.Book
	cancelOwnUC *ucAppointment.CancelOwn
}

func NewPublicHandler(
	scheduleUC *ucAppointment.GetSchedule,
	bookUC *ucAppointment.Book,
	cancelOwnUC *ucAppointment.CancelOwn,
) *PublicHandler {
	return &PublicHandler{
		scheduleUC:  scheduleUC,
		bookUC:      bookUC,
		cancelOwnUC: cancelOwnUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type BookRequest struct {
	Name  string `form:"name" json:"name" binding:"required"`
	Phone string `form:"phone" json:"phone" binding:"required"`
	Time  string `form:"time" json:"time" binding:"required"` // YYYY-MM-DD HH:MM
}

type CancelOwnRequest struct {
	Name  string `form:"name" json:"name" binding:"required"`
	Phone string `form:"phone" json:"phone" binding:"required"`
	Time  string `form:"time" json:"time" binding:"required"`
}

////////////////////////////////////////////////////////
// SCHEDULE
////////////////////////////////////////////////////////

func (h *PublicHandler) Schedule(c *gin.Context) {
	view, err := h.scheduleUC.Execute(c.Request.Context())
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

////////////////////////////////////////////////////////
// BOOK
////////////////////////////////////////////////////////

func (h *PublicHandler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	ap, err := h.bookUC.Execute(
		c.Request.Context(),
		ucAppointment.BookInput{
			Name:  req.Name,
			Phone: req.Phone,
			Time:  req.Time,
		},
	)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

////////////////////////////////////////////////////////
// SELF-SERVICE CANCEL
////////////////////////////////////////////////////////

func (h *PublicHandler) CancelOwn(c *gin.Context) {
	var req CancelOwnRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	err := h.cancelOwnUC.Execute(
		c.Request.Context(),
		ucAppointment.CancelOwnInput{
			Name:  req.Name,
			Phone: req.Phone,
			Time:  req.Time,
		},
	)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
