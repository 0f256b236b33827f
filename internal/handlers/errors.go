package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/onechair/booking/internal/httperr"
)

// mapBusinessError turns a use case rejection into its HTTP shape. The
// rejection code itself is surfaced verbatim so clients can render the
// matching message.
func mapBusinessError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case httperr.CodeInvalid:
		httperr.BadRequest(c, httperr.CodeInvalid, "Malformed time value.")
	case httperr.CodePast:
		httperr.BadRequest(c, httperr.CodePast, "That time has already passed.")
	case httperr.CodeConflict:
		httperr.Conflict(c, httperr.CodeConflict, "That slot is already taken.")
	case httperr.CodeNotFound:
		httperr.NotFound(c, httperr.CodeNotFound, "No appointment at that time.")
	case httperr.CodeAuthFailed:
		httperr.Forbidden(c, httperr.CodeAuthFailed, "Name and phone do not match.")
	default:
		httperr.Internal(c, "internal_error", "Something went wrong.")
	}
}
