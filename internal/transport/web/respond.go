package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/domain"
)

// envelope is the wire shape of every response: {success, data?, message?}.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Success: true, Data: data})
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, envelope{Success: false, Message: msg})
}

// failErr maps domain error kinds to status codes. Anything unrecognized is
// a persistence or programming fault: log it, answer 500 without detail.
func failErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidMethod),
		errors.Is(err, domain.ErrInvalidStatus):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrRoomUnavailable),
		errors.Is(err, domain.ErrNotCancelable),
		errors.Is(err, domain.ErrOverPayment),
		errors.Is(err, domain.ErrTerminalStatus),
		errors.Is(err, domain.ErrEmailTaken):
		fail(c, http.StatusConflict, err.Error())
	default:
		log.Printf("[web] %s %s: %v", c.Request.Method, c.FullPath(), err)
		fail(c, http.StatusInternalServerError, "internal error")
	}
}
