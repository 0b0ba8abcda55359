package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/domain"
	"github.com/NgocHien2004/HotelBooking-sub000/internal/service"
)

type PaymentHandler struct {
	svc      *service.PaymentSvc
	bookings *service.BookingSvc
}

func NewPaymentHandler(svc *service.PaymentSvc, bookings *service.BookingSvc) *PaymentHandler {
	return &PaymentHandler{svc: svc, bookings: bookings}
}

// POST /v1/payments
func (h *PaymentHandler) Record(c *gin.Context) {
	var in struct {
		BookingID string `json:"booking_id" binding:"required"`
		Amount    int64  `json:"amount" binding:"required"`
		Method    string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.requireOwnerOrAdmin(c, in.BookingID); err != nil {
		failErr(c, err)
		return
	}

	p, err := h.svc.Record(c.Request.Context(), in.BookingID, in.Amount, in.Method)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, p)
}

// POST /v1/payments/:id/refund (ADMIN)
func (h *PaymentHandler) Refund(c *gin.Context) {
	p, err := h.svc.Refund(c.Request.Context(), c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, p)
}

// GET /v1/bookings/:id/payments
func (h *PaymentHandler) Ledger(c *gin.Context) {
	bookingID := c.Param("id")
	if err := h.requireOwnerOrAdmin(c, bookingID); err != nil {
		failErr(c, err)
		return
	}

	entries, paid, remaining, err := h.svc.Ledger(c.Request.Context(), bookingID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{
		"payments":  entries,
		"paid":      paid,
		"remaining": remaining,
	})
}

func (h *PaymentHandler) requireOwnerOrAdmin(c *gin.Context, bookingID string) error {
	userID, isAdmin := requester(c)
	if isAdmin {
		return nil
	}
	b, err := h.bookings.Get(c.Request.Context(), bookingID)
	if err != nil {
		return err
	}
	if b.UserID != userID {
		return domain.ErrForbidden
	}
	return nil
}
