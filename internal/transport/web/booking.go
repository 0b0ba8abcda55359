package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/domain"
	"github.com/NgocHien2004/HotelBooking-sub000/internal/service"
)

type BookingHandler struct {
	svc *service.BookingSvc
}

func NewBookingHandler(svc *service.BookingSvc) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// POST /v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var in struct {
		RoomID   string `json:"room_id" binding:"required"`
		CheckIn  string `json:"check_in" binding:"required"`  // 2006-01-02
		CheckOut string `json:"check_out" binding:"required"` // 2006-01-02
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	userID, _ := requester(c)
	b, err := h.svc.Create(c.Request.Context(), userID, in.RoomID, in.CheckIn, in.CheckOut)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, b)
}

// GET /v1/bookings?page=1&page_size=20&room_id=...&user_id=...
// Guests see their own bookings; admins may filter by any user.
func (h *BookingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}

	userID, isAdmin := requester(c)
	filterUser := userID
	if isAdmin {
		filterUser = c.Query("user_id")
	}
	list, total, err := h.svc.List(c.Request.Context(), int32(page-1), int32(size), filterUser, c.Query("room_id"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"bookings": list, "total": total})
}

// GET /v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.ownBooking(c)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, b)
}

// PUT /v1/bookings/:id
// Guests may move the dates of their own Pending booking; admins may also
// override the status.
func (h *BookingHandler) Update(c *gin.Context) {
	var in struct {
		CheckIn  string `json:"check_in" binding:"required"`
		CheckOut string `json:"check_out" binding:"required"`
		Status   string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.ownBooking(c)
	if err != nil {
		failErr(c, err)
		return
	}
	_, isAdmin := requester(c)
	if !isAdmin && (b.Status != domain.BookingPending || in.Status != "") {
		failErr(c, domain.ErrForbidden)
		return
	}

	b, err = h.svc.Update(c.Request.Context(), b.ID, in.CheckIn, in.CheckOut, in.Status)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, b)
}

// POST /v1/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, isAdmin := requester(c)
	b, err := h.svc.Cancel(c.Request.Context(), c.Param("id"), userID, isAdmin)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, b)
}

// GET /v1/bookings/:id/can-cancel
func (h *BookingHandler) CanCancel(c *gin.Context) {
	userID, _ := requester(c)
	can, err := h.svc.CanCancel(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"can_cancel": can})
}

// PATCH /v1/bookings/:id/status (ADMIN)
func (h *BookingHandler) SetStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	b, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), in.Status)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, b)
}

// ownBooking fetches the booking and enforces owner-or-admin access.
func (h *BookingHandler) ownBooking(c *gin.Context) (*domain.Booking, error) {
	b, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		return nil, err
	}
	userID, isAdmin := requester(c)
	if !isAdmin && b.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return b, nil
}
