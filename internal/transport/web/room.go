package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/domain"
	"github.com/NgocHien2004/HotelBooking-sub000/internal/repository"
)

// RoomHandler is thin admin CRUD over the inventory tables; the booking
// core only ever reads them.
type RoomHandler struct {
	repo *repository.RoomRepo
}

func NewRoomHandler(repo *repository.RoomRepo) *RoomHandler {
	return &RoomHandler{repo: repo}
}

// GET /v1/rooms?page=1&page_size=20&status=Available
func (h *RoomHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	rooms, err := h.repo.List(c.Request.Context(), int32(page-1), int32(size), c.Query("status"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, rooms)
}

// GET /v1/rooms/:id
func (h *RoomHandler) Get(c *gin.Context) {
	room, err := h.repo.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, room)
}

// POST /v1/rooms (ADMIN)
func (h *RoomHandler) Create(c *gin.Context) {
	var in struct {
		RoomTypeID string `json:"room_type_id" binding:"required"`
		RoomNumber string `json:"room_number" binding:"required"`
		Status     string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if in.Status != "" && !domain.RoomStatus(in.Status).Valid() {
		fail(c, http.StatusBadRequest, "invalid room status")
		return
	}
	if _, err := h.repo.RoomTypeByID(c.Request.Context(), in.RoomTypeID); err != nil {
		failErr(c, err)
		return
	}

	room := &domain.Room{RoomTypeID: in.RoomTypeID, RoomNumber: in.RoomNumber, Status: domain.RoomStatus(in.Status)}
	if err := h.repo.Create(c.Request.Context(), room); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, room)
}

// PUT /v1/rooms/:id (ADMIN)
func (h *RoomHandler) Update(c *gin.Context) {
	var in struct {
		RoomNumber string `json:"room_number"`
		Status     string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if in.Status != "" && !domain.RoomStatus(in.Status).Valid() {
		fail(c, http.StatusBadRequest, "invalid room status")
		return
	}

	room, err := h.repo.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	if in.RoomNumber != "" {
		room.RoomNumber = in.RoomNumber
	}
	if in.Status != "" {
		room.Status = domain.RoomStatus(in.Status)
	}
	if err := h.repo.Update(c.Request.Context(), room); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, room)
}

// DELETE /v1/rooms/:id (ADMIN)
func (h *RoomHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, nil)
}

// POST /v1/hotels (ADMIN)
func (h *RoomHandler) CreateHotel(c *gin.Context) {
	var in struct {
		Name    string `json:"name" binding:"required"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	hotel := &domain.Hotel{Name: in.Name, Address: in.Address}
	if err := h.repo.CreateHotel(c.Request.Context(), hotel); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, hotel)
}

// POST /v1/room-types (ADMIN)
func (h *RoomHandler) CreateRoomType(c *gin.Context) {
	var in struct {
		HotelID     string `json:"hotel_id" binding:"required"`
		Name        string `json:"name" binding:"required"`
		NightlyRate int64  `json:"nightly_rate" binding:"required,gt=0"`
		Capacity    int32  `json:"capacity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	rt := &domain.RoomType{HotelID: in.HotelID, Name: in.Name, NightlyRate: in.NightlyRate, Capacity: in.Capacity}
	if err := h.repo.CreateRoomType(c.Request.Context(), rt); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, rt)
}
