package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/service"
)

type AuthHandler struct {
	svc *service.AuthSvc
}

func NewAuthHandler(svc *service.AuthSvc) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Name     string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.svc.Register(c.Request.Context(), in.Email, in.Password, in.Name)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"id": u.ID, "email": u.Email, "name": u.Name, "role": u.Role})
}

// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	u, token, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"access_token": token, "role": u.Role})
}
