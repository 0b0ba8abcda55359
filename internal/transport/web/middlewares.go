package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/NgocHien2004/HotelBooking-sub000/internal/domain"
	"github.com/NgocHien2004/HotelBooking-sub000/pkg/auth"
)

func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims, err := auth.ParseValidate(secret, strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set("sub", claims.Sub)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		v, _ := c.Get("role")
		role, _ := v.(string)
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// requester pulls the authenticated identity set by JWTAuth.
func requester(c *gin.Context) (userID string, isAdmin bool) {
	sub, _ := c.Get("sub")
	userID, _ = sub.(string)
	role, _ := c.Get("role")
	r, _ := role.(string)
	return userID, r == string(domain.RoleAdmin)
}
