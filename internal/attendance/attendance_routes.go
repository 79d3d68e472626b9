package attendance

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/gin-gonic/gin"
)

// markLimit throttles self-marking per employee.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, markLimit gin.HandlerFunc) {
	attendances := r.Group("/attendances")
	{
		attendances.POST("/mark",
			markLimit,
			middleware.RBACAuthorize(rbacService, "attendance", "mark"),
			handler.MarkSelf,
		)
		attendances.GET("/me",
			middleware.RBACAuthorize(rbacService, "attendance", "read_own"),
			handler.GetMine,
		)
		attendances.POST("/bulk",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "attendance", "bulk"),
			handler.MarkBulk,
		)
		attendances.GET("/summary",
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			handler.Summary,
		)
	}
}
