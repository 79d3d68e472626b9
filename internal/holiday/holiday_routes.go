package holiday

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	holidays := r.Group("/holidays")
	{
		holidays.GET("",
			middleware.RBACAuthorize(rbacService, "holiday", "read"),
			handler.List,
		)
		holidays.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "holiday", "create"),
			handler.Create,
		)
		holidays.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "holiday", "delete"),
			handler.Delete,
		)
	}
}
