package leave

import (
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	idempotency gin.HandlerFunc,
) {
	leaves := r.Group("/leaves")
	{
		leaves.POST("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "leave", "create"),
			idempotency,
			handler.Submit,
		)
		leaves.GET("/me",
			middleware.RBACAuthorize(rbacService, "leave", "read_own"),
			handler.GetMine,
		)
		leaves.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "leave", "read"),
			handler.GetAll,
		)
		leaves.GET("/:id",
			middleware.RBACAuthorize(rbacService, "leave", "read_own"),
			handler.GetByID,
		)
		leaves.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "leave", "create"),
			handler.Update,
		)
		leaves.PATCH("/:id/status",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "leave", "approve"),
			handler.Transition,
		)
		leaves.GET("/:id/logs",
			middleware.RBACAuthorize(rbacService, "leave_log", "read"),
			handler.GetLogs,
		)
	}

	r.GET("/leave-logs",
		middleware.RBACAuthorize(rbacService, "leave_log", "read"),
		handler.GetAllLogs,
	)

	types := r.Group("/leave-types")
	{
		types.GET("",
			middleware.RBACAuthorize(rbacService, "leave_type", "read"),
			handler.GetTypes,
		)
		types.POST("",
			middleware.RBACAuthorize(rbacService, "leave_type", "create"),
			handler.CreateType,
		)
		types.PUT("/:id",
			middleware.RBACAuthorize(rbacService, "leave_type", "update"),
			handler.UpdateType,
		)
	}

	balances := r.Group("/leave-balances")
	{
		balances.GET("/me",
			middleware.RBACAuthorize(rbacService, "leave_balance", "read_own"),
			handler.GetMyBalances,
		)
		balances.PUT("",
			middleware.RBACAuthorize(rbacService, "leave_balance", "update"),
			handler.SetBalance,
		)
	}
}
