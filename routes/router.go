// file: routes/router.go
package routes

import (
	"github.com/fontyslads/ctf-portal-sub001/controllers"
	"github.com/fontyslads/ctf-portal-sub001/middlewares"
	"github.com/fontyslads/ctf-portal-sub001/models"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		// --- 用户路由 ---
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", controllers.Register)
			usersPublic.POST("/login", controllers.Login)
		}

		// --- 关卡路由 ---
		flagRoutes := apiV1.Group("/flags")
		{
			// 用户接口
			flagRoutes.GET("", middlewares.JWTAuthMiddleware(), controllers.ListFlags)
			flagRoutes.POST("/:id/submit", middlewares.JWTAuthMiddleware(), controllers.SubmitFlag)
		}

		// --- 工作坊路由 ---
		workshopRoutes := apiV1.Group("/workshop")
		{
			workshopRoutes.GET("/status", controllers.GetWorkshopStatus)
			workshopRoutes.POST("/start", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.StartWorkshop)
			workshopRoutes.PUT("", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.UpsertWorkshop)
		}

		// --- 排行榜 ---
		apiV1.GET("/leaderboard", controllers.GetLeaderboard)

		// --- 管理员接口 ---
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.POST("/flags", controllers.AdminCreateFlag)
			adminRoutes.GET("/flags", controllers.AdminListFlags)
			adminRoutes.GET("/submissions", controllers.AdminGetSubmissionLogs)
		}
	}

	return r
}
