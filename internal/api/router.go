package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/alfredhq/alfred/docs"
	"github.com/alfredhq/alfred/internal/api/controller"
	"github.com/alfredhq/alfred/internal/api/middleware"
)

// Controllers groups every handler the router mounts.
type Controllers struct {
	Auth         *controller.AuthController
	Chat         *controller.ChatController
	Transactions *controller.TransactionController
	Tasks        *controller.TaskController
	Lists        *controller.ListController
	Projects     *controller.ProjectController
}

// RegisterRoutes mounts /health, /swagger and the /api/v1 routes. Everything
// under /api/v1 but auth requires a JWT signed with jwtSecret.
func RegisterRoutes(r *gin.Engine, ctrl Controllers, jwtSecret string) {
	r.Use(middleware.Cors())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := r.Group("/api/v1/auth")
	{
		public.POST("/register", ctrl.Auth.Register)
		public.POST("/login", ctrl.Auth.Login)
	}

	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth(jwtSecret))
	{
		protected.POST("/chat", ctrl.Chat.Send)
		protected.GET("/chat/messages", ctrl.Chat.Messages)

		protected.GET("/transactions", ctrl.Transactions.List)
		protected.POST("/transactions", ctrl.Transactions.Create)
		protected.GET("/transactions/summary", ctrl.Transactions.Summary)
		protected.PUT("/transactions/:id", ctrl.Transactions.Update)
		protected.DELETE("/transactions/:id", ctrl.Transactions.Delete)

		protected.GET("/tasks", ctrl.Tasks.List)
		protected.POST("/tasks", ctrl.Tasks.Create)
		protected.POST("/tasks/:id/complete", ctrl.Tasks.Complete)
		protected.DELETE("/tasks/:id", ctrl.Tasks.Delete)

		protected.GET("/lists", ctrl.Lists.Lists)
		protected.POST("/lists", ctrl.Lists.Create)
		protected.DELETE("/lists/:id", ctrl.Lists.Delete)
		protected.POST("/lists/:id/items", ctrl.Lists.AddItem)
		protected.POST("/lists/:id/items/:itemId/toggle", ctrl.Lists.ToggleItem)
		protected.DELETE("/lists/:id/items/:itemId", ctrl.Lists.DeleteItem)

		protected.GET("/projects", ctrl.Projects.List)
		protected.POST("/projects", ctrl.Projects.Create)
		protected.POST("/projects/:id/contribute", ctrl.Projects.Contribute)
		protected.DELETE("/projects/:id", ctrl.Projects.Delete)
	}
}
