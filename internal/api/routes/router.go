package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrackr/internal/api/handlers"
	"github.com/linskybing/bugtrackr/internal/api/middleware"
	"github.com/linskybing/bugtrackr/internal/application"
	"github.com/linskybing/bugtrackr/internal/config"
	"github.com/linskybing/bugtrackr/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/linskybing/bugtrackr/docs"
)

func RegisterRoutes(r *gin.Engine, repos *repository.Repos) {
	services_instance := application.New(repos)
	handlers_instance := handlers.New(services_instance)
	authMiddleware := middleware.NewAuth()

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.POST("/auth/register", handlers_instance.User.Register)
		api.POST("/auth/login", handlers_instance.User.Login)
	}

	auth := api.Group("")
	auth.Use(middleware.JWTAuthMiddleware(repos))
	{
		auth.GET("/users", handlers_instance.User.GetUsers)

		projects := auth.Group("/projects")
		{
			projects.GET("", handlers_instance.Project.GetProjects)
			projects.GET("/:id", handlers_instance.Project.GetProjectByID)
			projects.POST("", authMiddleware.Admin(), handlers_instance.Project.CreateProject)
			projects.PUT("/:id", authMiddleware.Admin(), handlers_instance.Project.UpdateProject)
			projects.DELETE("/:id", authMiddleware.Admin(), handlers_instance.Project.DeleteProject)
		}

		bugs := auth.Group("/bugs")
		{
			bugs.GET("", handlers_instance.Bug.GetBugs)
			bugs.GET("/:id", handlers_instance.Bug.GetBugByID)
			bugs.POST("", handlers_instance.Bug.CreateBug)
			bugs.PUT("/:id", handlers_instance.Bug.UpdateBug)
			bugs.DELETE("/:id", handlers_instance.Bug.DeleteBug)
		}
	}

	r.NoRoute(handlers.NoRoute(config.FrontendDir))
}
