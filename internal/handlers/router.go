package handlers

import (
	"net/http"

	_ "github.com/epeers/fundmanager/docs"
	"github.com/epeers/fundmanager/internal/middleware"
	"github.com/epeers/fundmanager/internal/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires the screen, the JSON API and the docs onto one engine
func NewRouter(manager *services.FundManager) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	router.SetHTMLTemplate(loadTemplates())
	router.StaticFS("/static", staticFiles())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Screen routes
	screen := NewScreenHandler(manager)
	router.GET("/", screen.Index)
	router.POST("/funds/add", screen.Add)
	router.POST("/funds/update", screen.Update)
	router.POST("/funds/cancel", screen.Cancel)
	router.POST("/funds/:id/edit", screen.Edit)
	router.POST("/funds/:id/delete", screen.Delete)
	router.POST("/lookup", screen.Lookup)

	// JSON routes
	api := NewAPIHandler(manager)
	apiGroup := router.Group("/api")
	apiGroup.GET("/state", api.State)
	apiGroup.POST("/funds", api.Add)
	apiGroup.PUT("/funds", api.Update)
	apiGroup.GET("/funds/:id", api.Get)
	apiGroup.DELETE("/funds/:id", api.Delete)
	apiGroup.POST("/funds/:id/edit", api.Edit)
	apiGroup.POST("/cancel", api.Cancel)
	apiGroup.POST("/refresh", api.Refresh)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
