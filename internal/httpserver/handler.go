package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authHTTP "study-deadline-engine/internal/auth/delivery/http"
	deadlineHTTP "study-deadline-engine/internal/deadline/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	authHTTP.RegisterRoutes(api, authHTTP.New(srv.l, srv.authUC), srv.middleware)
	srv.l.Infof(ctx, "Auth domain registered")

	deadlineHTTP.RegisterRoutes(api, deadlineHTTP.New(srv.l, srv.deadlineUC), srv.middleware)
	srv.l.Infof(ctx, "Deadline domain registered")
}
