package app

import (
	"github.com/gin-gonic/gin"
	"github.com/nabeelsyed11/Kimia/internal/middleware"
	"github.com/nabeelsyed11/Kimia/internal/modules/auth"
	"github.com/nabeelsyed11/Kimia/internal/modules/blog"
	"github.com/nabeelsyed11/Kimia/internal/modules/property"
	"github.com/nabeelsyed11/Kimia/internal/modules/upload"
	"github.com/nabeelsyed11/Kimia/internal/pkg/response"
)

func (a *App) registerRoutes(propStore property.Store, blogStore blog.Store) error {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not Found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	authMW := middleware.Auth(a.tokens)
	adminMW := middleware.RequireAdmin()

	api := r.Group("/api")

	authSvc, err := auth.NewService(a.cfg, a.tokens)
	if err != nil {
		return err
	}
	auth.NewHandler(authSvc).RegisterRoutes(api)
	property.NewHandler(propStore).RegisterRoutes(api, authMW, adminMW)
	blog.NewHandler(blogStore).RegisterRoutes(api, authMW, adminMW)
	upload.NewHandler().RegisterRoutes(api, authMW, adminMW)

	return nil
}
