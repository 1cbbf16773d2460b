package router

import (
	"net/http"
	"strings"
	"time"

	"prospector-api/docs"
	"prospector-api/internal/config"
	"prospector-api/internal/handler"
	"prospector-api/internal/logger"
	"prospector-api/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// New builds the HTTP engine: middleware, CORS, API routes under cfg.APIPrefix, metrics and docs.
func New(cfg *config.Config, svc handler.ProspectService) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.RequestID())
	engine.Use(logger.RequestLogger())
	engine.Use(metrics.Middleware())
	engine.Use(cors.New(corsConfig(cfg)))

	api := engine.Group(cfg.APIPrefix)
	api.GET("/health", handler.Health)
	api.GET("/", handler.Root)
	handler.NewProspectHandler(svc).RegisterRoutes(api)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	docs.SwaggerInfo.BasePath = cfg.APIPrefix
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return engine
}

// corsConfig allows every origin, method and header unless CORS_ALLOW_ALL is off.
// Allow-all is a development setting and must be narrowed before production exposure.
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{logger.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if cfg.CORSAllowAll {
		c.AllowAllOrigins = true
		return c
	}

	c.AllowOrigins = cfg.AllowedOrigins()
	c.AllowCredentials = true
	c.AllowWildcard = containsWildcard(c.AllowOrigins)
	return c
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if strings.Contains(o, "*") {
			return true
		}
	}
	return false
}
