package restapi

import (
	"net/http"

	"bridge_sdk/internal/infrastructure/configloader"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const swaggerSpecRoute = "/docs/swagger.yaml"

// SetupRouter настраивает и возвращает экземпляр Gin роутера.
func SetupRouter(cfg configloader.ServerConfig, sdkHandler *SDKHandler, walletHandler *WalletHandler) *gin.Engine {
	router := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodOptions}
	router.Use(cors.New(corsCfg))

	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/sdk", sdkHandler.GetSDKHandler)
		v1.GET("/sdk/config", sdkHandler.GetConfigHandler)
		v1.GET("/wallet", walletHandler.GetWalletHandler)
		v1.PUT("/wallet", walletHandler.PutWalletHandler)
		v1.DELETE("/wallet", walletHandler.DeleteWalletHandler)
	}

	// Swagger UI читает спецификацию как статический файл.
	if cfg.SwaggerPath != "" {
		router.StaticFile(swaggerSpecRoute, cfg.SwaggerPath)
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(swaggerSpecRoute)))
	}

	return router
}
