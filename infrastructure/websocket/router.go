package websocket

import (
	"chat-relay/services"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"
)

// NewRouter mounts the websocket endpoint next to the health, metrics and roster endpoints.
func NewRouter(server *ChatServer, chatService services.IChatService, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if len(server.settings.AllowedOrigins) > 0 {
		router.Use(cors.New(corsConfig(server.settings.AllowedOrigins)))
	}

	router.GET("/ws", gin.WrapH(server))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	router.GET("/roster", func(c *gin.Context) {
		c.JSON(http.StatusOK, chatService.Roster())
	})
	return router
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}
	if lo.Contains(origins, "*") {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = origins
	config.AllowCredentials = true
	return config
}
