package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ramamani14-hue/sharat-lifemap/internal/handler"
	"github.com/ramamani14-hue/sharat-lifemap/internal/middleware"
)

// Handlers 路由所需的全部处理器
type Handlers struct {
	Viz       *handler.VizHandler
	Stats     *handler.StatsHandler
	Trips     *handler.TripHandler
	Playback  *handler.PlaybackHandler
	Assistant *handler.AssistantHandler
}

// SetupRouter 设置路由
func SetupRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Lifemap API is running",
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	{
		// 可视化接口
		viz := api.Group("/viz")
		{
			viz.GET("/paths", h.Viz.GetPaths)
			viz.GET("/grid", h.Viz.GetGrid)
			viz.GET("/arcs", h.Viz.GetArcs)
		}

		// 轨迹与停留接口
		api.GET("/trips", h.Trips.GetTrips)
		api.GET("/visits", h.Trips.GetVisits)

		// 统计接口
		api.GET("/stats", h.Stats.GetStats)
		api.GET("/chapters", h.Stats.GetChapters)

		// 播放时钟接口
		playback := api.Group("/playback")
		{
			playback.POST("/start", h.Playback.Start)
			playback.POST("/pause", h.Playback.Pause)
			playback.POST("/restart", h.Playback.Restart)
			playback.POST("/stop", h.Playback.Stop)
			playback.GET("/state", h.Playback.State)
			playback.GET("/stream", h.Playback.Stream)
		}

		// 聊天助手接口（有上游成本，限流）
		assistant := api.Group("/assistant")
		assistant.Use(middleware.RateLimit(10, time.Minute))
		{
			assistant.POST("/ask", h.Assistant.Ask)
		}
	}

	return r
}
