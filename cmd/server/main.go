package main

import (
	"log"

	"github.com/ramamani14-hue/sharat-lifemap/internal/api"
	"github.com/ramamani14-hue/sharat-lifemap/internal/assistant"
	"github.com/ramamani14-hue/sharat-lifemap/internal/config"
	"github.com/ramamani14-hue/sharat-lifemap/internal/dataset"
	"github.com/ramamani14-hue/sharat-lifemap/internal/handler"
	"github.com/ramamani14-hue/sharat-lifemap/internal/service"
	"github.com/ramamani14-hue/sharat-lifemap/internal/session"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 加载数据集（只读）
	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		log.Fatal("Failed to load dataset:", err)
	}

	// 初始化会话上下文
	sess := session.New(ds, session.Options{
		CellSizeDeg: cfg.GridCellSizeDeg,
		MaxHopKm:    cfg.MaxHopKm,
		MaxGapDays:  cfg.MaxGapDays,
	})

	// 初始化服务
	vizService := service.NewVizService(sess)
	statsService := service.NewStatsService(sess)
	tripService := service.NewTripService(sess)
	playbackService := service.NewPlaybackService()
	chatAssistant := assistant.New(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	if !chatAssistant.Enabled() {
		log.Printf("[Assistant] No API key configured, assistant endpoints disabled")
	}

	// 初始化路由
	router := api.SetupRouter(api.Handlers{
		Viz:       handler.NewVizHandler(vizService),
		Stats:     handler.NewStatsHandler(statsService),
		Trips:     handler.NewTripHandler(tripService),
		Playback:  handler.NewPlaybackHandler(playbackService),
		Assistant: handler.NewAssistantHandler(chatAssistant, statsService),
	})

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
