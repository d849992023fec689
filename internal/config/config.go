package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port        string
	DatasetPath string

	// 可视化参数
	GridCellSizeDeg float64 // 网格单元大小（度）
	MaxHopKm        float64 // 超过该距离的单跳视为传感器异常
	MaxGapDays      int     // 超过该天数的间隔视为数据缺口

	// 聊天助手
	OpenAIAPIKey string
	OpenAIModel  string
}

// Load 加载配置
func Load() *Config {
	// .env 文件可选，缺失时直接读环境变量
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	datasetPath := os.Getenv("DATASET_PATH")
	if datasetPath == "" {
		datasetPath = "./data/lifemap.db"
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &Config{
		Port:            port,
		DatasetPath:     datasetPath,
		GridCellSizeDeg: envFloat("GRID_CELL_SIZE_DEG", 0.05),
		MaxHopKm:        envFloat("MAX_HOP_KM", 500),
		MaxGapDays:      envInt("MAX_GAP_DAYS", 7),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     model,
	}
}

func envFloat(key string, fallback float64) float64 {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
