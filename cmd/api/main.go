package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"headlinesai/db"
	"headlinesai/internal/cache"
	"headlinesai/internal/handler"
	"headlinesai/pkg/llm"
	"headlinesai/pkg/news"
	"headlinesai/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	summarizer, err := newSummarizer()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	var history handler.HistoryStore = cache.NewNoopCache()
	if os.Getenv("REDIS_URL") != "" {
		err := db.ConnectRedis()
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		history = cache.NewSearchCache(db.Redis)
	} else {
		slog.Warn("REDIS_URL not set, search history disabled")
	}

	searchHandler := handler.NewSearchHandler(news.NewGoogleNewsClient(), summarizer, history)
	historyHandler := handler.NewHistoryHandler(history)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
	})
	r.POST("/search", searchHandler.Search)
	r.GET("/searches", historyHandler.GetRecent)
	r.DELETE("/searches", historyHandler.Clear)
	r.GET("/health", historyHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func newSummarizer() (llm.Summarizer, error) {
	if os.Getenv("SUMMARY_PROVIDER") == "anthropic" {
		client, err := llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	client, err := llm.NewOpenRouterClient(os.Getenv("OPENROUTER_API_KEY"), os.Getenv("OPENROUTER_MODEL"))
	if err != nil {
		return nil, err
	}
	return client, nil
}
