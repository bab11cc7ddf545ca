package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/pulse/internal/auth"
	"github.com/mmynk/pulse/internal/server"
	"github.com/mmynk/pulse/internal/service"
	"github.com/mmynk/pulse/internal/storage/sqlite"
	"github.com/mmynk/pulse/internal/suggest"
	"github.com/mmynk/pulse/pkg/logging"
)

const tokenDuration = 24 * time.Hour

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	dbPath := getEnv("DB_PATH", "./data/pulse.db")
	addr := getEnv("HTTP_ADDR", ":8080")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret-do-not-use-in-production"
		slog.Warn("JWT_SECRET not set, using insecure development secret")
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		slog.Warn("GEMINI_API_KEY not set, suggestions will use keyword fallbacks")
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	jwtManager := auth.NewJWTManager(jwtSecret, tokenDuration)
	habitSvc := service.NewHabitService(store)

	router := server.NewRouter(
		server.NewAuthHandler(auth.NewPasswordAuthenticator(store), jwtManager),
		server.NewHabitHandler(habitSvc),
		server.NewGoalHandler(service.NewGoalService(store)),
		server.NewDashboardHandler(habitSvc),
		server.NewSuggestHandler(service.NewSuggestionService(suggest.NewGeminiClient(geminiKey)), habitSvc),
		jwtManager,
	)

	// h2c allows HTTP/2 clients without TLS termination in front.
	handler := h2c.NewHandler(router, &http2.Server{})

	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
