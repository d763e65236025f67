package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"

	"github.com/vidnotes/vidnotes/internal/api"
	"github.com/vidnotes/vidnotes/internal/config"
	"github.com/vidnotes/vidnotes/internal/export"
	summaryrepo "github.com/vidnotes/vidnotes/internal/repository/summary"
	usagerepo "github.com/vidnotes/vidnotes/internal/repository/usage"
	"github.com/vidnotes/vidnotes/internal/service/summarizer"
	summarysvc "github.com/vidnotes/vidnotes/internal/service/summary"
	"github.com/vidnotes/vidnotes/internal/service/youtube"
)

const shutdownTimeout = 10 * time.Second

// serveCmd runs the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long:  `Start the HTTP server exposing the summarization and CRUD endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func runServer(ctx context.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	pool, err := config.NewDatabasePool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	transcriptClient := youtube.NewClient(cfg.TranscriptAPIURL, cfg.TranscriptAPIKey, logger)

	// The Data API improves metadata quality and powers related-video
	// lookup; without a key both fall back gracefully.
	var metadata summarysvc.MetadataFetcher = transcriptClient
	var related summarysvc.RelatedProvider
	if cfg.YouTubeAPIKey != "" {
		ytService, err := youtubeapi.NewService(ctx, option.WithAPIKey(cfg.YouTubeAPIKey))
		if err != nil {
			return fmt.Errorf("failed to create YouTube Data API client: %w", err)
		}
		metadata = youtube.NewDataAPI(ytService, logger)
		related = youtube.NewRelatedFetcher(ytService, logger)
	} else {
		logger.Info("YOUTUBE_API_KEY not set, using transcript provider metadata and skipping related videos")
	}

	summarizerClient := summarizer.NewClient(cfg.GeminiAPIURL, cfg.GeminiAPIKey, summarizer.Options{
		Model:         cfg.GeminiModel,
		FallbackModel: cfg.GeminiFallback,
		Timeout:       cfg.SummaryTimeout(),
		MaxChars:      cfg.MaxTranscriptChars,
	}, logger)

	service := summarysvc.NewService(
		summaryrepo.NewRepository(pool),
		usagerepo.NewRepository(pool),
		transcriptClient,
		metadata,
		summarizerClient,
		related,
		logger,
	)

	handler := api.NewHandler(service, export.NewPDFRenderer(), export.NewBrowserPDFRenderer(logger), logger)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.RegisterRoutes(engine)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
