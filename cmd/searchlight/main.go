package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/dshills/Searchlight/api"
	"github.com/dshills/Searchlight/catalog"
	"github.com/dshills/Searchlight/config"
	"github.com/dshills/Searchlight/core/ai"
	"github.com/dshills/Searchlight/core/ai/embedding"
	"github.com/dshills/Searchlight/core/search"
	"github.com/dshills/Searchlight/persistence"
)

func main() {
	// Parse command line flags
	var (
		configPath = flag.String("config", "", "Path to configuration file (default: ~/.searchlight.yml)")
		host       = flag.String("host", "", "Host to listen on (overrides config)")
		port       = flag.Int("port", 0, "Port to listen on (overrides config)")
		engineType = flag.String("engine", "", "Embedding engine: onnx, ollama, openai (overrides config)")
		cacheType  = flag.String("cache", "", "Embedding cache: memory, bolt, badger (overrides config)")
		cachePath  = flag.String("cache-path", "", "Embedding cache path (overrides config)")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Override with command-line flags
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *engineType != "" {
		cfg.Embedding.Type = *engineType
	}
	if *cacheType != "" {
		cfg.Cache.Type = persistence.StoreType(*cacheType)
	}
	if *cachePath != "" {
		cfg.Cache.Path = *cachePath
	}

	logger, err := buildLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting searchlight",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("engine", cfg.Embedding.Type),
		zap.String("cache", string(cfg.Cache.Type)))

	// Create embedding cache store
	store, err := persistence.CreateStore(cfg.Cache)
	if err != nil {
		logger.Fatal("failed to create cache store", zap.Error(err))
	}
	defer store.Close()

	// Create embedding engine. Failure is not fatal: search degrades
	// to lexical-only.
	engine := buildEngine(cfg.Embedding, store, logger)
	if engine != nil {
		defer engine.Close()
	}

	// Load catalogs
	photoSearcher := buildPhotoSearcher(cfg, engine, logger)
	projectSearcher := buildProjectSearcher(cfg, engine, logger)
	if photoSearcher == nil && projectSearcher == nil {
		logger.Fatal("no catalogs loaded")
	}

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Server.Host
	serverConfig.Port = cfg.Server.Port
	serverConfig.ReadTimeout = cfg.Server.ReadTimeout
	serverConfig.WriteTimeout = cfg.Server.WriteTimeout
	serverConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout

	server := api.NewServer(photoSearcher, projectSearcher, serverConfig, logger)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if level != "" {
		parsed, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, err
		}
		zapCfg.Level = parsed
	}
	return zapCfg.Build()
}

// buildEngine creates the configured embedding engine wrapped with the
// query cache. Returns nil when the engine cannot be created.
func buildEngine(modelCfg ai.ModelConfig, store persistence.Store, logger *zap.Logger) ai.EmbeddingEngine {
	if modelCfg.Type == "" {
		logger.Info("no embedding engine configured, running lexical-only")
		return nil
	}

	inner, err := embedding.CreateEngine(modelCfg)
	if err != nil {
		logger.Warn("failed to create embedding engine, running lexical-only",
			zap.String("engine", modelCfg.Type),
			zap.Error(err))
		return nil
	}

	hits, misses := api.CacheCounters()
	return embedding.NewCachedEngine(inner, store, logger).WithMetrics(hits, misses)
}

func buildPhotoSearcher(cfg *config.Config, engine ai.EmbeddingEngine, logger *zap.Logger) *catalog.PhotoSearcher {
	if cfg.Catalog.PhotosPath == "" {
		return nil
	}

	photos, err := catalog.LoadPhotos(cfg.Catalog.PhotosPath)
	if err != nil {
		logger.Warn("failed to load photo catalog", zap.Error(err))
		return nil
	}

	embeddings, err := catalog.LoadEmbeddings(cfg.Catalog.PhotoEmbeddingsPath)
	if err != nil {
		logger.Warn("failed to load photo embeddings", zap.Error(err))
		embeddings = catalog.EmbeddingSet{}
	}

	opts := catalog.DefaultPhotoOptions()
	applySearchConfig(&opts, cfg.Search.Photo, cfg.Search)

	logger.Info("photo catalog loaded",
		zap.Int("photos", len(photos)),
		zap.Int("embeddings", len(embeddings)))

	return catalog.NewPhotoSearcher(photos, embeddings, engine, opts, logger)
}

func buildProjectSearcher(cfg *config.Config, engine ai.EmbeddingEngine, logger *zap.Logger) *catalog.ProjectSearcher {
	if cfg.Catalog.ProjectsPath == "" {
		return nil
	}

	projects, err := catalog.LoadProjects(cfg.Catalog.ProjectsPath)
	if err != nil {
		logger.Warn("failed to load project catalog", zap.Error(err))
		return nil
	}

	embeddings, err := catalog.LoadEmbeddings(cfg.Catalog.ProjectEmbeddingsPath)
	if err != nil {
		logger.Warn("failed to load project embeddings", zap.Error(err))
		embeddings = catalog.EmbeddingSet{}
	}

	opts := catalog.DefaultProjectOptions()
	applySearchConfig(&opts, cfg.Search.Project, cfg.Search)

	logger.Info("project catalog loaded",
		zap.Int("projects", len(projects)),
		zap.Int("embeddings", len(embeddings)))

	return catalog.NewProjectSearcher(projects, embeddings, engine, opts, logger)
}

func applySearchConfig(opts *search.Options, domain config.DomainSearchConfig, global config.SearchConfig) {
	if domain.FallbackThreshold != 0 {
		opts.FallbackThreshold = domain.FallbackThreshold
	}
	if domain.FallbackLimit > 0 {
		opts.FallbackLimit = domain.FallbackLimit
	}
	opts.K1 = global.BM25.K1
	opts.B = global.BM25.B
	opts.RRFK = global.RRFK
}
