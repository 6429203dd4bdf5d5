package router

import (
	"net/http"
	"time"

	_ "rescue-dog-favorites/docs"

	mem "rescue-dog-favorites/internal/adapters/storage/memory"
	"rescue-dog-favorites/internal/domain/catalog"
	"rescue-dog-favorites/internal/domain/dogs"
	"rescue-dog-favorites/internal/domain/favorites"
	"rescue-dog-favorites/internal/domain/insights"
	"rescue-dog-favorites/internal/middleware"
	"rescue-dog-favorites/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger

	// Opcional: si viene, los favoritos se persisten ahí. Si no, in-memory.
	Slots favorites.SlotRepository

	// DogSource resuelve perros por id (API externa).
	DogSource dogs.Source

	MaxFavorites   int
	ShareBaseURL   string
	AllowedOrigins []string

	// Límites de los caches por cliente (stores y sesiones de vista).
	ClientCacheSize int
	ClientCacheTTL  time.Duration

	StorageTimeout time.Duration
	StorageRetry   time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", middleware.ClientIDHeader},
		ExposedHeaders:   []string{middleware.ClientIDHeader},
		AllowCredentials: true,
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	slots := opts.Slots
	if slots == nil {
		slots = mem.NewSlotsRepo()
	}

	// Services por módulo
	favoritesSvc := favorites.NewService(slots, favorites.Options{
		MaxFavorites:   opts.MaxFavorites,
		Logger:         log.With(map[string]any{"module": "favorites"}),
		CacheSize:      opts.ClientCacheSize,
		CacheTTL:       opts.ClientCacheTTL,
		StorageTimeout: opts.StorageTimeout,
		RetryInterval:  opts.StorageRetry,
	})
	catalogLog := log.With(map[string]any{"module": "catalog"})
	catalogSvc := catalog.NewService(
		favoritesSvc,
		dogs.NewFetcher(opts.DogSource, catalogLog),
		catalog.Options{
			Logger:      catalogLog,
			Calculator:  insights.NewCalculator(catalogLog),
			MaxSessions: opts.ClientCacheSize,
			SessionTTL:  opts.ClientCacheTTL,
		},
	)

	// Rutas por módulo; todas necesitan identidad de cliente
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.ClientContext)

		catalog.RegisterRoutes(gr, catalogSvc)
		favorites.RegisterRoutes(gr, favoritesSvc, opts.ShareBaseURL)
	})

	return r
}
