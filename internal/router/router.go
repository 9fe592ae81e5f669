package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mem "health-tracking-api/internal/adapters/storage/memory"
	pg "health-tracking-api/internal/adapters/storage/postgres"
	"health-tracking-api/internal/domain/bodycomp"
	"health-tracking-api/internal/domain/markers"
	"health-tracking-api/internal/domain/measurements"
	"health-tracking-api/internal/domain/peptides"
	"health-tracking-api/internal/domain/supplements"
	"health-tracking-api/internal/metrics"
	"health-tracking-api/internal/middleware"
	"health-tracking-api/internal/platform/logger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger *logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		// tests y modo dev sin logger explícito
		log = logger.New(logger.Options{Level: logger.Error})
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(metrics.Middleware)

	// El frontend vive en otro origen; mismo all-open que el backend original.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Error("postgres unavailable, falling back to in-memory", map[string]any{"error": err.Error()})
			}
		}
	}

	var (
		bodyCompRepo     bodycomp.Repository
		markersRepo      markers.Repository
		measurementsRepo measurements.Repository
		supplementsRepo  supplements.Repository
		peptidesRepo     peptides.Repository
	)

	if db != nil {
		bodyCompRepo = pg.NewBodyCompRepo(db)
		markersRepo = pg.NewMarkersRepo(db)
		measurementsRepo = pg.NewMeasurementsRepo(db)
		supplementsRepo = pg.NewSupplementsRepo(db)
		peptidesRepo = pg.NewPeptidesRepo(db)
	} else {
		bodyCompRepo = mem.NewBodyCompRepo()
		markersRepo = mem.NewMarkersRepo()
		measurementsRepo = mem.NewMeasurementsRepo()
		supplementsRepo = mem.NewSupplementsRepo()
		peptidesRepo = mem.NewPeptidesRepo()
	}

	// Services por módulo
	bodyCompSvc := bodycomp.NewService(bodyCompRepo)
	markersSvc := markers.NewService(markersRepo)
	measurementsSvc := measurements.NewService(measurementsRepo)
	supplementsSvc := supplements.NewService(supplementsRepo)
	peptidesSvc := peptides.NewService(peptidesRepo)

	// Toda la API vive bajo /api, como el frontend espera
	r.Route("/api", func(api chi.Router) {
		api.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message":"Health Tracking API"}`))
		})

		bodycomp.RegisterRoutes(api, bodyCompSvc)
		markers.RegisterRoutes(api, markersSvc)
		measurements.RegisterRoutes(api, measurementsSvc)
		supplements.RegisterRoutes(api, supplementsSvc)
		peptides.RegisterRoutes(api, peptidesSvc)
	})

	return r
}
