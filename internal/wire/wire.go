package wire

import (
	"context"
	"net/http"
	"time"

	"fast-food/internal/adaptor"
	"fast-food/internal/data/repository"
	"fast-food/internal/usecase"
	"fast-food/pkg/cache"
	"fast-food/pkg/mailer"
	"fast-food/pkg/metrics"
	"fast-food/pkg/middleware"
	"fast-food/pkg/token"
	"fast-food/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies are the process-wide resources built once at startup.
type Dependencies struct {
	Repo   *repository.Repository
	DB     Pinger
	Config *utils.Config
	Tokens *token.Service
	Cache  cache.Cache
	Mailer mailer.Sender
	Logger *zap.Logger
}

type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

func Wiring(deps Dependencies) *App {
	service := usecase.NewService(deps.Repo, deps.Config, deps.Tokens, deps.Cache, deps.Mailer, deps.Logger)
	handler := adaptor.NewHandler(service, deps.Logger)

	return &App{
		Router:  setupRouter(handler, deps),
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, deps Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Recover(deps.Logger))
	r.Use(middleware.CORS(middleware.DefaultCORSOptions(deps.Config.CORS.AllowedOrigins)))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusMethodNotAllowed, utils.ErrorResponse{Error: "Method not allowed"})
	})

	r.Route("/api", func(r chi.Router) {
		wireAuth(r, handler.Auth)
		wireMenu(r, handler.Menu)
		wireOrder(r, handler.Order, deps.Tokens, deps.Logger)
	})

	r.Get("/health", healthHandler(deps.DB))
	r.Handle("/metrics", metrics.Handler())

	return r
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				utils.ResponseJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		utils.ResponseSuccess(w, map[string]string{"status": "ok"})
	}
}
