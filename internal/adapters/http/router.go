package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"patientintake/internal/adapters/http/health"
	"patientintake/internal/adapters/http/intake"
	"patientintake/internal/config"
	"patientintake/internal/platform/logger"
	"patientintake/internal/platform/metrics"
	platformMiddleware "patientintake/internal/platform/middleware"
)

type RouterDependencies struct {
	Config           *config.HttpConfig
	Logger           logger.Logger
	IntakeHandler    *intake.Handler
	PageHandler      *intake.PageHandler
	SymptomHandler   *intake.SymptomHandler
	LivenessHandler  *health.LivenessHandler
	ReadinessHandler *health.ReadinessHandler
	MetricsProvider  *metrics.Provider
}

func NewRouter(deps RouterDependencies) http.Handler {
	cfg := deps.Config
	log := deps.Logger
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(platformMiddleware.RequestLogger(log))
	r.Use(platformMiddleware.MetricsMiddleware(deps.MetricsProvider))
	r.Use(platformMiddleware.Recovery(log))
	r.Use(middleware.StripSlashes)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Use(httprate.LimitAll(cfg.RateLimit.GlobalRequests, cfg.RateLimit.GlobalWindow))
	r.Use(httprate.LimitByIP(cfg.RateLimit.RequestsPerIP, cfg.RateLimit.WindowPerIP))
	if cfg.Server.MaxBodyBytes > 0 {
		r.Use(middleware.RequestSize(cfg.Server.MaxBodyBytes))
	}

	r.Get("/health/live", deps.LivenessHandler.Check)
	r.Get("/health/ready", deps.ReadinessHandler.Check)

	r.Handle("/metrics", deps.MetricsProvider.Handler())

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Route("/intake", func(intakeRouter chi.Router) {
			h := deps.IntakeHandler
			intakeRouter.Post("/sessions", ErrorHandler(h.CreateSession))
			intakeRouter.Route("/sessions/{id}", func(sessionRouter chi.Router) {
				sessionRouter.Get("/", ErrorHandler(h.GetSession))
				sessionRouter.Patch("/fields/{field}", ErrorHandler(h.UpdateField))
				sessionRouter.Put("/symptoms", ErrorHandler(h.SelectSymptoms))
				sessionRouter.Post("/submit", ErrorHandler(h.Submit))
			})
			intakeRouter.Post("/validate", ErrorHandler(h.Validate))
			intakeRouter.Get("/submissions/{id}", ErrorHandler(h.GetSubmission))
		})
		apiRouter.Get("/symptoms", ErrorHandler(deps.SymptomHandler.Search))
	})

	r.Get("/intake", ErrorHandler(deps.PageHandler.New))
	r.Get("/intake/{id}", ErrorHandler(deps.PageHandler.Show))
	r.Post("/intake/{id}", ErrorHandler(deps.PageHandler.Submit))

	return r
}
