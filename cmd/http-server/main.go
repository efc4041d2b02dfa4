package main

import (
	"context"

	"patientintake/internal/adapters/catalog"
	"patientintake/internal/adapters/database"
	"patientintake/internal/adapters/health"
	httpAdapter "patientintake/internal/adapters/http"
	healthHttp "patientintake/internal/adapters/http/health"
	intakeHandler "patientintake/internal/adapters/http/intake"
	adaptersMetrics "patientintake/internal/adapters/metrics"
	memoryRepo "patientintake/internal/adapters/repository/memory"
	postgresRepo "patientintake/internal/adapters/repository/postgres"
	"patientintake/internal/adapters/validator"
	"patientintake/internal/config"
	"patientintake/internal/core/ports"
	intakeUsecase "patientintake/internal/core/usecase/intake"
	platformHealth "patientintake/internal/platform/health"
	"patientintake/internal/platform/logger"
	"patientintake/internal/platform/metrics"
	"patientintake/internal/version"

	"go.uber.org/fx"
)

func main() {
	fx.New(appModule).Run()
}

// appendHooks registers hooks in start order behind a logger flush. fx
// runs stop hooks in reverse, so the flush happens after every other stop.
func appendHooks(lc fx.Lifecycle, log logger.Logger, hooks ...fx.Hook) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return log.Sync() },
	})
	for _, hook := range hooks {
		lc.Append(hook)
	}
}

var appModule = fx.Options(
	// Platform
	fx.Provide(config.LoadBase),
	fx.Provide(config.LoadHttp),
	fx.Provide(config.LoadDatabase),
	fx.Provide(config.LoadIntake),
	fx.Provide(func(cfg *config.BaseConfig) logger.Config {
		return logger.Config{
			Service:     "patientintake",
			Environment: cfg.Environment,
			Level:       cfg.Logger.Level,
			Format:      cfg.Logger.Format,
		}
	}),
	fx.Provide(logger.NewZapLogger),
	fx.Provide(validator.NewPlaygroundAdapter),
	fx.Provide(database.NewDatabaseLifecycle),
	fx.Provide(metrics.NewProvider),

	// Health Checks
	fx.Provide(fx.Annotate(
		func(sessions *memoryRepo.SessionRepository) *health.SessionStoreChecker {
			return health.NewSessionStoreChecker(sessions)
		},
		fx.As(new(platformHealth.Checker)),
		fx.ResultTags(`group:"health_checkers"`),
	)),
	fx.Provide(fx.Annotate(
		func(cfg *config.IntakeConfig, db *database.Lifecycle) []platformHealth.Checker {
			var checkers []platformHealth.Checker
			if cfg.Intake.UsesPostgres() {
				checkers = append(checkers, health.NewDatabaseChecker(db, "postgres"))
			}
			if cfg.Intake.DiagnosisHealthURL != "" {
				checkers = append(checkers, health.NewAPIChecker(cfg.Intake.DiagnosisHealthURL, "diagnosis", cfg.Intake.DiagnosisHealthTimeout))
			}
			return checkers
		},
		fx.ResultTags(`group:"health_checkers,flatten"`),
	)),
	fx.Provide(fx.Annotate(
		func(cfg *config.IntakeConfig, checkers []platformHealth.Checker) *platformHealth.Manager {
			m := platformHealth.NewManager(platformHealth.WithCheckTimeout(cfg.Intake.DiagnosisHealthTimeout))
			for _, checker := range checkers {
				m.Register(checker)
			}
			return m
		},
		fx.ParamTags(``, `group:"health_checkers"`),
		fx.As(new(platformHealth.ManagerInterface)),
	)),

	// Storage
	fx.Provide(memoryRepo.NewSessionRepository),
	fx.Provide(func(repo *memoryRepo.SessionRepository) ports.SessionRepository { return repo }),
	fx.Provide(memoryRepo.NewSessionJanitor),
	fx.Provide(func(cfg *config.IntakeConfig, db *database.Lifecycle) ports.SubmissionRepository {
		if cfg.Intake.UsesPostgres() {
			return postgresRepo.NewSubmissionRepository(db)
		}
		return memoryRepo.NewSubmissionRepository()
	}),
	fx.Provide(func(cfg *config.IntakeConfig) (ports.SymptomCatalog, error) {
		return catalog.NewDefaultSymptomCatalog(cfg.Intake.SymptomSearchLimit)
	}),

	// Domain
	fx.Provide(fx.Annotate(adaptersMetrics.NewIntakeRecorder, fx.As(new(intakeUsecase.Recorder)))),
	fx.Provide(fx.Annotate(intakeUsecase.NewUsecase, fx.As(new(intakeHandler.Manager)))),

	// HTTP Server
	fx.Provide(httpAdapter.NewServer),
	fx.Provide(httpAdapter.NewRouter),
	fx.Provide(intakeHandler.NewView),
	fx.Provide(intakeHandler.NewHandler),
	fx.Provide(intakeHandler.NewPageHandler),
	fx.Provide(intakeHandler.NewSymptomHandler),
	fx.Provide(func() *healthHttp.LivenessHandler {
		return healthHttp.NewLivenessHandler(version.Get())
	}),
	fx.Provide(func(hm platformHealth.ManagerInterface) *healthHttp.ReadinessHandler {
		return healthHttp.NewReadinessHandler(version.Get(), hm)
	}),
	fx.Provide(func(
		cfg *config.HttpConfig,
		log logger.Logger,
		api *intakeHandler.Handler,
		page *intakeHandler.PageHandler,
		symptoms *intakeHandler.SymptomHandler,
		liveness *healthHttp.LivenessHandler,
		readiness *healthHttp.ReadinessHandler,
		metrics *metrics.Provider,
	) httpAdapter.RouterDependencies {
		return httpAdapter.RouterDependencies{
			Config:           cfg,
			Logger:           log,
			IntakeHandler:    api,
			PageHandler:      page,
			SymptomHandler:   symptoms,
			LivenessHandler:  liveness,
			ReadinessHandler: readiness,
			MetricsProvider:  metrics,
		}
	}),

	fx.Invoke(func(log logger.Logger) {
		info := version.Info()
		log.Info("Starting patient intake service",
			logger.String("version", info.Version),
			logger.String("commit", info.GitCommit),
			logger.String("build_time", info.BuildTime),
			logger.Bool("modified", info.Modified),
		)
	}),
	fx.Invoke(func(provider *metrics.Provider, sessions *memoryRepo.SessionRepository) error {
		return provider.ObserveOpenSessions(sessions.Count)
	}),

	// Lifecycle Hooks
	fx.Invoke(func(
		lc fx.Lifecycle,
		cfg *config.IntakeConfig,
		db *database.Lifecycle,
		records ports.SubmissionRepository,
		janitor *memoryRepo.SessionJanitor,
		srv *httpAdapter.Server,
		log logger.Logger,
	) {
		var hooks []fx.Hook
		if cfg.Intake.UsesPostgres() {
			hooks = append(hooks, fx.Hook{
				OnStart: db.Start,
				OnStop:  db.Stop,
			})
			if repo, ok := records.(*postgresRepo.SubmissionRepository); ok {
				hooks = append(hooks, fx.Hook{OnStart: repo.CreateTable})
			}
		}
		hooks = append(hooks,
			fx.Hook{
				OnStart: janitor.Start,
				OnStop:  janitor.Stop,
			},
			fx.Hook{
				OnStart: srv.Start,
				OnStop:  srv.Stop,
			},
		)
		appendHooks(lc, log, hooks...)
	}),

	//fx.NopLogger,
)
