package main

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"go-health/configs"
	"go-health/internal/application/controller"
	"go-health/internal/application/middleware"
	"go-health/internal/application/schedule"
	"go-health/internal/domain/check"
	"go-health/internal/domain/health"
	"go-health/internal/domain/model"
	"go-health/internal/domain/usecase/probe"
	awsinfra "go-health/internal/infra/aws"
	gormdb "go-health/internal/infra/database/gorm"
	sqldb "go-health/internal/infra/database/sql"
	redisinfra "go-health/internal/infra/redis"
	"go-health/pkg/httpclient"
	"go-health/pkg/log"
	"go-health/pkg/msg"
	"go-health/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"), zap.String("application", configs.Env.ApplicationName))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	middleware.SetupDetailsAuthorization(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	// Init Registry
	registry := health.NewRegistry()
	refresher := newRefresher()
	registerChecks(registry, refresher)

	// Init Groups
	groupConfigs, err := health.ParseGroups(resource.GetStringMap("app.health.groups"))
	if err != nil {
		log.Fatalf("Invalid health group configuration: %v", err)
	}
	groups, err := health.NewGroups(registry, groupConfigs...)
	if err != nil {
		log.Fatalf("Invalid health group configuration: %v", err)
	}

	// Init UseCase
	evaluator := health.NewEvaluator(resource.GetDuration("app.health.check-timeout"))
	probeUseCase := probe.NewProbeUseCase(groups, evaluator, statusCodesFromProperties())

	// Init Controller
	probeController := controller.NewProbeController(api, probeUseCase, resource.GetString("app.health.default-group"))
	probeController.InitProbeRoutes()

	// Init Schedule
	healthScheduler := schedule.NewHealthScheduler(probeUseCase)
	healthScheduler.InitHealthScheduleTasks()

	if refresher != nil {
		if err := refresher.Start(); err != nil {
			log.Fatalf("Failed to start health check refresher: %v", err)
		}
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	log.Infof(msg.GetMessage("app.started", port))
	e.Logger.Fatal(e.Start(":" + port))
}

// newRefresher builds the background refresher when a refresh interval is
// configured; otherwise cached checks refresh lazily on query.
func newRefresher() *health.Refresher {
	interval := resource.GetDuration("app.health.refresh-interval")
	if interval <= 0 {
		return nil
	}

	refresher, err := health.NewRefresher(interval, resource.GetDuration("app.health.check-timeout"))
	if err != nil {
		log.Fatalf("Failed to create health check refresher: %v", err)
	}
	return refresher
}

// registerChecks registers every check enabled in the properties,
// wrapping each in a TTL cache when app.health.cache-ttl is set.
func registerChecks(registry *health.Registry, refresher *health.Refresher) {
	cacheTTL := resource.GetDuration("app.health.cache-ttl")

	register := func(key string, build func() (health.Check, error)) {
		prefix := "app.health.checks." + key
		if !resource.GetBool(prefix + ".enabled") {
			return
		}

		name := resource.GetString(prefix + ".name")
		if name == "" {
			name = key
		}

		var chk health.Check
		if resource.GetBool(prefix + ".out-of-service") {
			// Dependency taken out intentionally (maintenance window,
			// feature flag): report OUT_OF_SERVICE without probing it.
			chk = health.CheckFunc(func(_ context.Context) model.CheckResult {
				return model.OutOfServiceResult(map[string]any{"reason": "disabled by configuration"})
			})
		} else {
			var err error
			chk, err = build()
			if err != nil {
				log.Fatalf("Failed to build %s health check: %v", key, err)
			}
		}

		if cacheTTL > 0 {
			cached := health.NewCachedCheck(chk, cacheTTL)
			if refresher != nil {
				refresher.Add(name, cached)
			}
			chk = cached
		}

		if err := registry.Register(name, chk); err != nil {
			log.Fatalf("Failed to register %s health check: %v", key, err)
		}
		log.Infof(msg.GetMessage("health.check.registered", name))
	}

	register("warmup", func() (health.Check, error) {
		return check.NewWarmupCheck(resource.GetDuration("app.health.checks.warmup.duration")), nil
	})

	register("database", func() (health.Check, error) {
		if resource.GetString("app.health.checks.database.driver") == "sql" {
			db, err := sqldb.Open()
			if err != nil {
				return nil, err
			}
			return check.NewSQLDatabaseCheck(db), nil
		}
		db, err := gormdb.Connect()
		if err != nil {
			return nil, err
		}
		return check.NewDatabaseCheck(db), nil
	})

	register("redis", func() (health.Check, error) {
		client := redisinfra.NewClient(redisinfra.ConfigFromProperties())
		return check.NewRedisCheck(client), nil
	})

	register("queue", func() (health.Check, error) {
		cfg, err := awsinfra.NewConfig(context.Background())
		if err != nil {
			return nil, err
		}
		client := awsinfra.NewSqsClient(cfg)
		return check.NewQueueCheck(client, resource.GetString("app.health.checks.queue.queue-url")), nil
	})

	register("http", func() (health.Check, error) {
		client := httpclient.New(httpclient.Options{})
		return check.NewHTTPCheck(client, resource.GetString("app.health.checks.http.url")), nil
	})
}

// statusCodesFromProperties overlays the configured status-code mapping
// on the defaults. Whether OUT_OF_SERVICE should answer with something
// other than 503 is a deployment decision, not a rule of the engine.
func statusCodesFromProperties() probe.StatusCodes {
	codes := probe.DefaultStatusCodes()
	overrides := map[model.Status]string{
		model.StatusUnknown:      "app.health.status-mapping.unknown",
		model.StatusOutOfService: "app.health.status-mapping.out-of-service",
		model.StatusDown:         "app.health.status-mapping.down",
	}
	for status, key := range overrides {
		if code := resource.GetInt(key); code > 0 {
			codes[status] = code
		}
	}
	return codes
}
