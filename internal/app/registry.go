package app

import (
	"net/http"
	"time"

	"ems-console/internal/auth"
	"ems-console/internal/dashboard"
	"ems-console/internal/employee"
	"ems-console/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

// writerHolder lets the kafka writer stay optional without sprinkling nil
// checks through the registry.
type writerHolder struct {
	w *kafkago.Writer
}

type registryDeps struct {
	rdb          *redis.Client
	upstream     *http.Client
	kafka        *writerHolder
	upstreamBase string
	sessionTTL   time.Duration
}

func registerModules(router *gin.Engine, deps registryDeps) error {
	router.Use(middleware.RequestID())

	// --- Repositories / stores ---
	sessionStore := auth.NewSessionStore(deps.rdb)
	employeeRepo := employee.NewHTTPRepository(deps.upstreamBase+"/api/employees", deps.upstream)

	// --- Event publisher ---
	publisher := employee.NewNoopEventPublisher()
	if deps.kafka != nil && deps.kafka.w != nil {
		publisher = employee.NewKafkaEventPublisher(deps.kafka.w)
	}

	// --- Services ---
	authService := auth.NewService(
		sessionStore,
		deps.upstream,
		deps.upstreamBase+"/api/auth/login",
		deps.sessionTTL,
	)
	employeeService := employee.NewService(employeeRepo, publisher)
	dashboardService := dashboard.NewService(
		deps.upstreamBase+"/api/employees/dashboard-stats",
		deps.upstream,
		deps.rdb,
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	gate := auth.SessionGate(authService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, gate)
		employee.RegisterRoutes(api, employeeHandler, gate, deps.rdb)
		dashboard.RegisterRoutes(api, dashboardHandler, gate)
	}

	return nil
}
