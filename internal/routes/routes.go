package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/cyssxt/yunchaoplus-wallet/internal/config"
	"github.com/cyssxt/yunchaoplus-wallet/internal/middleware"
	"github.com/cyssxt/yunchaoplus-wallet/internal/recharge"
	"github.com/cyssxt/yunchaoplus-wallet/internal/withdraw"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() && d.DB == nil {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// Health
	RegisterHealthRoutes(app, d)

	// Services and handlers
	var rechargeRepo recharge.Repository
	var withdrawRepo withdraw.Repository
	if d.DB != nil {
		rechargeRepo = recharge.NewPostgresRepository(d.DB)
		withdrawRepo = withdraw.NewPostgresRepository(d.DB, d.Cfg.StrictStatusTransitions)
	} else {
		rechargeRepo = recharge.NewMemoryRepository()
		withdrawRepo = withdraw.NewMemoryRepository(d.Cfg.StrictStatusTransitions)
	}

	rechargeHandler := recharge.NewHandler(recharge.NewService(rechargeRepo), d.Logger)
	withdrawHandler := withdraw.NewHandler(withdraw.NewService(withdrawRepo), d.Logger)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	writeLimiter := middleware.WriteRateLimit(d.Cache, d.Cfg.WriteRate)
	RegisterRechargeRoutes(api, rechargeHandler, writeLimiter)
	RegisterWithdrawRoutes(api, withdrawHandler, writeLimiter)

	return nil
}
