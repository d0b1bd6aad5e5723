package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"

	"adverts_backend/internals/configs"
	"adverts_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the global middleware chain. Order matters:
// request id/logging first so panics and limiter hits are logged too.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config, log *zap.Logger) {
	app.Use(logger.LoggerMiddleware(log, cfg.RequestTimeout))
	app.Use(RecoveryMiddleware(log))
	app.Use(CorsMiddleware(cfg.CORSAllowOrigins))
	app.Use(GlobalRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
}
