package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"lembagaku_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware dasar dengan urutan yang benar:
// recovery paling luar, lalu cors, logger, dan rate limiter global.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
