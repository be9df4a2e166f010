package router

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"stockroom/internal/auth"
	apperrors "stockroom/internal/errors"
	"stockroom/internal/handler"
)

// Deps is everything the HTTP surface needs. It is built once in main and
// passed explicitly; nothing here is held in package state.
type Deps struct {
	Logger         *slog.Logger
	JWTService     *auth.JWTService
	TokenStore     auth.TokenStoreInterface
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	// HealthCheck reports datastore reachability for /healthz. Optional.
	HealthCheck    func(ctx context.Context) error
	SwaggerEnabled bool
}

// New builds an echo instance with all routes and middleware registered.
func New(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	Register(e, deps)
	return e
}

// Register wires routes and middleware.
func Register(e *echo.Echo, deps Deps) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: handler.NewValidator()}
	e.HTTPErrorHandler = errorHandler(logger)

	e.GET("/healthz", func(c echo.Context) error {
		if deps.HealthCheck != nil {
			if err := deps.HealthCheck(c.Request().Context()); err != nil {
				logger.ErrorContext(c.Request().Context(), "health check failed", slog.Any("error", err))
				return c.String(http.StatusServiceUnavailable, "unavailable")
			}
		}
		return c.String(http.StatusOK, "ok")
	})

	if deps.SwaggerEnabled {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	// Public routes
	e.POST("/signup", deps.AuthHandler.Signup)
	e.POST("/login", deps.AuthHandler.Login)

	// Secured routes (require a bearer token). Attached per route: a group
	// with an empty prefix would also catch unknown paths.
	secured := auth.Middleware(deps.JWTService, deps.TokenStore)

	e.POST("/logout", deps.AuthHandler.Logout, secured)
	e.PUT("/users/:id", deps.UserHandler.UpdateUser, secured)

	e.POST("/products", deps.ProductHandler.CreateProduct, secured)
	e.GET("/products", deps.ProductHandler.ListProducts, secured)
	e.GET("/products/:pid", deps.ProductHandler.GetProduct, secured)
	e.PUT("/products/:pid", deps.ProductHandler.UpdateProduct, secured)
	e.DELETE("/products/:pid", deps.ProductHandler.DeleteProduct, secured)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				if v.Status >= http.StatusInternalServerError {
					level = slog.LevelError
				} else {
					level = slog.LevelWarn
				}
			}
			logger.LogAttrs(c.Request().Context(), level, "http request", attrs...)
			return nil
		},
	})
}

// errorHandler renders every error as {"message": "..."}. Framework errors
// keep their status; domain errors go through MapErrorToHTTP.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *apperrors.HTTPError
		var echoErr *echo.HTTPError
		switch {
		case errors.As(err, &echoErr):
			msg := http.StatusText(echoErr.Code)
			if s, ok := echoErr.Message.(string); ok && s != "" {
				msg = s
			}
			if echoErr.Code == http.StatusNotFound {
				msg = apperrors.ErrNotFound.Error()
			}
			if echoErr.Code >= http.StatusInternalServerError {
				msg = "Internal server error"
			}
			httpErr = apperrors.NewHTTPError(echoErr.Code, msg)
		default:
			httpErr = apperrors.MapErrorToHTTP(err)
		}

		if httpErr.StatusCode >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "internal error",
				slog.String("path", c.Path()), slog.Any("error", err))
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(httpErr.StatusCode)
		} else {
			writeErr = c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "error writing error response", slog.Any("error", writeErr))
		}
	}
}
