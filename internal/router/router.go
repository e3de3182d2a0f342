package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"hotelier/internal/auth"
	"hotelier/internal/config"
	"hotelier/internal/errors"
	"hotelier/internal/handler"
	"hotelier/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	roomHandler *handler.RoomHandler,
	bookingHandler *handler.BookingHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/rooms", roomHandler.ListRooms)
	api.GET("/rooms/:id", roomHandler.GetRoom)
	api.GET("/seed/rooms", seedHandler.SeedRooms)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Msg:  "Token is not valid",
				Code: "UNAUTHENTICATED",
			})
		},
	}))

	// User routes
	secured.GET("/users/me", userHandler.Me)
	secured.GET("/users", userHandler.ListUsers, RequireRoles(model.RoleAdmin))

	// Room routes
	secured.POST("/rooms", roomHandler.CreateRoom, RequireRoles(model.RoleAdmin, model.RoleManager))
	secured.PUT("/rooms/:id", roomHandler.UpdateRoom, RequireRoles(model.RoleAdmin, model.RoleManager))
	secured.PUT("/rooms/:id/status", roomHandler.UpdateRoomStatus, RequireRoles(model.RoleAdmin, model.RoleManager, model.RoleHousekeeping))
	secured.DELETE("/rooms/:id", roomHandler.DeleteRoom, RequireRoles(model.RoleAdmin))

	// Booking routes
	secured.POST("/bookings", bookingHandler.CreateBooking)
	secured.GET("/bookings/my-bookings", bookingHandler.MyBookings)
	secured.GET("/bookings/all", bookingHandler.AllBookings, RequireRoles(model.RoleAdmin, model.RoleManager))
	secured.PUT("/bookings/:id/status", bookingHandler.UpdateBookingStatus, RequireRoles(model.RoleAdmin, model.RoleManager))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
