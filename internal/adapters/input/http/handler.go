package http

import (
	"getcooked/internal/ports/input"
	"getcooked/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	auth         input.AuthService
	roast        input.RoastService
	cookies      *CookieStore
	validator    validator.Validator
	homeURL      string
	roastPageURL string
}

// Options struct - Where the browser is sent after the auth endpoints
type Options struct {
	HomeURL      string
	RoastPageURL string
}

// New func - Creates new HTTP handler
func New(auth input.AuthService, roast input.RoastService, cookies *CookieStore, opts Options) *HTTPHandler {
	return &HTTPHandler{
		auth:         auth,
		roast:        roast,
		cookies:      cookies,
		validator:    validator.New(),
		homeURL:      opts.HomeURL,
		roastPageURL: opts.RoastPageURL,
	}
}

// HealthCheck func
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /health [get]
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: "ok"})
}

// Register func - Mounts every route of the handler on app
func (hdl *HTTPHandler) Register(app fiber.Router) {
	app.Get("/health", hdl.HealthCheck)

	auth := app.Group("/auth")
	{
		auth.Get("/login", hdl.Login)
		auth.Get("/callback", hdl.Callback)
		auth.Get("/logout", hdl.Logout)
	}

	app.Get("/roast", hdl.GetRoast)
}
