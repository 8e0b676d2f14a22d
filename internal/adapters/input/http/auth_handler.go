package http

import (
	"errors"

	"getcooked/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// Login godoc
// @Summary Start Spotify login
// @Description Sets the OAuth state cookie and redirects to the Spotify authorize page
// @Tags Auth
// @Success 302
// @Router /auth/login [get]
func (hdl *HTTPHandler) Login(c *fiber.Ctx) error {
	log := requestLogger(c)

	redirect, err := hdl.auth.BeginAuthorization(c.UserContext())
	if err != nil {
		log.Errorf("Failed to begin authorization: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Failed to start login", Details: err.Error()})
	}

	hdl.cookies.SaveState(c, redirect.State, redirect.StateTTL)
	log.Info("Redirecting to Spotify authorization")

	return c.Redirect(redirect.URL, fiber.StatusFound)
}

// Callback godoc
// @Summary Spotify OAuth callback
// @Description Validates state, exchanges the code and stores the tokens in cookies
// @Tags Auth
// @Produce json
// @param code query string false "authorization code"
// @param state query string false "oauth state"
// @param error query string false "provider error"
// @Success 302
// @Failure 400 {object} ErrorResponse
// @Router /auth/callback [get]
func (hdl *HTTPHandler) Callback(c *fiber.Ctx) error {
	log := requestLogger(c)

	var request CallbackRequest
	if err := c.QueryParser(&request); err != nil {
		log.Warnf("Invalid callback query: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid callback parameters"})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		log.Warnf("Invalid callback query: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid callback parameters", Details: err.Error()})
	}

	session := hdl.cookies.Load(c)
	tokens, err := hdl.auth.CompleteAuthorization(c.UserContext(), domain.CallbackRequest{
		Code:  request.Code,
		State: request.State,
		Error: request.Error,
	}, session.OAuthState)
	if err != nil {
		// The nonce is spent once it matched, whatever happened afterwards
		if !errors.Is(err, domain.ErrStateMismatch) {
			hdl.cookies.ClearState(c)
		}
		return hdl.writeError(c, err)
	}

	hdl.cookies.SaveTokens(c, tokens)
	hdl.cookies.ClearState(c)
	log.Info("Login completed")

	return c.Redirect(hdl.roastPageURL, fiber.StatusFound)
}

// Logout godoc
// @Summary Log out
// @Description Clears the token cookies and redirects home
// @Tags Auth
// @Success 302
// @Router /auth/logout [get]
func (hdl *HTTPHandler) Logout(c *fiber.Ctx) error {
	hdl.cookies.ClearTokens(c)
	requestLogger(c).Info("Logged out")
	return c.Redirect(hdl.homeURL, fiber.StatusFound)
}
