package http

import (
	"encoding/json"
	"errors"

	"getcooked/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// writeError maps the domain error taxonomy onto status codes and short JSON bodies
func (hdl *HTTPHandler) writeError(c *fiber.Ctx, err error) error {
	log := requestLogger(c)

	var exchangeErr *domain.TokenExchangeError
	var upstreamErr *domain.UpstreamError

	switch {
	case errors.Is(err, domain.ErrStateMismatch):
		log.Warn("OAuth state mismatch")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "State mismatch"})

	case errors.Is(err, domain.ErrMissingCode):
		log.Warnf("Callback without code: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Missing authorization code"})

	case errors.As(err, &exchangeErr):
		log.Warnf("Token exchange failed with status %d", exchangeErr.Status)
		if exchangeErr.Body != "" && json.Valid([]byte(exchangeErr.Body)) {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Status(fiber.StatusBadRequest).SendString(exchangeErr.Body)
		}
		details := exchangeErr.Body
		if details == "" {
			details = exchangeErr.Error()
		}
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Token exchange failed", Details: details})

	case errors.Is(err, domain.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "Not logged in"})

	case errors.Is(err, domain.ErrStateStore):
		log.Errorf("State ledger unavailable: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Login temporarily unavailable", Details: err.Error()})

	case errors.Is(err, domain.ErrModelInvocation), errors.Is(err, domain.ErrModelTimeout):
		log.Errorf("Model call failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Failed to generate roast", Details: err.Error()})

	case errors.As(err, &upstreamErr):
		log.Errorf("Spotify returned %d on %s", upstreamErr.Status, upstreamErr.Resource)
		details := err.Error()
		if upstreamErr.Status == fiber.StatusUnauthorized {
			details = "spotify access token expired or revoked: " + details
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Failed to fetch Spotify data", Details: details})

	default:
		log.Errorf("Request failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Failed to fetch Spotify data", Details: err.Error()})
	}
}
