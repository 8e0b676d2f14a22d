package http

import (
	"getcooked/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// GetRoast godoc
// @Summary Roast the logged-in user's music taste
// @Description Aggregates Spotify listening data and returns model-generated roasts
// @Tags Roast
// @Produce json
// @Success 200 {object} RoastResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /roast [get]
func (hdl *HTTPHandler) GetRoast(c *fiber.Ctx) error {
	session := hdl.cookies.Load(c)
	if !session.IsAuthenticated() {
		return hdl.writeError(c, domain.ErrUnauthenticated)
	}

	result, err := hdl.roast.Roast(c.UserContext(), session)
	if err != nil {
		return hdl.writeError(c, err)
	}

	requestLogger(c).Infof("Roast served with %d items", len(result.Roasts))

	return c.Status(fiber.StatusOK).JSON(newRoastResponse(result))
}
