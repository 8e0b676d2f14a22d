package input

import (
	"context"

	"getcooked/internal/domain"
)

// RoastService interface - Input port (use case)
// Defines what the application can do with an authenticated session
type RoastService interface {
	// Roast aggregates the user's listening data and asks the model to roast it
	Roast(ctx context.Context, session domain.Session) (*domain.RoastResult, error)
}
