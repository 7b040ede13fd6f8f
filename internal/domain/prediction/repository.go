package prediction

import "context"

// Repository forwards prediction requests to the external service.
type Repository interface {
	GeneratePrediction(ctx context.Context, req Request) (Result, error)
}
