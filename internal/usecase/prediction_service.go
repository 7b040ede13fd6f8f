package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-analytics/internal/domain/prediction"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

const predictionFailedMessage = "Prediction failed"

type PredictionView struct {
	State   ViewState
	Result  prediction.Result
	Message string
}

type PredictionService struct {
	repo   prediction.Repository
	logger *logging.Logger
	view   latestView[PredictionView]
}

func NewPredictionService(repo prediction.Repository, logger *logging.Logger) *PredictionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PredictionService{repo: repo, logger: logger}
}

// Generate asks the prediction service about a fixture. Service-side
// failures come back as a view with a message, not as an error.
func (s *PredictionService) Generate(ctx context.Context, req prediction.Request) (PredictionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Generate")
	defer span.End()

	if err := req.Validate(); err != nil {
		return PredictionView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	ticket := s.view.begin(ctx)

	var view PredictionView
	result, err := s.repo.GeneratePrediction(ctx, req)
	switch {
	case err != nil:
		s.logger.WarnContext(ctx, "generate prediction failed", "home_team", req.HomeTeam, "away_team", req.AwayTeam, "error", err)
		view = PredictionView{State: ViewUnavailable, Message: unavailableMessage(err)}
	case result.Failed():
		msg := result.Error
		if msg == "" {
			msg = predictionFailedMessage
		}
		view = PredictionView{State: ViewUnavailable, Result: result, Message: msg}
	default:
		view = PredictionView{State: ViewReady, Result: result}
	}

	if err := s.view.commit(ticket, view); err != nil {
		return PredictionView{}, fmt.Errorf("generate prediction: %w", err)
	}
	return view, nil
}
