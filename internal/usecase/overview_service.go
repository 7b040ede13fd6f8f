package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-analytics/internal/domain/health"
	"github.com/riskibarqy/football-analytics/internal/domain/league"
	"github.com/riskibarqy/football-analytics/internal/domain/standing"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
)

const defaultFanoutWorkers = 4

type Overview struct {
	State          ViewState
	Leagues        int
	Seasons        int
	CurrentSeasons int
	LeaguesState   ViewState
	SeasonsState   ViewState
	Health         health.Status
}

type OverviewService struct {
	leagueRepo   league.Repository
	standingRepo standing.Repository
	checker      health.Checker
	workers      int
	logger       *logging.Logger
	view         latestView[Overview]
}

func NewOverviewService(
	leagueRepo league.Repository,
	standingRepo standing.Repository,
	checker health.Checker,
	workers int,
	logger *logging.Logger,
) *OverviewService {
	if workers <= 0 {
		workers = defaultFanoutWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &OverviewService{
		leagueRepo:   leagueRepo,
		standingRepo: standingRepo,
		checker:      checker,
		workers:      workers,
		logger:       logger,
	}
}

// Get gathers the dashboard landing numbers. A failing source marks only its
// own section; an unreachable health endpoint reads as unhealthy.
func (s *OverviewService) Get(ctx context.Context) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverviewService.Get")
	defer span.End()

	ticket := s.view.begin(ctx)

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return Overview{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu       sync.Mutex
		overview = Overview{State: ViewReady}
		tasks    = []func(){
			func() {
				leagues, err := s.leagueRepo.ListLeagues(ctx)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					s.logger.WarnContext(ctx, "overview leagues failed", "error", err)
					overview.LeaguesState = ViewUnavailable
					return
				}
				overview.Leagues = len(leagues)
				overview.LeaguesState = stateFor(len(leagues))
			},
			func() {
				seasons, err := s.standingRepo.ListSeasons(ctx, nil)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					s.logger.WarnContext(ctx, "overview seasons failed", "error", err)
					overview.SeasonsState = ViewUnavailable
					return
				}
				overview.Seasons = len(seasons)
				for _, season := range seasons {
					if season.IsCurrent {
						overview.CurrentSeasons++
					}
				}
				overview.SeasonsState = stateFor(len(seasons))
			},
			func() {
				status, err := s.checker.Health(ctx)
				if err != nil {
					s.logger.WarnContext(ctx, "overview health check failed", "error", err)
					status = health.Unhealthy(unavailableMessage(err))
				}
				mu.Lock()
				overview.Health = status
				mu.Unlock()
			},
		}
	)

	var wg sync.WaitGroup
	for _, task := range tasks {
		task := task
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			task()
		}); err != nil {
			wg.Done()
			return Overview{}, fmt.Errorf("submit overview task: %w", err)
		}
	}
	wg.Wait()

	if overview.LeaguesState == ViewUnavailable && overview.SeasonsState == ViewUnavailable {
		overview.State = ViewUnavailable
	}

	if err := s.view.commit(ticket, overview); err != nil {
		return Overview{}, fmt.Errorf("get overview: %w", err)
	}
	return overview, nil
}
