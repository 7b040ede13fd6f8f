package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/riskibarqy/football-analytics/internal/app"
	"github.com/riskibarqy/football-analytics/internal/config"
	"github.com/riskibarqy/football-analytics/internal/filterstate"
	"github.com/riskibarqy/football-analytics/internal/platform/logging"
	"github.com/riskibarqy/football-analytics/internal/render"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := logging.NewJSONWriter(cfg.LogLevel, os.Stderr)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := app.NewServices(cfg, logger)
	page, err := buildPage(ctx, svc, strings.ToLower(strings.TrimSpace(os.Args[1])), os.Args[2:])
	if err != nil {
		log.Fatal(err)
	}
	if err := render.WriteText(os.Stdout, page); err != nil {
		log.Fatal(err)
	}
}

func buildPage(ctx context.Context, svc *app.Services, cmd string, args []string) (render.Page, error) {
	switch cmd {
	case "overview":
		view, err := svc.Overview.Get(ctx)
		return render.Overview(view), err
	case "leagues":
		view, err := svc.Leagues.ByCountry(ctx)
		return render.Leagues(view), err
	case "teams":
		leagueID, err := optionalID(args, 0, "league id")
		if err != nil {
			return render.Page{}, err
		}
		view, err := svc.Leagues.Teams(ctx, filterstate.TeamsFilter{LeagueID: leagueID})
		return render.Teams(view), err
	case "standings":
		leagueID, err := optionalID(args, 0, "league id")
		if err != nil {
			return render.Page{}, err
		}
		seasonID, err := optionalID(args, 1, "season id")
		if err != nil {
			return render.Page{}, err
		}
		view, err := svc.Standings.Load(ctx, filterstate.StandingsFilter{LeagueID: leagueID, SeasonID: seasonID})
		return render.Standings(view), err
	case "seasons":
		leagueID, err := optionalID(args, 0, "league id")
		if err != nil {
			return render.Page{}, err
		}
		view, err := svc.Standings.Seasons(ctx, leagueID)
		return render.Seasons(view), err
	case "fixtures":
		f := filterstate.NewFixturesFilter()
		if len(args) > 0 {
			f.Team = strings.Join(args, " ")
		}
		view, err := svc.Fixtures.Load(ctx, f)
		return render.Fixtures(view), err
	case "h2h", "head-to-head":
		if len(args) < 2 {
			return render.Page{}, fmt.Errorf("h2h requires two team ids")
		}
		teamA, err := requiredID(args[0], "team a")
		if err != nil {
			return render.Page{}, err
		}
		teamB, err := requiredID(args[1], "team b")
		if err != nil {
			return render.Page{}, err
		}
		view, err := svc.HeadToHead.Compare(ctx, teamA, teamB)
		return render.HeadToHead(view), err
	case "players":
		f := filterstate.NewPlayersFilter()
		if len(args) > 0 {
			f.Search = strings.Join(args, " ")
		}
		view, err := svc.Players.Load(ctx, f)
		return render.Players(view), err
	case "top-scorers":
		leagueID, err := optionalID(args, 0, "league id")
		if err != nil {
			return render.Page{}, err
		}
		f := filterstate.NewTopScorersFilter()
		f.LeagueID = leagueID
		view, err := svc.Players.TopScorers(ctx, f)
		return render.TopScorers(view), err
	case "squad-stats":
		teamID, err := optionalID(args, 0, "team id")
		if err != nil {
			return render.Page{}, err
		}
		view, err := svc.SquadStats.Load(ctx, filterstate.SquadStatsFilter{TeamID: teamID})
		return render.SquadStats(view), err
	case "team":
		if len(args) < 1 {
			return render.Page{}, fmt.Errorf("team requires a team id")
		}
		teamID, err := requiredID(args[0], "team id")
		if err != nil {
			return render.Page{}, err
		}
		view, err := svc.TeamProfile.Get(ctx, teamID)
		return render.TeamProfile(view), err
	case "health":
		status := svc.Sync.CheckHealth(ctx)
		return render.Sync(status.Status, status.Database, status.Healthy(), svc.Sync.Log()), nil
	default:
		printUsage()
		os.Exit(2)
		return render.Page{}, nil
	}
}

func optionalID(args []string, pos int, name string) (*int64, error) {
	if len(args) <= pos {
		return nil, nil
	}
	v, err := requiredID(args[pos], name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func requiredID(raw, name string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}

func printUsage() {
	fmt.Println("usage: go run ./cmd/tables <view> [args]")
	fmt.Println("views:")
	fmt.Println("  overview")
	fmt.Println("  leagues")
	fmt.Println("  teams [league_id]")
	fmt.Println("  standings [league_id] [season_id]")
	fmt.Println("  seasons [league_id]")
	fmt.Println("  fixtures [team name]")
	fmt.Println("  h2h <team_a_id> <team_b_id>")
	fmt.Println("  players [search]")
	fmt.Println("  top-scorers [league_id]")
	fmt.Println("  squad-stats [team_id]")
	fmt.Println("  team <team_id>")
	fmt.Println("  health")
}
