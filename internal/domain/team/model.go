package team

import "fmt"

// Team is a club as returned by the backend, with its league name resolved.
type Team struct {
	ID       int64
	Name     string
	LeagueID *int64
	League   *string
	FBRefID  *string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
