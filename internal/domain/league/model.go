package league

import "fmt"

// League is a competition tracked by the backend.
type League struct {
	ID      int64
	Name    string
	Country *string
	FBRefID *string
}

func (l League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}

// Season is one season of a league. At most one season per league is current.
type Season struct {
	LeagueID  int64
	League    string
	SeasonID  int64
	Season    string
	IsCurrent bool
}
