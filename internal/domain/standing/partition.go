package standing

// KeySeparator joins league and season names in a group key.
const KeySeparator = " — "

type RankedRow struct {
	Row
	DisplayRank int
}

type Group struct {
	Key    string
	League string
	Season string
	Rows   []RankedRow
}

// Partition splits standings into the current table and historical tables
// grouped by league and season.
type Partition struct {
	Current  []RankedRow
	Previous []Group
}

func GroupKey(league, season string) string {
	return league + KeySeparator + season
}

// PartitionRows keeps input order everywhere: groups appear in first-seen order
// and rows keep their received order. A row without a rank is ranked by its
// 1-based position in rows, not in the table it lands in.
func PartitionRows(rows []Row) Partition {
	var out Partition
	index := make(map[string]int)

	for i, row := range rows {
		if row.IsCurrent {
			out.Current = append(out.Current, rank(row, i+1))
			continue
		}

		key := GroupKey(row.League, row.Season)
		pos, ok := index[key]
		if !ok {
			pos = len(out.Previous)
			index[key] = pos
			out.Previous = append(out.Previous, Group{Key: key, League: row.League, Season: row.Season})
		}
		g := &out.Previous[pos]
		g.Rows = append(g.Rows, rank(row, i+1))
	}

	return out
}

func rank(row Row, position int) RankedRow {
	display := position
	if row.Rank != nil {
		display = *row.Rank
	}
	return RankedRow{Row: row, DisplayRank: display}
}

// Len returns the number of rows across current and previous tables.
func (p Partition) Len() int {
	n := len(p.Current)
	for _, g := range p.Previous {
		n += len(g.Rows)
	}
	return n
}

func (p Partition) Empty() bool {
	return p.Len() == 0
}

func (p Partition) Group(key string) (Group, bool) {
	for _, g := range p.Previous {
		if g.Key == key {
			return g, true
		}
	}
	return Group{}, false
}
