// Package render turns view models into tables and cards. It derives display
// values only; grouping and tallying happen before a view reaches it.
package render

// Placeholder stands in for any missing optional value.
const Placeholder = "—"

type Tone string

const (
	ToneDefault  Tone = ""
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
	ToneMuted    Tone = "muted"
	ToneWarning  Tone = "warning"
)

type Cell struct {
	Text string `json:"text"`
	Tone Tone   `json:"tone,omitempty"`
}

type Table struct {
	Title   string   `json:"title,omitempty"`
	Columns []string `json:"columns"`
	Rows    [][]Cell `json:"rows"`
	// Empty is shown instead of rows when there are none.
	Empty string `json:"empty,omitempty"`
}

type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Tone  Tone   `json:"tone,omitempty"`
}

type Card struct {
	Title   string  `json:"title"`
	Tone    Tone    `json:"tone,omitempty"`
	Fields  []Field `json:"fields,omitempty"`
	Message string  `json:"message,omitempty"`
}

// Page is one rendered view.
type Page struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle,omitempty"`
	State    string  `json:"state"`
	Message  string  `json:"message,omitempty"`
	Warning  string  `json:"warning,omitempty"`
	Cards    []Card  `json:"cards,omitempty"`
	Tables   []Table `json:"tables,omitempty"`
}

func cell(text string) Cell {
	return Cell{Text: text}
}

func toned(text string, tone Tone) Cell {
	return Cell{Text: text, Tone: tone}
}
