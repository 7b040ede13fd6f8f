package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

const columnGap = "  "

// WriteText prints a page as plain aligned tables for terminals.
func WriteText(w io.Writer, p Page) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString(p.Title)
	buf.WriteByte('\n')
	if p.Subtitle != "" {
		buf.WriteString(p.Subtitle)
		buf.WriteByte('\n')
	}
	if p.Message != "" {
		fmt.Fprintf(buf, "\n%s\n", p.Message)
	}
	if p.Warning != "" {
		fmt.Fprintf(buf, "\nwarning: %s\n", p.Warning)
	}

	for _, c := range p.Cards {
		writeCard(buf, c)
	}
	for _, t := range p.Tables {
		writeTable(buf, t)
	}

	if _, err := w.Write(buf.B); err != nil {
		return fmt.Errorf("write page %q: %w", p.Title, err)
	}
	return nil
}

func writeCard(buf *bytebufferpool.ByteBuffer, c Card) {
	fmt.Fprintf(buf, "\n[%s]\n", c.Title)
	if c.Message != "" {
		fmt.Fprintf(buf, "  %s\n", c.Message)
	}
	width := 0
	for _, f := range c.Fields {
		width = max(width, utf8.RuneCountInString(f.Label))
	}
	for _, f := range c.Fields {
		fmt.Fprintf(buf, "  %s%s  %s\n", f.Label, pad(f.Label, width), f.Value)
	}
}

func writeTable(buf *bytebufferpool.ByteBuffer, t Table) {
	buf.WriteByte('\n')
	if t.Title != "" {
		fmt.Fprintf(buf, "== %s ==\n", t.Title)
	}
	if len(t.Rows) == 0 {
		if t.Empty != "" {
			buf.WriteString(t.Empty)
			buf.WriteByte('\n')
		}
		return
	}

	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = utf8.RuneCountInString(c)
	}
	for _, row := range t.Rows {
		for i, c := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(c.Text))
			}
		}
	}

	writeLine(buf, t.Columns, widths)
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	writeLine(buf, rule, widths)
	for _, row := range t.Rows {
		texts := make([]string, len(row))
		for i, c := range row {
			texts[i] = c.Text
		}
		writeLine(buf, texts, widths)
	}
}

func writeLine(buf *bytebufferpool.ByteBuffer, cols []string, widths []int) {
	var line strings.Builder
	for i, text := range cols {
		if i >= len(widths) {
			break
		}
		if i > 0 {
			line.WriteString(columnGap)
		}
		line.WriteString(text)
		line.WriteString(pad(text, widths[i]))
	}
	buf.WriteString(strings.TrimRight(line.String(), " "))
	buf.WriteByte('\n')
}

func pad(text string, width int) string {
	n := width - utf8.RuneCountInString(text)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
