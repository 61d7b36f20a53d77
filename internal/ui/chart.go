package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Bar is one category of a BarChart; Values holds one value per series.
type Bar struct {
	Label  string
	Values []int
}

// BarChart draws horizontal text bars. With more than one series each
// category is drawn as a group, one line per series.
type BarChart struct {
	Title  string
	Series []string
	Bars   []Bar
	Width  int // cells for the largest value; 40 when zero
}

var seriesGlyphs = []rune{'#', '=', '+', '~'}

func (c BarChart) Render(w io.Writer) error {
	width := c.Width
	if width <= 0 {
		width = 40
	}
	max, labelW := 0, 0
	for _, b := range c.Bars {
		if n := utf8.RuneCountInString(b.Label); n > labelW {
			labelW = n
		}
		for _, v := range b.Values {
			if v > max {
				max = v
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(c.Title + "\n")
	if len(c.Series) > 1 {
		legend := make([]string, len(c.Series))
		for i, s := range c.Series {
			legend[i] = fmt.Sprintf("%c %s", seriesGlyphs[i%len(seriesGlyphs)], s)
		}
		sb.WriteString("  " + strings.Join(legend, "   ") + "\n")
	}
	if len(c.Bars) == 0 {
		sb.WriteString("  (no data)\n")
	}
	for _, b := range c.Bars {
		for i, v := range b.Values {
			label := ""
			if i == 0 {
				label = b.Label
			}
			cells := 0
			if max > 0 && v > 0 {
				cells = v * width / max
				if cells == 0 {
					cells = 1
				}
			}
			fmt.Fprintf(&sb, "  %-*s |%s %d\n", labelW, label,
				strings.Repeat(string(seriesGlyphs[i%len(seriesGlyphs)]), cells), v)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
