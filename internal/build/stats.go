package build

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"hitsdeck/internal/track"
)

// Stats accumulates per-year and per-decade track counts. It exists so the
// deck curator can see the era distribution and rebalance the track
// selection; it is threaded through the pipeline explicitly rather than
// living in package state.
type Stats struct {
	years   map[int]int
	decades map[int]int
	total   int
}

// NewStats returns an empty accumulator.
func NewStats() *Stats {
	return &Stats{years: map[int]int{}, decades: map[int]int{}}
}

// Record counts one track.
func (s *Stats) Record(tr track.Track) {
	s.years[tr.Year]++
	s.decades[track.Decade(tr.Year)]++
	s.total++
}

// Total returns the number of recorded tracks.
func (s *Stats) Total() int {
	return s.total
}

// WriteTo prints the year and decade histograms plus the total. Unknown
// years surface as their own "????" bucket rather than masquerading as the
// year zero.
func (s *Stats) WriteTo(w io.Writer) {
	fmt.Fprintln(w, "YEAR STATISTICS")
	fmt.Fprintln(w, renderHistogram(s.years, yearLabel))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "DECADE STATISTICS")
	fmt.Fprintln(w, renderHistogram(s.decades, decadeLabel))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "TOTAL\n%d tracks\n", s.total)
}

func yearLabel(year int) string {
	if year == track.YearUnknown {
		return "????"
	}
	return strconv.Itoa(year)
}

func decadeLabel(decade int) string {
	if decade == track.YearUnknown {
		return "????s"
	}
	return strconv.Itoa(decade) + "s"
}

func renderHistogram(counts map[int]int, label func(int) string) string {
	keys := make([]int, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Era", "Tracks", ""})
	for _, key := range keys {
		count := counts[key]
		tw.AppendRow(table.Row{label(key), count, strings.Repeat("#", count)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
	})
	return tw.Render()
}
