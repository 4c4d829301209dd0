package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/piezoscope/analyzer"
	"github.com/cwbudde/piezoscope/measure/spike"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A40000"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#888888")).
			Padding(0, 1)

	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Bold(true)
)

// renderReport renders the buffer summary, region measurements and spike
// table.
func renderReport(ov analyzer.Overview, m analyzer.Measurement, records []spike.Record) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("piezoscope"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf(
		"%d samples received, %d retained (%.2f s), rate %s Hz",
		ov.Received, ov.Retained, ov.BufferDuration, ov.ActualRate.Format(0),
	)))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(renderMeasurement(m)))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(renderSpikes(records)))

	return b.String()
}

func renderMeasurement(m analyzer.Measurement) string {
	st := m.Stats

	return table(
		[]string{"Region", fmt.Sprintf("%.3f s to %.3f s (%.3f s)", m.Region.Start, m.Region.End, m.Region.Duration())},
		[]string{"Samples", fmt.Sprintf("%d", st.SampleCount)},
		[]string{"Sample rate", st.SampleRate.Format(0) + " Hz"},
		[]string{"RMS", st.RMS.Format(2)},
		[]string{"Peak-to-peak", st.PeakToPeak.Format(1)},
		[]string{"Zero crossings", fmt.Sprintf("%d", st.ZeroCrossings)},
		[]string{"Avg frequency", st.AvgFrequency.Format(1) + " Hz"},
		[]string{"Dominant", m.DominantFrequency.Format(1) + " Hz @ " + m.DominantLevel.Format(1) + " dB"},
		[]string{"Filter gain", m.DominantFilterGain.Format(2) + " dB"},
	)
}

func renderSpikes(records []spike.Record) string {
	if len(records) == 0 {
		return "No spikes above threshold"
	}

	rows := [][]string{{"#", "Time (s)", "Max", "Min", "Amplitude"}}
	for i, r := range records {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.4f", r.Time),
			fmt.Sprintf("%.1f", r.LocalMax),
			fmt.Sprintf("%.1f", r.LocalMin),
			fmt.Sprintf("%.1f", r.Amplitude()),
		})
	}

	return fmt.Sprintf("%d spikes\n%s", len(records), table(rows...))
}

func table(rows ...[]string) string {
	var b strings.Builder

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()

	return strings.TrimRight(b.String(), "\n")
}

func printHint(msg string) {
	fmt.Fprintln(os.Stderr, hintStyle.Render(msg))
}

func printFailure(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+msg))
}
