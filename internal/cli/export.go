package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/deadlyhood/carbonlog/internal/entry"
	"github.com/deadlyhood/carbonlog/internal/logstore"
	"github.com/deadlyhood/carbonlog/internal/stats"
	"github.com/spf13/cobra"
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Write the full log as a report file",
	StrFlags: []StringFlag{
		{Name: "format", Usage: "export format (text or pdf)", Default: "text"},
		{Name: "out", Usage: "output path (default: carbonlog-report.txt or .pdf)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := ResolveStore()
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")

		return runExport(cmd, store, format, outPath, time.Now)
	},
}.Build()

func runExport(cmd *cobra.Command, store *logstore.Store, format, outPath string, nowFn func() time.Time) error {
	entries, err := store.ReadAll()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no entries to export")
		return nil
	}

	lines, total := stats.ExportSummary(entries)
	generated := nowFn().Format(entry.DateLayout)

	switch format {
	case "text":
		if outPath == "" {
			outPath = "carbonlog-report.txt"
		}
		if err := renderExportText(lines, total, generated, outPath); err != nil {
			return err
		}
	case "pdf":
		if outPath == "" {
			outPath = "carbonlog-report.pdf"
		}
		if err := renderExportPDF(lines, total, generated, outPath); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported export format %q (supported: text, pdf)", format)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(lines), outPath)
	return nil
}

// renderExportText writes the plain-text report: a header line with the
// generation date, one line per stored entry, and a trailing total line.
func renderExportText(lines []stats.ExportLine, total float64, generated, outputPath string) error {
	var b strings.Builder

	b.WriteString("Carbon footprint report generated " + generated + "\n")
	for _, l := range lines {
		b.WriteString(fmt.Sprintf("%s , %s CO2\n", l.Date, entry.FormatKg(l.FootprintKg)))
	}
	b.WriteString(fmt.Sprintf("Total , %s CO2\n", entry.FormatKg(total)))

	return os.WriteFile(outputPath, []byte(b.String()), 0644)
}
