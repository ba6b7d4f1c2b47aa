package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"

	"github.com/cinelens-org/cinelens/reports"
)

// ============================================================================
// OUTPUT RENDERING — csv, json, pretty
// ============================================================================
// csv and pretty render the Table (exact contract column names); json
// marshals the typed rows so field names stay machine-friendly.
// ============================================================================

// render writes a report result to --out or stdout in the --format encoding.
func render(rows any, table reports.Table) error {
	var w io.Writer = os.Stdout
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	var err error
	switch flagFormat {
	case "csv":
		err = writeCSV(w, table)
	case "json":
		err = writeJSON(w, rows)
	case "pretty":
		err = writePretty(w, table)
	default:
		return fmt.Errorf("unknown format %q (want csv, json, or pretty)", flagFormat)
	}
	if err != nil {
		return err
	}

	if flagOut != "" {
		log.Info().Str("path", flagOut).Str("format", flagFormat).Msg("Report written")
	}
	return nil
}

func writeCSV(w io.Writer, table reports.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Columns); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, rows any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func writePretty(w io.Writer, table reports.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	writeTabRow(tw, table.Columns)
	for _, row := range table.Rows {
		writeTabRow(tw, row)
	}
	return tw.Flush()
}

func writeTabRow(w io.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}
