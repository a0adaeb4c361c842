package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/storage"
)

// printRunsTable writes stored analyses newest first.
func printRunsTable(out io.Writer, metas []storage.RunMetadata) error {
	sort.Slice(metas, func(i, j int) bool {
		return metas[i].Timestamp.After(metas[j].Timestamp)
	})

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tDATE\tSAMPLES\tSEED\tMEAN KM\tP(>5000)")
	for _, m := range metas {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.1f\t%.1f%%\n",
			m.ID,
			m.Timestamp.Format("2006-01-02 15:04"),
			m.Runs,
			m.Seed,
			m.Summary.MeanKm,
			m.Summary.PctTarget,
		)
	}
	return w.Flush()
}
