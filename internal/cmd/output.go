package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/marcoimmel/IteratorTools/internal/input"
	"github.com/marcoimmel/IteratorTools/internal/perf"
	"github.com/marcoimmel/IteratorTools/internal/pyfmt"
	"github.com/marcoimmel/IteratorTools/seq"
	"github.com/spf13/cobra"
)

// emit writes one line per value of producer, up to controller limit.
func emit[V any](cmd *cobra.Command, c Controller, sequences []input.Sequence, producer seq.Cursor[V], fields func(V) []string) (err error) {
	start := time.Now()
	var watch perf.StopWatch
	names := make([]string, len(sequences))
	for i, s := range sequences {
		names[i] = s.Name
	}
	render, err := lineRenderer(c, names)
	if err != nil {
		producer.Stop()
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer func() {
		ferr := out.Flush()
		if err == nil {
			err = ferr
		}
	}()

	if c.Header {
		err = writeLine(out, strings.Join(names, c.Separator))
		if err != nil {
			return
		}
	}

	count := 0
	for v := range seq.All(perf.Timed(producer, &watch)) {
		err = writeLine(out, render(fields(v)))
		if err != nil {
			return
		}
		count++
		if c.Limit > 0 && count >= c.Limit {
			slog.Debug("Limit reached.", "limit", c.Limit)
			break
		}
	}

	slog.Info("Combination complete.",
		"command", cmd.Name(),
		"count", count,
		"elapsed", time.Since(start),
		"producing", watch.Total,
		"mempeak", perf.FormatBytes(perf.ReadVMPeak()),
	)
	return
}

// lineRenderer returns the function turning tuple fields into an output line.
func lineRenderer(c Controller, names []string) (func([]string) string, error) {
	if c.Format == "" {
		return func(fields []string) string {
			return strings.Join(fields, c.Separator)
		}, nil
	}
	f, err := pyfmt.Parse(c.Format)
	if err == nil {
		err = f.Check(pyfmt.Keys(names)...)
	}
	if err != nil {
		return nil, usageError(fmt.Sprintf("format: %s", err))
	}
	return func(fields []string) string {
		return f.Format(pyfmt.Values(names, fields))
	}, nil
}

func writeLine(out *bufio.Writer, line string) error {
	_, err := out.WriteString(line)
	if err != nil {
		return err
	}
	return out.WriteByte('\n')
}
