package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/marcoimmel/IteratorTools/internal/input"
	"github.com/marcoimmel/IteratorTools/internal/lists"
	"github.com/marcoimmel/IteratorTools/seq"
	"github.com/spf13/cobra"
)

func newProductCommand(controller *Controller) *cobra.Command {
	return &cobra.Command{
		Use:   "product",
		Short: "Cartesian product of sequences, last sequence varying fastest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sequences, err := loadSequences(*controller)
			if err != nil {
				return err
			}
			if len(sequences) == 0 {
				slog.Warn("No sequences, product is empty.")
			}
			sources := make([]seq.Iterable[string], len(sequences))
			for i, s := range sequences {
				sources[i] = s.Source()
			}
			p := seq.Product(sources...)
			return emit(cmd, *controller, sequences, p, func(t []string) []string { return t })
		},
	}
}

func newPairCommand(controller *Controller) *cobra.Command {
	return &cobra.Command{
		Use:   "pair",
		Short: "Cartesian product of two sequences, first one consumed once",
		Long: `Cartesian product of two sequences, second varying fastest.

The first sequence is consumed once: it can be an infinite count
even if the second is empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sequences, err := loadSequences(*controller)
			if err != nil {
				return err
			}
			if len(sequences) != 2 {
				return usageError(fmt.Sprintf("pair requires 2 sequences, got %d", len(sequences)))
			}
			first, second := sequences[0], sequences[1]
			if first.Infinite() {
				// Keep integer typing of progression.
				p := seq.ProductPair(first.Ints(), second.Source())
				return emit(cmd, *controller, sequences, p, func(p seq.Pair[int, string]) []string {
					return []string{strconv.Itoa(p.First), p.Second}
				})
			}
			p := seq.ProductPair(first.Source(), second.Source())
			return emit(cmd, *controller, sequences, p, pairFields)
		},
	}
}

func newZipCommand(controller *Controller) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zip",
		Short: "Pair two sequences until both are exhausted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sequences, err := loadSequences(*controller)
			if err != nil {
				return err
			}
			if len(sequences) != 2 {
				return usageError(fmt.Sprintf("zip requires 2 sequences, got %d", len(sequences)))
			}
			fill := controller.Fill
			if len(fill) > 2 {
				return usageError("zip accepts at most 2 fill values")
			}
			fill = append(fill, make([]string, 2-len(fill))...)
			z := seq.ZipLongest(sequences[0].Source(), sequences[1].Source(), fill[0], fill[1])
			return emit(cmd, *controller, sequences, z, pairFields)
		},
	}
	cmd.Flags().StringArrayP("fill", "f", nil, "Fill value for exhausted sequence. Repeat for second sequence.")
	return cmd
}

func pairFields(p seq.Pair[string, string]) []string {
	return []string{p.First, p.Second}
}

func loadSequences(c Controller) ([]input.Sequence, error) {
	sequences, err := input.Load(c.Sequences, c.Input, input.Options{
		Distinct: c.Distinct,
		Exclude:  c.Exclude,
	})
	if err != nil {
		return nil, err
	}
	if lists.Any(sequences, input.Sequence.Infinite) && c.Limit <= 0 {
		return nil, usageError("infinite sequence requires --limit")
	}
	return sequences, nil
}
