package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/importer"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/render"
)

type settleOptions struct {
	file     string
	expenses []string
	strategy string
}

func newSettleCommand() *cobra.Command {
	var opts settleOptions

	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Record a batch of expenses and print who pays whom",
		Example: `  splitledger settle -e "Hotel|60|Alice|Alice,Bob" -e "Train|30|Bob|Bob,Carol"
  splitledger settle --file trip.csv --strategy largest
  cat trip.csv | splitledger settle --file -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettle(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "CSV file with "+importer.Header+" rows (- for stdin)")
	cmd.Flags().StringArrayVarP(&opts.expenses, "expense", "e", nil, "expense as description|amount|paid_by|a,b,c (repeatable)")
	cmd.Flags().StringVar(&opts.strategy, "strategy", string(calculator.StrategyGreedy), "settlement strategy: greedy or largest")

	return cmd
}

func runSettle(stdin io.Reader, out io.Writer, opts settleOptions) error {
	strategy, err := calculator.ParseStrategy(opts.strategy)
	if err != nil {
		return err
	}

	inputs, err := collectInputs(stdin, opts)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no expenses given: use --file or --expense")
	}

	l := ledger.New()
	for i, in := range inputs {
		e, err := l.RecordInput(in)
		if err != nil {
			return fmt.Errorf("expense %d (%q): %w", i+1, in.Description, err)
		}
		slog.Debug("Expense recorded", "seq", e.Seq, "paid_by", e.PaidBy, "amount", e.Amount.String())
	}

	balances := l.ComputeBalances()
	txs := strategy.Settle(balances)
	slog.Info("Settlement computed", "strategy", strategy, "members", len(balances), "transactions", len(txs))

	sections := []struct {
		title string
		write func() error
	}{
		{"Expenses", func() error { return render.Expenses(out, l.ExpensesNewestFirst(), l) }},
		{"Balances", func() error { return render.Balances(out, balances) }},
		{"Settle up", func() error { return render.Settlement(out, txs) }},
	}
	for i, s := range sections {
		if err := writeSection(out, i > 0, s.title, s.write); err != nil {
			return fmt.Errorf("writing %s: %w", s.title, err)
		}
	}
	return nil
}

func writeSection(out io.Writer, spaced bool, title string, body func() error) error {
	if spaced {
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(out, "%s:\n", title); err != nil {
		return err
	}
	return body()
}

func collectInputs(stdin io.Reader, opts settleOptions) ([]ledger.ExpenseInput, error) {
	var inputs []ledger.ExpenseInput

	if opts.file != "" {
		r := stdin
		if opts.file != "-" {
			f, err := os.Open(opts.file)
			if err != nil {
				return nil, fmt.Errorf("opening expenses file: %w", err)
			}
			defer f.Close()
			r = f
		}
		fromFile, err := importer.ReadExpenses(r)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, fromFile...)
	}

	for _, raw := range opts.expenses {
		in, err := importer.ParseFlag(raw)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}
