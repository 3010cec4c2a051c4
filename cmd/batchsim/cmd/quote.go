package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/landau-swap/landau/x/batchswap/curve"
	"github.com/landau-swap/landau/x/batchswap/types"
)

type quoteOutput struct {
	Curve       string   `json:"curve"`
	Direction   string   `json:"direction"`
	AmountIn    math.Int `json:"amount_in"`
	AmountOut   math.Int `json:"amount_out"`
	FeeB        math.Int `json:"fee_b"`
	NewReserveA math.Int `json:"new_reserve_a"`
	NewReserveB math.Int `json:"new_reserve_b"`
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote a single trade against a curve",
	Long: `Evaluate one trade against the given reserves without touching any state.

Amounts are decimal integers and may exceed 64 bits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		kindStr, _ := flags.GetString("curve")
		dirStr, _ := flags.GetString("direction")
		raStr, _ := flags.GetString("reserve-a")
		rbStr, _ := flags.GetString("reserve-b")
		amountStr, _ := flags.GetString("amount")

		kind, err := types.ParseCurveKind(kindStr)
		if err != nil {
			return err
		}
		dir, err := types.ParseDirection(dirStr)
		if err != nil {
			return err
		}
		ra, err := parseAmount("reserve-a", raStr)
		if err != nil {
			return err
		}
		rb, err := parseAmount("reserve-b", rbStr)
		if err != nil {
			return err
		}
		amount, err := parseAmount("amount", amountStr)
		if err != nil {
			return err
		}

		return runQuote(cmd.OutOrStdout(), kind, ra, rb, amount, dir)
	},
}

func runQuote(w io.Writer, kind types.CurveKind, ra, rb, amount math.Int, dir types.Direction) error {
	res, err := curve.Evaluate(kind, ra, rb, amount, dir)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	return writeJSON(w, quoteOutput{
		Curve:       kind.String(),
		Direction:   dir.String(),
		AmountIn:    amount,
		AmountOut:   res.AmountOut,
		FeeB:        res.FeeB,
		NewReserveA: res.NewReserveA,
		NewReserveB: res.NewReserveB,
	})
}

func parseAmount(name, s string) (math.Int, error) {
	v, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s %q: expected a decimal integer", name, s)
	}
	return v, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().String("curve", types.CurveKindRational.String(), "curve kind (rational, exponential)")
	quoteCmd.Flags().String("direction", types.DirectionAForB.String(), "trade direction (a_for_b, b_for_a)")
	quoteCmd.Flags().String("reserve-a", "", "reserve of asset A")
	quoteCmd.Flags().String("reserve-b", "", "reserve of asset B")
	quoteCmd.Flags().String("amount", "", "input amount")
	_ = quoteCmd.MarkFlagRequired("reserve-a")
	_ = quoteCmd.MarkFlagRequired("reserve-b")
	_ = quoteCmd.MarkFlagRequired("amount")
}
