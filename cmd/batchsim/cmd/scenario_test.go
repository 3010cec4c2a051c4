package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/landau-swap/landau/x/batchswap/types"
)

const twoBatchScenario = `
params:
  max_batch_size: 10
steps:
  - {action: init, pool: p1, mint_a: usdc, mint_b: atom, curve: rational}
  - {action: add, pool: p1, amount_a: 1000000, amount_b: 1000000}
  - {action: order, pool: p1, trader: alice, direction: a_for_b, amount: 1000}
  - {action: settle, pool: p1}
  - {action: order, pool: p1, trader: bob, direction: a_for_b, amount: "400000"}
  - {action: quote, pool: p1}
  - {action: settle, pool: p1, settler: carol}
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestScenarioReplay(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, twoBatchScenario))
	require.NoError(t, err)
	require.NotNil(t, sc.Params)
	require.Equal(t, uint32(10), sc.Params.MaxBatchSize)
	require.Len(t, sc.Steps, 7)

	sim, err := NewSimulator(log.NewNopLogger())
	require.NoError(t, err)

	results, err := sim.Run(sc, true)
	require.NoError(t, err)
	require.Len(t, results, 7)
	for _, r := range results {
		require.Empty(t, r.Error, "step %d", r.Index)
	}

	first := results[3].Receipt
	require.NotNil(t, first)
	require.Equal(t, math.NewInt(1_001_000), first.NewReserveA)
	require.Equal(t, math.NewInt(999_001), first.NewReserveB)
	require.Equal(t, math.OneInt(), first.FeeDelta)

	quoted := results[5].Receipt
	second := results[6].Receipt
	require.NotNil(t, quoted)
	require.NotNil(t, second)
	require.Equal(t, quoted.NewReserveA, second.NewReserveA)
	require.Equal(t, quoted.NewReserveB, second.NewReserveB)
	require.Equal(t, math.NewInt(1_401_000), second.NewReserveA)
	require.Equal(t, math.NewInt(615_125), second.NewReserveB)
	require.Equal(t, math.NewInt(15_325), second.FeeDelta)
	require.Equal(t, uint64(2), second.BatchId)

	pool, err := sim.Keeper().GetPool(sim.Context(), results[0].PoolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(15_326), pool.AccumulatedFeeB)
	require.Empty(t, pool.PendingOrders)
}

func TestScenarioRecordsFailures(t *testing.T) {
	body := `
steps:
  - {action: init, pool: p1, mint_a: usdc, mint_b: atom}
  - {action: add, pool: p1, amount_a: 1000, amount_b: 1000}
  - {action: order, pool: p1, direction: a_for_b, amount: 0}
  - {action: add, pool: p1, provider: mallory, amount_a: 1, amount_b: 1}
  - {action: order, pool: p1, direction: sideways, amount: 5}
  - {action: teleport, pool: p1}
`
	sc, err := LoadScenario(writeScenario(t, body))
	require.NoError(t, err)
	require.Nil(t, sc.Params)

	sim, err := NewSimulator(log.NewNopLogger())
	require.NoError(t, err)

	results, err := sim.Run(sc, false)
	require.NoError(t, err)
	require.Len(t, results, 6)
	require.Empty(t, results[1].Error)
	require.Contains(t, results[2].Error, types.ErrZeroAmount.Error())
	require.Contains(t, results[3].Error, types.ErrUnauthorized.Error())
	require.Contains(t, results[4].Error, types.ErrInvalidDirection.Error())
	require.Contains(t, results[5].Error, "unknown action")

	_, err = replayFresh(t, sc, true)
	require.Error(t, err)
}

// replayFresh replays sc on a fresh simulator.
func replayFresh(t *testing.T, sc Scenario, failFast bool) ([]StepResult, error) {
	t.Helper()
	sim, err := NewSimulator(log.NewNopLogger())
	require.NoError(t, err)
	return sim.Run(sc, failFast)
}

func TestScenarioEndBlockAdvancesHeight(t *testing.T) {
	body := `
params:
  batch_window_blocks: 2
steps:
  - {action: init, pool: p1, mint_a: usdc, mint_b: atom, curve: exponential}
  - {action: add, pool: p1, amount_a: 1000000, amount_b: 1000000}
  - {action: order, pool: p1, direction: b_for_a, amount: 5000}
  - {action: endblock}
  - {action: endblock}
  - {action: order, pool: p1, direction: a_for_b, amount: 7, height: 1}
`
	sc, err := LoadScenario(writeScenario(t, body))
	require.NoError(t, err)

	sim, err := NewSimulator(log.NewNopLogger())
	require.NoError(t, err)
	results, err := sim.Run(sc, false)
	require.NoError(t, err)

	require.Equal(t, int64(1), results[3].Height)
	require.Equal(t, int64(2), results[4].Height)
	require.Contains(t, results[4].Events, types.EventTypeBatchSettled)
	require.Contains(t, results[5].Error, "behind current height")
	require.Equal(t, int64(3), sim.Context().BlockHeight())

	pool, err := sim.Keeper().GetPool(sim.Context(), results[0].PoolID)
	require.NoError(t, err)
	require.Empty(t, pool.PendingOrders)
	require.Equal(t, int64(2), pool.LastSettledHeight)
	require.True(t, pool.AccumulatedFeeB.IsPositive())
}

func TestQuoteCommandOutput(t *testing.T) {
	var buf bytes.Buffer
	err := runQuote(&buf, types.CurveKindRational,
		math.NewInt(1_000_000), math.NewInt(1_000_000), math.NewInt(1_000_000), types.DirectionAForB)
	require.NoError(t, err)

	var out quoteOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Equal(t, "rational", out.Curve)
	require.Equal(t, math.NewInt(800_000), out.AmountOut)
	require.Equal(t, math.NewInt(200_000), out.FeeB)
	require.Equal(t, math.NewInt(2_000_000), out.NewReserveA)
	require.Equal(t, math.NewInt(200_000), out.NewReserveB)

	err = runQuote(&buf, types.CurveKindRational,
		math.NewInt(1_000), math.NewInt(1_000), math.NewInt(2_000), types.DirectionAForB)
	require.ErrorIs(t, err, types.ErrInvalidTradeSize)
}
