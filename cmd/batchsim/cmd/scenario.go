package cmd

import (
	"fmt"
	"strings"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	keepertest "github.com/landau-swap/landau/testutil/keeper"
	"github.com/landau-swap/landau/x/batchswap/keeper"
	"github.com/landau-swap/landau/x/batchswap/types"
)

// Step actions understood by the simulator.
const (
	ActionInit     = "init"
	ActionAdd      = "add"
	ActionRemove   = "remove"
	ActionOrder    = "order"
	ActionSettle   = "settle"
	ActionQuote    = "quote"
	ActionEndBlock = "endblock"
	ActionParams   = "params"
)

// Step is one scenario entry. Fields holds the raw YAML keys of the entry.
type Step struct {
	Action string
	Fields map[string]interface{}
}

// StepResult records the outcome of one replayed step.
type StepResult struct {
	Index   int                 `json:"index"`
	Action  string              `json:"action"`
	Height  int64               `json:"height"`
	Error   string              `json:"error,omitempty"`
	PoolID  string              `json:"pool_id,omitempty"`
	OrderID uint64              `json:"order_id,omitempty"`
	Reserve *[2]math.Int        `json:"reserves,omitempty"`
	Receipt *types.BatchReceipt `json:"receipt,omitempty"`
	Events  []string            `json:"events,omitempty"`
}

// Scenario is a parsed scenario file.
type Scenario struct {
	Params *types.Params
	Steps  []Step
}

// LoadScenario reads a YAML (or any viper-supported format) scenario file.
func LoadScenario(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("read scenario %s: %w", path, err)
	}
	return ParseScenario(v)
}

// ParseScenario decodes the params and steps keys of v.
func ParseScenario(v *viper.Viper) (Scenario, error) {
	var sc Scenario
	if v.IsSet("params") {
		params := types.DefaultParams()
		if v.IsSet("params.max_batch_size") {
			params.MaxBatchSize = v.GetUint32("params.max_batch_size")
		}
		if v.IsSet("params.batch_window_blocks") {
			params.BatchWindowBlocks = v.GetUint64("params.batch_window_blocks")
		}
		sc.Params = &params
	}

	raw, err := cast.ToSliceE(v.Get("steps"))
	if err != nil {
		return Scenario{}, fmt.Errorf("steps: %w", err)
	}
	for i, entry := range raw {
		fields, err := cast.ToStringMapE(entry)
		if err != nil {
			return Scenario{}, fmt.Errorf("step %d: %w", i, err)
		}
		action := strings.ToLower(cast.ToString(fields["action"]))
		if action == "" {
			return Scenario{}, fmt.Errorf("step %d: missing action", i)
		}
		sc.Steps = append(sc.Steps, Step{Action: action, Fields: fields})
	}
	return sc, nil
}

// Simulator replays scenario steps against an in-memory batchswap keeper.
type Simulator struct {
	keeper *keeper.Keeper
	msgs   types.MsgServer
	ctx    sdk.Context
	// pools maps scenario aliases to pool ids
	pools map[string]string
}

// NewSimulator returns a simulator over a fresh store at height 1.
func NewSimulator(logger log.Logger) (*Simulator, error) {
	k, ctx, err := keepertest.NewInMemoryKeeper(logger)
	if err != nil {
		return nil, err
	}
	return &Simulator{
		keeper: k,
		msgs:   keeper.NewMsgServerImpl(*k),
		ctx:    ctx,
		pools:  make(map[string]string),
	}, nil
}

// Keeper exposes the underlying keeper for inspection.
func (s *Simulator) Keeper() *keeper.Keeper { return s.keeper }

// Context returns the current simulation context.
func (s *Simulator) Context() sdk.Context { return s.ctx }

// Run applies sc and returns one result per step. Step failures are recorded
// in the results; with failFast the first one also aborts the run.
func (s *Simulator) Run(sc Scenario, failFast bool) ([]StepResult, error) {
	if sc.Params != nil {
		if err := s.keeper.SetParams(s.ctx, *sc.Params); err != nil {
			return nil, fmt.Errorf("params: %w", err)
		}
	}

	results := make([]StepResult, 0, len(sc.Steps))
	for i, step := range sc.Steps {
		res := s.Apply(i, step)
		results = append(results, res)
		if failFast && res.Error != "" {
			return results, fmt.Errorf("step %d (%s): %s", i, step.Action, res.Error)
		}
	}
	return results, nil
}

// Apply executes a single step.
func (s *Simulator) Apply(index int, step Step) StepResult {
	if h, ok := step.Fields["height"]; ok {
		height, err := cast.ToInt64E(h)
		if err != nil {
			return StepResult{Index: index, Action: step.Action, Height: s.ctx.BlockHeight(), Error: fmt.Sprintf("height: %v", err)}
		}
		if height < s.ctx.BlockHeight() {
			return StepResult{Index: index, Action: step.Action, Height: s.ctx.BlockHeight(),
				Error: fmt.Sprintf("height %d is behind current height %d", height, s.ctx.BlockHeight())}
		}
		s.ctx = s.ctx.WithBlockHeight(height)
	}

	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())
	res := StepResult{Index: index, Action: step.Action, Height: s.ctx.BlockHeight()}
	if err := s.dispatch(step, &res); err != nil {
		res.Error = err.Error()
	}
	for _, ev := range s.ctx.EventManager().Events() {
		res.Events = append(res.Events, ev.Type)
	}
	if step.Action == ActionEndBlock {
		s.ctx = s.ctx.WithBlockHeight(s.ctx.BlockHeight() + 1)
	}
	return res
}

func (s *Simulator) dispatch(step Step, res *StepResult) error {
	f := step.Fields
	switch step.Action {
	case ActionInit:
		kind, err := types.ParseCurveKind(stringField(f, "curve", types.CurveKindRational.String()))
		if err != nil {
			return err
		}
		mintA, mintB := stringField(f, "mint_a", ""), stringField(f, "mint_b", "")
		resp, err := s.msgs.InitializePool(s.ctx, types.NewMsgInitializePool(
			actorAddress(stringField(f, "authority", "authority")),
			mintA, mintB,
			stringField(f, "vault_a", "vault-"+mintA),
			stringField(f, "vault_b", "vault-"+mintB),
			kind,
		))
		if err != nil {
			return err
		}
		s.pools[stringField(f, "pool", resp.PoolId)] = resp.PoolId
		res.PoolID = resp.PoolId
		return nil

	case ActionAdd, ActionRemove:
		poolID, err := s.poolID(f)
		if err != nil {
			return err
		}
		res.PoolID = poolID
		amountA, err := amountField(f, "amount_a")
		if err != nil {
			return err
		}
		amountB, err := amountField(f, "amount_b")
		if err != nil {
			return err
		}
		provider := actorAddress(stringField(f, "provider", "authority"))

		var ra, rb math.Int
		if step.Action == ActionAdd {
			resp, err := s.msgs.AddLiquidity(s.ctx, types.NewMsgAddLiquidity(provider, poolID, amountA, amountB))
			if err != nil {
				return err
			}
			ra, rb = resp.ReserveA, resp.ReserveB
		} else {
			resp, err := s.msgs.RemoveLiquidity(s.ctx, types.NewMsgRemoveLiquidity(provider, poolID, amountA, amountB))
			if err != nil {
				return err
			}
			ra, rb = resp.ReserveA, resp.ReserveB
		}
		res.Reserve = &[2]math.Int{ra, rb}
		return nil

	case ActionOrder:
		poolID, err := s.poolID(f)
		if err != nil {
			return err
		}
		res.PoolID = poolID
		dir, err := types.ParseDirection(stringField(f, "direction", ""))
		if err != nil {
			return err
		}
		amount, err := amountField(f, "amount")
		if err != nil {
			return err
		}
		resp, err := s.msgs.PlaceOrder(s.ctx, types.NewMsgPlaceOrder(
			actorAddress(stringField(f, "trader", "trader")), poolID, dir, amount))
		if err != nil {
			return err
		}
		res.OrderID = resp.OrderId
		return nil

	case ActionSettle:
		poolID, err := s.poolID(f)
		if err != nil {
			return err
		}
		res.PoolID = poolID
		resp, err := s.msgs.SettleBatch(s.ctx, types.NewMsgSettleBatch(
			actorAddress(stringField(f, "settler", "settler")), poolID))
		if err != nil {
			return err
		}
		res.Receipt = &resp.Receipt
		res.Reserve = &[2]math.Int{resp.Receipt.NewReserveA, resp.Receipt.NewReserveB}
		return nil

	case ActionQuote:
		poolID, err := s.poolID(f)
		if err != nil {
			return err
		}
		res.PoolID = poolID
		receipt, err := s.keeper.QuoteBatch(s.ctx, poolID)
		if err != nil {
			return err
		}
		res.Receipt = &receipt
		return nil

	case ActionEndBlock:
		return s.keeper.EndBlocker(s.ctx)

	case ActionParams:
		params, err := s.keeper.GetParams(s.ctx)
		if err != nil {
			return err
		}
		if v, ok := f["max_batch_size"]; ok {
			if params.MaxBatchSize, err = cast.ToUint32E(v); err != nil {
				return fmt.Errorf("max_batch_size: %w", err)
			}
		}
		if v, ok := f["batch_window_blocks"]; ok {
			if params.BatchWindowBlocks, err = cast.ToUint64E(v); err != nil {
				return fmt.Errorf("batch_window_blocks: %w", err)
			}
		}
		return s.keeper.SetParams(s.ctx, params)

	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
}

// poolID resolves the pool key of a step, which is either an alias set by a
// previous init step or a raw pool id.
func (s *Simulator) poolID(f map[string]interface{}) (string, error) {
	ref := stringField(f, "pool", "")
	if ref == "" {
		return "", fmt.Errorf("missing pool")
	}
	if id, ok := s.pools[ref]; ok {
		return id, nil
	}
	return ref, nil
}

func stringField(f map[string]interface{}, key, def string) string {
	v, ok := f[key]
	if !ok {
		return def
	}
	s := strings.TrimSpace(cast.ToString(v))
	if s == "" {
		return def
	}
	return s
}

// amountField parses an integer amount. Values above 2^53 must be quoted in
// YAML to survive decoding.
func amountField(f map[string]interface{}, key string) (math.Int, error) {
	v, ok := f[key]
	if !ok {
		return math.ZeroInt(), nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return math.Int{}, fmt.Errorf("%s: %w", key, err)
	}
	return parseAmount(key, strings.TrimSpace(s))
}

// actorAddress maps a scenario actor name to a bech32 account address.
// Names that already are valid addresses are returned unchanged.
func actorAddress(name string) string {
	if _, err := sdk.AccAddressFromBech32(name); err == nil {
		return name
	}
	return keepertest.TestAddress(name)
}
