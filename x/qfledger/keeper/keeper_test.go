package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil/integration"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/daic-network/daic-node/x/qfledger/keeper"
	"github.com/daic-network/daic-node/x/qfledger/types"
)

const (
	alice = "alice.daic"
	bob   = "bob.daic"
	carol = "carol.daic"
)

type testFixture struct {
	ctx       sdk.Context
	k         keeper.Keeper
	authority string
}

func SetupTest(t *testing.T) *testFixture {
	t.Helper()
	f := new(testFixture)

	logger := log.NewTestLogger(t)

	keys := storetypes.NewKVStoreKeys(types.ModuleName)
	header := cmtproto.Header{Height: 1, Time: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	f.ctx = sdk.NewContext(integration.CreateMultiStore(keys, logger), header, false, logger)

	f.authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()
	f.k = keeper.NewKeeper(runtime.NewKVStoreService(keys[types.ModuleName]), logger, f.authority)

	return f
}

// eventsOfType returns the emitted events with the given type, in order.
func eventsOfType(ctx sdk.Context, eventType string) []sdk.Event {
	var out []sdk.Event
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}
