package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/stretchr/testify/require"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil/integration"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/daic-network/daic-node/x/didregistry/keeper"
	"github.com/daic-network/daic-node/x/didregistry/types"
)

var genesisTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type testFixture struct {
	ctx sdk.Context
	k   keeper.Keeper
}

func SetupTest(t *testing.T) *testFixture {
	t.Helper()
	f := new(testFixture)

	logger := log.NewTestLogger(t)
	keys := storetypes.NewKVStoreKeys(types.ModuleName)
	f.ctx = sdk.NewContext(integration.CreateMultiStore(keys, logger), cmtproto.Header{Time: genesisTime}, false, logger)
	f.k = keeper.NewKeeper(runtime.NewKVStoreService(keys[types.ModuleName]), logger)

	return f
}

func TestRegisterAndResolveDID(t *testing.T) {
	f := SetupTest(t)

	doc, err := f.k.RegisterDID(f.ctx, "alice", "ed25519:abc")
	require.NoError(t, err)
	require.Equal(t, "did:daic:alice", doc.Id)
	require.Equal(t, "alice", doc.Controller)
	require.True(t, genesisTime.Equal(doc.Created))

	got, found, err := f.k.ResolveDID(f.ctx, "alice")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, doc.Id, got.Id)
	require.Equal(t, "ed25519:abc", got.VerificationMethod)

	_, found, err = f.k.ResolveDID(f.ctx, "bob")
	require.NoError(t, err)
	require.False(t, found)
}

func TestRegisterDID_UpdateKeepsCreated(t *testing.T) {
	f := SetupTest(t)

	_, err := f.k.RegisterDID(f.ctx, "alice", "ed25519:abc")
	require.NoError(t, err)

	later := f.ctx.WithBlockTime(genesisTime.Add(time.Hour))
	doc, err := f.k.RegisterDID(later, "alice", "ed25519:def")
	require.NoError(t, err)
	require.True(t, genesisTime.Equal(doc.Created))
	require.True(t, genesisTime.Add(time.Hour).Equal(doc.Updated))
	require.Equal(t, "ed25519:def", doc.VerificationMethod)
}

func TestRegisterDID_Validation(t *testing.T) {
	f := SetupTest(t)

	_, err := f.k.RegisterDID(f.ctx, "", "ed25519:abc")
	require.ErrorIs(t, err, types.ErrInvalidCaller)

	_, err = f.k.RegisterDID(f.ctx, "alice", " ")
	require.ErrorIs(t, err, types.ErrInvalidDocument)
}

func TestRevokeDID(t *testing.T) {
	f := SetupTest(t)

	_, err := f.k.RegisterDID(f.ctx, "alice", "ed25519:abc")
	require.NoError(t, err)

	require.ErrorIs(t, f.k.RevokeDID(f.ctx, "alice", "bob"), types.ErrDIDNotFound)
	require.ErrorIs(t, f.k.RevokeDID(f.ctx, "mallory", "alice"), types.ErrUnauthorized)

	doc, _, err := f.k.ResolveDID(f.ctx, "alice")
	require.NoError(t, err)
	require.False(t, doc.Revoked)

	require.NoError(t, f.k.RevokeDID(f.ctx, "alice", "alice"))
	doc, _, err = f.k.ResolveDID(f.ctx, "alice")
	require.NoError(t, err)
	require.True(t, doc.Revoked)

	require.ErrorIs(t, f.k.RevokeDID(f.ctx, "alice", "alice"), types.ErrDIDRevoked)

	_, err = f.k.RegisterDID(f.ctx, "alice", "ed25519:new")
	require.ErrorIs(t, err, types.ErrDIDRevoked)
}

func TestDIDGenesis(t *testing.T) {
	f := SetupTest(t)

	_, err := f.k.RegisterDID(f.ctx, "bob", "k1")
	require.NoError(t, err)
	_, err = f.k.RegisterDID(f.ctx, "alice", "k2")
	require.NoError(t, err)

	exported := f.k.ExportGenesis(f.ctx)
	require.Len(t, exported.Documents, 2)
	require.Equal(t, "alice", exported.Documents[0].Controller)

	g := SetupTest(t)
	require.NoError(t, g.k.InitGenesis(g.ctx, exported))
	all, err := g.k.GetAllDIDs(g.ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	bad := &types.GenesisState{Documents: []types.DIDDocument{{Id: "did:daic:x", Controller: "y", VerificationMethod: "k"}}}
	require.ErrorIs(t, g.k.InitGenesis(g.ctx, bad), types.ErrInvalidGenesis)
}
