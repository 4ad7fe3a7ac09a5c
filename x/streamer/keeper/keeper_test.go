package keeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cosmossdk.io/core/store"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/cosmos/cosmos-sdk/x/authz"
	"github.com/cosmos/cosmos-sdk/x/bank"
	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/tx-streamer/x/streamer/keeper"
	"github.com/tokenize-x/tx-streamer/x/streamer/types"
)

const (
	oneDay = int64(24 * 60 * 60)

	// defaults used by newTestEnv: 1-day periods, 91-period reward cycle,
	// 1-day minimum spacing.
	defaultPeriodSeconds = oneDay
	defaultCyclePeriods  = uint64(91)
	defaultMinSpacing    = oneDay

	testDenom = "utkx"
)

// baseTime is an arbitrary period boundary the tests pivot around.
var baseTime = 20_000 * oneDay

var errZeroPromotionAmount = errors.New("cannot create promotion with zero amount")

type mockEpochTracker struct {
	periodSeconds int64
}

func (m *mockEpochTracker) PeriodLengthSeconds() int64 {
	return m.periodSeconds
}

func (m *mockEpochTracker) PeriodEndOnOrAfter(_ context.Context, timestamp int64) (int64, error) {
	rem := timestamp % m.periodSeconds
	if rem == 0 {
		return timestamp, nil
	}
	return timestamp - rem + m.periodSeconds, nil
}

type mockVaultKeeper struct {
	address       sdk.AccAddress
	owner         sdk.AccAddress
	tracker       types.EpochTracker
	cyclePeriods  uint64
	periodSeconds int64
}

func (m *mockVaultKeeper) Address() sdk.AccAddress {
	return m.address
}

func (m *mockVaultKeeper) Owner(_ context.Context) (sdk.AccAddress, error) {
	return m.owner, nil
}

func (m *mockVaultKeeper) EpochTracker() types.EpochTracker {
	return m.tracker
}

func (m *mockVaultKeeper) RewardCycleInfo() (uint64, int64) {
	return m.cyclePeriods, m.periodSeconds
}

type promotionCall struct {
	vault        sdk.AccAddress
	denom        string
	startTime    int64
	totalAmount  sdkmath.Int
	epochSeconds int64
	epochCount   uint32
}

type mockPromotionKeeper struct {
	address sdk.AccAddress
	tracker types.EpochTracker
	err     error

	nextID uint64
	calls  []promotionCall
}

func (m *mockPromotionKeeper) Address() sdk.AccAddress {
	return m.address
}

func (m *mockPromotionKeeper) EpochTracker() types.EpochTracker {
	return m.tracker
}

func (m *mockPromotionKeeper) CreatePromotion(
	_ context.Context,
	vault sdk.AccAddress,
	denom string,
	startTime int64,
	totalAmount sdkmath.Int,
	epochSeconds int64,
	epochCount uint32,
) (uint64, error) {
	if m.err != nil {
		return 0, m.err
	}
	if totalAmount.IsZero() {
		return 0, errZeroPromotionAmount
	}
	m.calls = append(m.calls, promotionCall{
		vault:        vault,
		denom:        denom,
		startTime:    startTime,
		totalAmount:  totalAmount,
		epochSeconds: epochSeconds,
		epochCount:   epochCount,
	})
	m.nextID++
	return m.nextID, nil
}

type mockBankKeeper struct {
	balances map[string]sdkmath.Int
}

func (m *mockBankKeeper) GetBalance(_ context.Context, _ sdk.AccAddress, denom string) sdk.Coin {
	amount, ok := m.balances[denom]
	if !ok {
		amount = sdkmath.ZeroInt()
	}
	return sdk.NewCoin(denom, amount)
}

type savedGrant struct {
	grantee       sdk.AccAddress
	granter       sdk.AccAddress
	authorization authz.Authorization
}

type mockAuthzKeeper struct {
	err    error
	grants []savedGrant
}

func (m *mockAuthzKeeper) SaveGrant(
	_ context.Context, grantee, granter sdk.AccAddress, authorization authz.Authorization, _ *time.Time,
) error {
	if m.err != nil {
		return m.err
	}
	m.grants = append(m.grants, savedGrant{
		grantee:       grantee,
		granter:       granter,
		authorization: authorization,
	})
	return nil
}

type mockAccountKeeper struct {
	moduleAddr sdk.AccAddress
}

func (m mockAccountKeeper) GetModuleAddress(string) sdk.AccAddress {
	return m.moduleAddr
}

type mockMessageRouter struct {
	handler baseapp.MsgServiceHandler
}

func (m mockMessageRouter) Handler(sdk.Msg) baseapp.MsgServiceHandler {
	return m.handler
}

func genAddress() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

type testEnv struct {
	ctx          sdk.Context
	storeService store.KVStoreService
	cdc          codec.Codec
	keeper       keeper.Keeper
	tracker      *mockEpochTracker
	vault        *mockVaultKeeper
	promotion    *mockPromotionKeeper
	bank         *mockBankKeeper
	authz        *mockAuthzKeeper
	router       *mockMessageRouter
	moduleAddr   sdk.AccAddress
	owner        sdk.AccAddress
}

type envOption func(*testEnv)

func withMinSpacing(seconds int64) envOption {
	return func(env *testEnv) {
		env.keeper = mustNewKeeperForEnv(env, seconds)
	}
}

// newTestEnv builds a keeper over an in-memory store together with
// collaborator fakes. The block time starts at one period past baseTime, so
// the first computed window ends exactly at baseTime.
func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	env := &testEnv{
		moduleAddr: authtypes.NewModuleAddress(types.ModuleName),
		owner:      genAddress(),
	}

	env.tracker = &mockEpochTracker{periodSeconds: defaultPeriodSeconds}
	env.vault = &mockVaultKeeper{
		address:       genAddress(),
		owner:         env.owner,
		tracker:       env.tracker,
		cyclePeriods:  defaultCyclePeriods,
		periodSeconds: defaultPeriodSeconds,
	}
	env.promotion = &mockPromotionKeeper{
		address: genAddress(),
		tracker: env.tracker,
	}
	env.bank = &mockBankKeeper{balances: map[string]sdkmath.Int{}}
	env.authz = &mockAuthzKeeper{}
	env.router = &mockMessageRouter{}

	key := storetypes.NewKVStoreKey(types.StoreKey)
	testCtx := testutil.DefaultContextWithDB(t, key, storetypes.NewTransientStoreKey("transient_test"))
	env.ctx = testCtx.Ctx.WithBlockTime(time.Unix(baseTime+defaultPeriodSeconds, 0))

	env.storeService = runtime.NewKVStoreService(key)
	env.cdc = moduletestutil.MakeTestEncodingConfig(bank.AppModuleBasic{}).Codec

	env.keeper = mustNewKeeperForEnv(env, defaultMinSpacing)

	for _, opt := range opts {
		opt(env)
	}

	return env
}

func mustNewKeeperForEnv(env *testEnv, minSpacingSeconds int64) keeper.Keeper {
	k, err := keeper.NewKeeper(
		env.storeService,
		env.cdc,
		env.vault,
		env.promotion,
		env.bank,
		mockAccountKeeper{moduleAddr: env.moduleAddr},
		env.authz,
		env.router,
		minSpacingSeconds,
	)
	if err != nil {
		panic(err)
	}
	return k
}

// setBlockTime moves the environment's block time to the given unix seconds.
func (env *testEnv) setBlockTime(unixSeconds int64) {
	env.ctx = env.ctx.WithBlockTime(time.Unix(unixSeconds, 0))
}

func TestNewKeeper_EpochTrackerMismatch(t *testing.T) {
	requireT := require.New(t)
	env := newTestEnv(t)

	// a second tracker instance with identical settings is still a mismatch
	env.promotion.tracker = &mockEpochTracker{periodSeconds: defaultPeriodSeconds}

	_, err := keeper.NewKeeper(
		env.storeService,
		env.cdc,
		env.vault,
		env.promotion,
		env.bank,
		mockAccountKeeper{moduleAddr: env.moduleAddr},
		env.authz,
		env.router,
		defaultMinSpacing,
	)
	requireT.ErrorIs(err, types.ErrEpochTrackerMismatch)
}

func TestNewKeeper_SpacingValidation(t *testing.T) {
	maxSpan := int64(defaultCyclePeriods) * defaultPeriodSeconds

	cases := []struct {
		name       string
		minSpacing int64
		wantErr    bool
	}{
		{name: "zero spacing", minSpacing: 0},
		{name: "spacing equal to span", minSpacing: maxSpan},
		{name: "spacing exceeds span", minSpacing: maxSpan + 1, wantErr: true},
		{name: "negative spacing", minSpacing: -1, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireT := require.New(t)
			env := newTestEnv(t)

			k, err := keeper.NewKeeper(
				env.storeService,
				env.cdc,
				env.vault,
				env.promotion,
				env.bank,
				mockAccountKeeper{moduleAddr: env.moduleAddr},
				env.authz,
				env.router,
				tc.minSpacing,
			)
			if tc.wantErr {
				requireT.ErrorIs(err, types.ErrInvalidConfig)
				return
			}
			requireT.NoError(err)
			requireT.Equal(tc.minSpacing, k.MinDistributionSpacingSeconds())
			requireT.Equal(maxSpan, k.MaxDistributionTimeSpanSeconds())
		})
	}
}

func TestKeeper_GetLastDistribution_DefaultsToZero(t *testing.T) {
	requireT := require.New(t)
	env := newTestEnv(t)

	endTime, err := env.keeper.GetLastDistribution(env.ctx, testDenom)
	requireT.NoError(err)
	requireT.Zero(endTime)
}
