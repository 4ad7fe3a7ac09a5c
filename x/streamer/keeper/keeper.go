package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdkstore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/tx-streamer/x/streamer/types"
)

// Keeper of the module.
type Keeper struct {
	storeService sdkstore.KVStoreService

	// codec
	cdc codec.Codec

	// keepers
	vaultKeeper     types.VaultKeeper
	promotionKeeper types.PromotionKeeper
	bankKeeper      types.BankKeeper
	accountKeeper   types.AccountKeeper
	authzKeeper     types.AuthzKeeper
	router          types.MessageRouter

	// epochTracker is shared by the vault and the promotion service, verified
	// at construction.
	epochTracker types.EpochTracker
	moduleAddr   sdk.AccAddress

	// distribution policy, immutable once constructed
	minDistributionSpacingSeconds  int64
	maxDistributionTimeSpanSeconds int64

	// collections
	Schema           collections.Schema
	LastDistribution collections.Map[string, int64]
}

// NewKeeper returns a new keeper object providing storage options required by
// the module. It fails when the vault and the promotion service disagree on the
// epoch tracker, or when the minimum distribution spacing exceeds the maximum
// distribution time span derived from the vault's reward cycle.
func NewKeeper(
	storeService sdkstore.KVStoreService,
	cdc codec.Codec,
	vaultKeeper types.VaultKeeper,
	promotionKeeper types.PromotionKeeper,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
	authzKeeper types.AuthzKeeper,
	router types.MessageRouter,
	minDistributionSpacingSeconds int64,
) (Keeper, error) {
	if vaultKeeper.EpochTracker() != promotionKeeper.EpochTracker() {
		return Keeper{}, errorsmod.Wrap(
			types.ErrEpochTrackerMismatch,
			"window boundaries would not line up with promotion epochs",
		)
	}

	periods, periodLengthSeconds := vaultKeeper.RewardCycleInfo()
	maxDistributionTimeSpanSeconds := int64(periods) * periodLengthSeconds

	if minDistributionSpacingSeconds < 0 {
		return Keeper{}, errorsmod.Wrapf(
			types.ErrInvalidConfig,
			"minimum distribution spacing must not be negative, got %d",
			minDistributionSpacingSeconds,
		)
	}
	if minDistributionSpacingSeconds > maxDistributionTimeSpanSeconds {
		return Keeper{}, errorsmod.Wrapf(
			types.ErrInvalidConfig,
			"minimum distribution spacing %d exceeds maximum distribution time span %d",
			minDistributionSpacingSeconds, maxDistributionTimeSpanSeconds,
		)
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService:    storeService,
		cdc:             cdc,
		vaultKeeper:     vaultKeeper,
		promotionKeeper: promotionKeeper,
		bankKeeper:      bankKeeper,
		accountKeeper:   accountKeeper,
		authzKeeper:     authzKeeper,
		router:          router,

		epochTracker: vaultKeeper.EpochTracker(),
		moduleAddr:   accountKeeper.GetModuleAddress(types.ModuleName),

		minDistributionSpacingSeconds:  minDistributionSpacingSeconds,
		maxDistributionTimeSpanSeconds: maxDistributionTimeSpanSeconds,

		LastDistribution: collections.NewMap(
			sb,
			types.LastDistributionKey,
			"last_distribution",
			collections.StringKey,
			collections.Int64Value,
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k, nil
}

// Logger returns the module logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// MinDistributionSpacingSeconds returns the minimum elapsed time between the
// start of consecutive windows for a denom.
func (k Keeper) MinDistributionSpacingSeconds() int64 {
	return k.minDistributionSpacingSeconds
}

// MaxDistributionTimeSpanSeconds returns the maximum window length, equal to the
// vault's full reward cycle and to the epoch tracker's guaranteed retention.
func (k Keeper) MaxDistributionTimeSpanSeconds() int64 {
	return k.maxDistributionTimeSpanSeconds
}

// ModuleAddress returns the module account holding the accumulated balances.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return k.moduleAddr
}

// GetLastDistribution returns the end timestamp of the last successful
// distribution for the denom, 0 when the denom was never distributed.
func (k Keeper) GetLastDistribution(ctx context.Context, denom string) (int64, error) {
	endTime, err := k.LastDistribution.Get(ctx, denom)
	if err != nil {
		if errorsmod.IsOf(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return endTime, nil
}
