package types

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/authz"
)

// EpochTracker provides fixed-length accounting period boundaries. Distribution
// windows are truncated to these boundaries so that the vault's deposit-weighted
// balance lookups over the window are always answerable from finalized data.
type EpochTracker interface {
	// PeriodLengthSeconds returns the fixed period duration.
	PeriodLengthSeconds() int64

	// PeriodEndOnOrAfter returns the period boundary ending at or after the given
	// unix timestamp.
	PeriodEndOnOrAfter(ctx context.Context, timestamp int64) (int64, error)
}

// VaultKeeper is the expected interface of the vault whose depositors receive
// the distributed reward streams.
type VaultKeeper interface {
	// Address returns the vault account, the target of created promotions.
	Address() sdk.AccAddress

	// Owner returns the current vault owner. Callers must not cache the result:
	// ownership can be transferred at any time.
	Owner(ctx context.Context) (sdk.AccAddress, error)

	// EpochTracker returns the tracker backing the vault's deposit-weighted
	// time accounting.
	EpochTracker() EpochTracker

	// RewardCycleInfo returns the number of periods in a full reward cycle and
	// the period length. Both are immutable for the lifetime of the vault.
	RewardCycleInfo() (periods uint64, periodLengthSeconds int64)
}

// PromotionKeeper is the expected interface of the reward-stream service that
// turns a distribution window and a token amount into a linear promotion.
type PromotionKeeper interface {
	// Address returns the promotion service account, the grantee of the spend
	// authorization covering the distributed amount.
	Address() sdk.AccAddress

	// EpochTracker returns the tracker the promotion service aligns epochs to.
	EpochTracker() EpochTracker

	// CreatePromotion creates a promotion streaming totalAmount of denom linearly
	// to the vault's depositors over epochCount epochs of epochSeconds each,
	// starting at startTime. Fails on a zero amount or misaligned periods.
	CreatePromotion(
		ctx context.Context,
		vault sdk.AccAddress,
		denom string,
		startTime int64,
		totalAmount sdkmath.Int,
		epochSeconds int64,
		epochCount uint32,
	) (promotionID uint64, err error)
}

// BankKeeper interface.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// AccountKeeper interface.
type AccountKeeper interface {
	GetModuleAddress(moduleName string) sdk.AccAddress
}

// AuthzKeeper persists spend authorizations. SaveGrant overwrites any previous
// grant for the same (grantee, granter, msg type) triple.
type AuthzKeeper interface {
	SaveGrant(
		ctx context.Context,
		grantee, granter sdk.AccAddress,
		authorization authz.Authorization,
		expiration *time.Time,
	) error
}

// MessageRouter returns handlers for messages relayed through owner calls.
type MessageRouter interface {
	Handler(msg sdk.Msg) baseapp.MsgServiceHandler
}
