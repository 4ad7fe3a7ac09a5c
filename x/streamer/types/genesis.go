package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
	"github.com/samber/lo"
)

// LastDistribution is a single watermark entry: the end timestamp of the last
// successful distribution of a denom.
type LastDistribution struct {
	Denom   string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	EndTime int64  `protobuf:"varint,2,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
}

// Reset implements the proto.Message interface.
func (m *LastDistribution) Reset() { *m = LastDistribution{} }

// String implements the proto.Message interface.
func (m *LastDistribution) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements the proto.Message interface.
func (*LastDistribution) ProtoMessage() {}

// GenesisState holds the module's genesis state. The watermark map is the only
// persistent state the module maintains.
type GenesisState struct {
	LastDistributions []LastDistribution `protobuf:"bytes,1,rep,name=last_distributions,json=lastDistributions,proto3" json:"last_distributions"`
}

// Reset implements the proto.Message interface.
func (m *GenesisState) Reset() { *m = GenesisState{} }

// String implements the proto.Message interface.
func (m *GenesisState) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements the proto.Message interface.
func (*GenesisState) ProtoMessage() {}

// DefaultGenesisState returns genesis state with default values.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		LastDistributions: []LastDistribution{},
	}
}

// Validate validates genesis parameters.
func (m *GenesisState) Validate() error {
	for i, entry := range m.LastDistributions {
		if err := sdk.ValidateDenom(entry.Denom); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "entry %d: invalid denom %s", i, entry.Denom)
		}
		if entry.EndTime <= 0 {
			return errorsmod.Wrapf(ErrInvalidGenesis, "entry %d: end time must be positive, got %d", i, entry.EndTime)
		}
	}

	duplicates := lo.FindDuplicatesBy(m.LastDistributions, func(entry LastDistribution) string {
		return entry.Denom
	})
	if len(duplicates) > 0 {
		return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate denom %s", duplicates[0].Denom)
	}

	return nil
}
