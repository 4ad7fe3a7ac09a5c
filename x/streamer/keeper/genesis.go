package keeper

import (
	"context"

	"github.com/tokenize-x/tx-streamer/x/streamer/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	for _, entry := range genState.LastDistributions {
		if err := k.LastDistribution.Set(ctx, entry.Denom, entry.EndTime); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis returns the module's exported genesis.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesisState()

	err := k.LastDistribution.Walk(ctx, nil, func(denom string, endTime int64) (bool, error) {
		genesis.LastDistributions = append(genesis.LastDistributions, types.LastDistribution{
			Denom:   denom,
			EndTime: endTime,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return genesis, nil
}
