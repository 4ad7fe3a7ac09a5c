package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/tx-streamer/x/streamer/types"
)

func TestGenesisStateValidate(t *testing.T) {
	cases := []struct {
		name     string
		genState types.GenesisState
		wantErr  bool
	}{
		{
			name:     "default",
			genState: *types.DefaultGenesisState(),
		},
		{
			name: "valid entries",
			genState: types.GenesisState{
				LastDistributions: []types.LastDistribution{
					{Denom: "utkx", EndTime: 1_700_000_000},
					{Denom: "uusdc", EndTime: 1_700_086_400},
				},
			},
		},
		{
			name: "invalid denom",
			genState: types.GenesisState{
				LastDistributions: []types.LastDistribution{
					{Denom: "1bad", EndTime: 1_700_000_000},
				},
			},
			wantErr: true,
		},
		{
			name: "zero end time",
			genState: types.GenesisState{
				LastDistributions: []types.LastDistribution{
					{Denom: "utkx", EndTime: 0},
				},
			},
			wantErr: true,
		},
		{
			name: "negative end time",
			genState: types.GenesisState{
				LastDistributions: []types.LastDistribution{
					{Denom: "utkx", EndTime: -1},
				},
			},
			wantErr: true,
		},
		{
			name: "duplicate denom",
			genState: types.GenesisState{
				LastDistributions: []types.LastDistribution{
					{Denom: "utkx", EndTime: 1_700_000_000},
					{Denom: "utkx", EndTime: 1_700_086_400},
				},
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.wantErr {
				require.ErrorIs(t, err, types.ErrInvalidGenesis)
				return
			}
			require.NoError(t, err)
		})
	}
}
