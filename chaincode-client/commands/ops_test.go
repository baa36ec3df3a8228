package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckOperation(t *testing.T) {
	t.Run("accepts every known operation at its arity", func(t *testing.T) {
		cases := map[string][]string{
			opInitLedger:        nil,
			opQuery:             {"owner1"},
			opCreateAsset:       {"asset9", "250", "owner1"},
			opCreateParticipant: {"owner9", "Billy", "Thompson"},
			opTransferAsset:     {"owner1", "owner2", "asset1"},
		}
		for name, args := range cases {
			assert.NoError(t, checkOperation(name, args), name)
		}
	})

	t.Run("rejects unknown operation names", func(t *testing.T) {
		err := checkOperation("DeleteAsset", []string{"asset1"})
		assert.ErrorIs(t, err, errUnknownOperation)
	})

	t.Run("rejects wrong argument counts", func(t *testing.T) {
		cases := map[string][]string{
			opInitLedger:    {"extra"},
			opQuery:         nil,
			opCreateAsset:   {"asset9", "250"},
			opTransferAsset: {"owner1", "owner2", "asset1", "asset2"},
		}
		for name, args := range cases {
			assert.ErrorIs(t, checkOperation(name, args), errArgumentCount, name)
		}
	})
}
