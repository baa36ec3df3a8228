package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seededLedger returns a ledger holding the fixed trading network.
func seededLedger(t *testing.T) *memLedger {
	t.Helper()
	ws := newMemLedger()
	require.NoError(t, initLedger(ws))
	ws.writes = nil
	return ws
}

// snapshot copies the raw bytes currently stored under the given keys.
func snapshot(ws *memLedger, keys ...string) map[string][]byte {
	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		out[k] = append([]byte(nil), ws.records[k]...)
	}
	return out
}

func TestTransferPreconditionOrder(t *testing.T) {
	t.Run("absent transferer reported first", func(t *testing.T) {
		ws := newMemLedger()
		err := transferAsset(ws, "ghost1", "ghost2", "phantom")
		require.ErrorIs(t, err, errUnknownParticipant)
		assert.Contains(t, err.Error(), "ghost1")
	})

	t.Run("absent transferee reported second", func(t *testing.T) {
		ws := seededLedger(t)
		err := transferAsset(ws, "owner1", "ghost2", "phantom")
		require.ErrorIs(t, err, errUnknownParticipant)
		assert.Contains(t, err.Error(), "ghost2")
	})

	t.Run("absent asset reported third", func(t *testing.T) {
		ws := seededLedger(t)
		err := transferAsset(ws, "owner1", "owner2", "phantom")
		assert.ErrorIs(t, err, errUnknownAsset)
	})

	t.Run("failed precondition writes nothing", func(t *testing.T) {
		ws := seededLedger(t)
		_ = transferAsset(ws, "owner1", "owner2", "phantom")
		assert.Empty(t, ws.writes)
	})
}

func TestTransferToSelf(t *testing.T) {
	ws := seededLedger(t)

	err := transferAsset(ws, "owner1", "owner1", "asset1")
	require.Error(t, err)
	assert.Empty(t, ws.writes)

	// The holding stays single and the owner reference is untouched.
	owner, err := getParticipant(ws, "owner1")
	require.NoError(t, err)
	assert.Equal(t, 1, count(owner.Assets, "asset1"))

	asset, err := getAsset(ws, "asset1")
	require.NoError(t, err)
	assert.Equal(t, "owner1", asset.Owner)
}

func TestTransferKindMismatch(t *testing.T) {
	t.Run("transferee key holds an asset", func(t *testing.T) {
		ws := seededLedger(t)
		before := snapshot(ws, "owner1", "asset1", "asset2")

		err := transferAsset(ws, "owner1", "asset2", "asset1")
		require.ErrorIs(t, err, errUnknownParticipant)

		assert.Empty(t, ws.writes)
		assert.Equal(t, before, snapshot(ws, "owner1", "asset1", "asset2"))
	})

	t.Run("asset key holds a participant", func(t *testing.T) {
		ws := seededLedger(t)

		err := transferAsset(ws, "owner1", "owner2", "owner3")
		require.ErrorIs(t, err, errUnknownAsset)
		assert.Empty(t, ws.writes)
	})
}

func TestTransferNotOwner(t *testing.T) {
	ws := seededLedger(t)
	before := snapshot(ws, "owner1", "owner2", "asset2")

	err := transferAsset(ws, "owner1", "owner2", "asset2")
	require.ErrorIs(t, err, errNotOwner)

	assert.Empty(t, ws.writes)
	assert.Equal(t, before, snapshot(ws, "owner1", "owner2", "asset2"))
}

func TestTransferSwapsOwnership(t *testing.T) {
	ws := seededLedger(t)

	require.NoError(t, transferAsset(ws, "owner1", "owner2", "asset1"))

	transferer, err := getParticipant(ws, "owner1")
	require.NoError(t, err)
	assert.NotContains(t, transferer.Assets, "asset1")

	transferee, err := getParticipant(ws, "owner2")
	require.NoError(t, err)
	assert.Equal(t, 1, count(transferee.Assets, "asset1"), "transferee holds the asset exactly once")

	asset, err := getAsset(ws, "asset1")
	require.NoError(t, err)
	assert.Equal(t, "owner2", asset.Owner)
}

func TestTransferWriteOrder(t *testing.T) {
	ws := seededLedger(t)

	require.NoError(t, transferAsset(ws, "owner1", "owner2", "asset1"))
	assert.Equal(t, []string{"owner1", "owner2", "asset1"}, ws.writes)
}

func TestTransferBackAndForth(t *testing.T) {
	ws := seededLedger(t)

	require.NoError(t, transferAsset(ws, "owner1", "owner2", "asset1"))
	require.NoError(t, transferAsset(ws, "owner2", "owner1", "asset1"))

	owner1, err := getParticipant(ws, "owner1")
	require.NoError(t, err)
	assert.Equal(t, 1, count(owner1.Assets, "asset1"))

	owner2, err := getParticipant(ws, "owner2")
	require.NoError(t, err)
	assert.NotContains(t, owner2.Assets, "asset1")

	asset, err := getAsset(ws, "asset1")
	require.NoError(t, err)
	assert.Equal(t, "owner1", asset.Owner)
}

func TestTransferInconsistentState(t *testing.T) {
	ws := seededLedger(t)

	// The asset names owner1 but owner1's holdings no longer list it.
	broken, err := getParticipant(ws, "owner1")
	require.NoError(t, err)
	broken.Assets = []string{}
	require.NoError(t, putRecord(ws, broken.ID, broken))
	ws.writes = nil

	err = transferAsset(ws, "owner1", "owner2", "asset1")
	require.ErrorIs(t, err, errInconsistentState)
	assert.Empty(t, ws.writes)
}

func TestTransferCreatedAssetOutsideHoldings(t *testing.T) {
	// createAsset records the owner reference only; until a seed or a
	// transfer places the asset into the owner's holdings, transferring it
	// surfaces the holdings mismatch as an integrity fault.
	ws := seededLedger(t)
	require.NoError(t, createAsset(ws, "gold1", 42, "owner1"))

	err := transferAsset(ws, "owner1", "owner2", "gold1")
	assert.ErrorIs(t, err, errInconsistentState)
}

func count(xs []string, want string) int {
	n := 0
	for _, x := range xs {
		if x == want {
			n++
		}
	}
	return n
}
