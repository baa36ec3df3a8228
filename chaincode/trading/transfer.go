package main

import (
	"errors"
	"fmt"
	"slices"
)

// transferAsset re-assigns ownership of assetID from transfererID to
// transfereeID. Preconditions are checked in a fixed order and nothing is
// written unless every one of them passes; a ledger left untouched on
// failure is the contract here, true multi-key atomicity of the three
// writes belongs to the Fabric commit.
func transferAsset(ws worldState, transfererID, transfereeID, assetID string) error {
	// A self-transfer would load two divergent copies of the same
	// participant record and duplicate the holding on write-back.
	if transfererID == transfereeID {
		return errors.New("transferer and transferee must differ")
	}

	checks := []struct {
		key     string
		missing error
	}{
		{transfererID, errUnknownParticipant},
		{transfereeID, errUnknownParticipant},
		{assetID, errUnknownAsset},
	}
	for _, c := range checks {
		exists, err := keyExists(ws, c.key)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %s", c.missing, c.key)
		}
	}

	asset, err := getAsset(ws, assetID)
	if err != nil {
		return err
	}
	if asset.Owner != transfererID {
		return fmt.Errorf("%w: %s is owned by %s, not %s",
			errNotOwner, assetID, asset.Owner, transfererID)
	}

	transferer, err := getParticipant(ws, transfererID)
	if err != nil {
		return err
	}
	transferee, err := getParticipant(ws, transfereeID)
	if err != nil {
		return err
	}

	at := slices.Index(transferer.Assets, assetID)
	if at < 0 {
		return fmt.Errorf("%w: %s names owner %s but is absent from its holdings",
			errInconsistentState, assetID, transfererID)
	}

	transferer.Assets = slices.Delete(transferer.Assets, at, at+1)
	transferee.Assets = append(transferee.Assets, assetID)
	asset.Owner = transfereeID

	// Write order is fixed: transferer, then transferee, then asset.
	if err := putRecord(ws, transfererID, transferer); err != nil {
		return err
	}
	if err := putRecord(ws, transfereeID, transferee); err != nil {
		return err
	}
	return putRecord(ws, assetID, asset)
}
