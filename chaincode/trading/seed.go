package main

// initLedger seeds a fresh ledger with the fixed trading network: three
// participants and three assets, each asset held by its matching
// participant. Holdings and owner references are written consistent with
// each other so transfers work immediately.
func initLedger(ws worldState) error {
	participants := []Participant{
		{DocType: docTypeParticipant, ID: "owner1", FirstName: "Jenny", LastName: "Jones", Assets: []string{"asset1"}},
		{DocType: docTypeParticipant, ID: "owner2", FirstName: "Amy", LastName: "Matthews", Assets: []string{"asset2"}},
		{DocType: docTypeParticipant, ID: "owner3", FirstName: "Fred", LastName: "Bloggs", Assets: []string{"asset3"}},
	}
	assets := []Asset{
		{DocType: docTypeAsset, ID: "asset1", Value: 100, Owner: "owner1"},
		{DocType: docTypeAsset, ID: "asset2", Value: 200, Owner: "owner2"},
		{DocType: docTypeAsset, ID: "asset3", Value: 300, Owner: "owner3"},
	}

	for _, p := range participants {
		if err := putRecord(ws, p.ID, p); err != nil {
			return err
		}
	}
	for _, a := range assets {
		if err := putRecord(ws, a.ID, a); err != nil {
			return err
		}
	}
	return nil
}
