package main

// docType discriminators stored in each record so a kind-agnostic query
// result is self-describing.
const (
	docTypeParticipant = "participant"
	docTypeAsset       = "asset"
)

// Participant is a trading-network member able to hold assets. Assets holds
// the ids of the assets currently owned, in acquisition order. Cross
// references are always ids, never embedded copies; the world state is the
// single system of record.
type Participant struct {
	DocType   string   `json:"docType"`
	ID        string   `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Assets    []string `json:"assets"`
}

// Asset is a tradable record with exactly one current owner, referenced by
// participant id.
type Asset struct {
	DocType string `json:"docType"`
	ID      string `json:"id"`
	Value   int64  `json:"value"`
	Owner   string `json:"owner"`
}
