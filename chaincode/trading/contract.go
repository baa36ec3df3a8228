package main

import (
	"strings"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// TradingContract exposes the trading-network operations to the Fabric
// runtime. Each method hands the stub to the core as a plain key-value
// view; function-name routing and argument conversion belong to the
// contractapi router.
type TradingContract struct {
	contractapi.Contract
}

// InitLedger seeds the fixed participants and assets on a fresh ledger.
func (c *TradingContract) InitLedger(ctx contractapi.TransactionContextInterface) error {
	return initLedger(stubState{ctx.GetStub()})
}

// Query returns the record stored under key exactly as persisted.
func (c *TradingContract) Query(ctx contractapi.TransactionContextInterface, key string) (string, error) {
	b, err := getRecord(stubState{ctx.GetStub()}, strings.TrimSpace(key))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CreateParticipant registers a new participant with empty holdings.
func (c *TradingContract) CreateParticipant(ctx contractapi.TransactionContextInterface, id string, firstName string, lastName string) error {
	return createParticipant(stubState{ctx.GetStub()}, id, firstName, lastName)
}

// CreateAsset registers a new asset owned by an existing participant.
func (c *TradingContract) CreateAsset(ctx contractapi.TransactionContextInterface, id string, value int64, owner string) error {
	return createAsset(stubState{ctx.GetStub()}, id, value, owner)
}

// TransferAsset moves an asset from its current owner to another
// participant.
func (c *TradingContract) TransferAsset(ctx contractapi.TransactionContextInterface, transfererID string, transfereeID string, assetID string) error {
	return transferAsset(stubState{ctx.GetStub()},
		strings.TrimSpace(transfererID), strings.TrimSpace(transfereeID), strings.TrimSpace(assetID))
}
