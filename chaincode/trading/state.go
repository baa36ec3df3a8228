package main

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// worldState is the narrow view of the ledger the trading operations run
// against: get and put by key, nothing else. The Fabric stub satisfies it
// in production; tests substitute an in-memory map.
type worldState interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// stubState adapts a chaincode stub to worldState.
type stubState struct {
	stub shim.ChaincodeStubInterface
}

func (s stubState) Get(key string) ([]byte, error) {
	return s.stub.GetState(key)
}

func (s stubState) Put(key string, value []byte) error {
	return s.stub.PutState(key, value)
}

// keyExists reports whether key already holds a record. An absent or empty
// value counts as free. Never mutates state; store read failures propagate
// to the caller as-is.
func keyExists(ws worldState, key string) (bool, error) {
	b, err := ws.Get(key)
	if err != nil {
		return false, fmt.Errorf("get state: %w", err)
	}
	return len(b) > 0, nil
}
