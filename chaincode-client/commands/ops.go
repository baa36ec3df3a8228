package commands

import (
	"errors"
	"fmt"
)

// The chaincode's invocation surface. Names match the contract methods the
// router dispatches on.
const (
	opInitLedger        = "InitLedger"
	opQuery             = "Query"
	opCreateAsset       = "CreateAsset"
	opCreateParticipant = "CreateParticipant"
	opTransferAsset     = "TransferAsset"
)

var (
	errUnknownOperation = errors.New("unknown operation")
	errArgumentCount    = errors.New("argument count mismatch")
)

// opArity maps each operation to the exact number of arguments it takes.
var opArity = map[string]int{
	opInitLedger:        0,
	opQuery:             1,
	opCreateAsset:       3,
	opCreateParticipant: 3,
	opTransferAsset:     3,
}

// checkOperation validates an operation name and its argument list against
// the invocation surface before anything is submitted to the network.
func checkOperation(name string, args []string) error {
	want, ok := opArity[name]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownOperation, name)
	}
	if len(args) != want {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d",
			errArgumentCount, name, want, len(args))
	}
	return nil
}
