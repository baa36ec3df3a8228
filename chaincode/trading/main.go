package main

import (
	"log"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

func main() {
	chaincode, err := contractapi.NewChaincode(&TradingContract{})
	if err != nil {
		log.Panicf("Error creating trading chaincode: %v", err)
	}

	chaincode.Info.Title = "trading"
	chaincode.Info.Version = "1.0"

	if err := chaincode.Start(); err != nil {
		log.Panicf("Error starting trading chaincode: %v", err)
	}
}
