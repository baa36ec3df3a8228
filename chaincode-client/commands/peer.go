package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
)

// runPeerCommand executes the peer binary with the MSP environment the
// transaction needs.
func runPeerCommand(cfg Config, args ...string) (string, error) {
	env := []string{
		fmt.Sprintf("CORE_PEER_LOCALMSPID=%s", cfg.OrgMSP),
		fmt.Sprintf("CORE_PEER_MSPCONFIGPATH=%s", cfg.MSPConfigPath),
		fmt.Sprintf("CORE_PEER_ADDRESS=%s", cfg.PeerAddress),
	}
	if cfg.TLSRootCertFile != "" {
		env = append(env, fmt.Sprintf("CORE_PEER_TLS_ROOTCERT_FILE=%s", cfg.TLSRootCertFile))
	}
	if cfg.FabricCfgPath != "" {
		env = append(env, fmt.Sprintf("FABRIC_CFG_PATH=%s", cfg.FabricCfgPath))
	}
	env = append(env, os.Environ()...)

	cmd := exec.Command(cfg.PeerBinary, args...)
	cmd.Env = env

	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("peer command failed: %w\nOutput: %s", err, output)
	}
	return string(output), nil
}

// invokeChaincode submits a write transaction and waits for the commit
// event. When a second peer is configured the transaction is endorsed by
// both.
func invokeChaincode(cfg Config, function string, args ...string) (string, error) {
	invokeArgs := []string{
		"chaincode", "invoke",
		"-o", cfg.OrdererAddress,
		"-C", cfg.ChannelName,
		"-n", cfg.ChaincodeName,
		"-c", buildArgsJSON(function, args...),
	}
	if cfg.OrdererTLSRootCertFile != "" {
		invokeArgs = append(invokeArgs, "--tls", "--cafile", cfg.OrdererTLSRootCertFile)
	}
	invokeArgs = append(invokeArgs, "--peerAddresses", cfg.PeerAddress)
	if cfg.TLSRootCertFile != "" {
		invokeArgs = append(invokeArgs, "--tlsRootCertFiles", cfg.TLSRootCertFile)
	}
	if cfg.Peer2Address != "" {
		invokeArgs = append(invokeArgs, "--peerAddresses", cfg.Peer2Address)
		if cfg.Peer2TLSRootCertFile != "" {
			invokeArgs = append(invokeArgs, "--tlsRootCertFiles", cfg.Peer2TLSRootCertFile)
		}
	}
	invokeArgs = append(invokeArgs, "--waitForEvent")

	return runPeerCommand(cfg, invokeArgs...)
}

// queryChaincode evaluates a read-only transaction against the peer.
func queryChaincode(cfg Config, function string, args ...string) (string, error) {
	return runPeerCommand(cfg,
		"chaincode", "query",
		"-C", cfg.ChannelName,
		"-n", cfg.ChaincodeName,
		"-c", buildArgsJSON(function, args...),
	)
}

// buildArgsJSON builds the JSON args object for chaincode invocation.
func buildArgsJSON(function string, args ...string) string {
	allArgs := append([]string{function}, args...)
	argsBytes, _ := json.Marshal(map[string]interface{}{"Args": allArgs})
	return string(argsBytes)
}
