package commands

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config locates the peer binary and the network material used to submit
// transactions. Values come from the environment with the defaults below;
// fields set in a connection profile override them.
type Config struct {
	PeerBinary             string `env:"TRADING_PEER_BINARY" envDefault:"peer" yaml:"peerBinary"`
	ChannelName            string `env:"TRADING_CHANNEL" envDefault:"mychannel" yaml:"channelName"`
	ChaincodeName          string `env:"TRADING_CHAINCODE" envDefault:"trading" yaml:"chaincodeName"`
	PeerAddress            string `env:"TRADING_PEER_ADDRESS" envDefault:"peer0.org1.example.com:7051" yaml:"peerAddress"`
	OrdererAddress         string `env:"TRADING_ORDERER_ADDRESS" envDefault:"orderer.example.com:7050" yaml:"ordererAddress"`
	OrgMSP                 string `env:"TRADING_ORG_MSP" envDefault:"Org1MSP" yaml:"orgMSP"`
	MSPConfigPath          string `env:"TRADING_MSP_CONFIG_PATH" yaml:"mspConfigPath"`
	TLSRootCertFile        string `env:"TRADING_TLS_ROOT_CERT" yaml:"tlsRootCertFile"`
	OrdererTLSRootCertFile string `env:"TRADING_ORDERER_TLS_ROOT_CERT" yaml:"ordererTLSRootCertFile"`
	FabricCfgPath          string `env:"TRADING_FABRIC_CFG_PATH" yaml:"fabricCfgPath"`

	// Second peer for multi-peer endorsement, optional.
	Peer2Address         string `env:"TRADING_PEER2_ADDRESS" yaml:"peer2Address"`
	Peer2TLSRootCertFile string `env:"TRADING_PEER2_TLS_ROOT_CERT" yaml:"peer2TLSRootCertFile"`
}

// loadConfig reads the environment and, when profilePath is non-empty,
// overlays the fields present in the profile file.
func loadConfig(profilePath string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if profilePath == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(profilePath)
	if err != nil {
		return Config{}, fmt.Errorf("read connection profile: %w", err)
	}
	var overlay Config
	if err := yaml.Unmarshal(b, &overlay); err != nil {
		return Config{}, fmt.Errorf("parse connection profile: %w", err)
	}
	cfg.apply(overlay)
	return cfg, nil
}

// apply copies every non-empty field of overlay onto c.
func (c *Config) apply(overlay Config) {
	fields := []struct {
		dst *string
		src string
	}{
		{&c.PeerBinary, overlay.PeerBinary},
		{&c.ChannelName, overlay.ChannelName},
		{&c.ChaincodeName, overlay.ChaincodeName},
		{&c.PeerAddress, overlay.PeerAddress},
		{&c.OrdererAddress, overlay.OrdererAddress},
		{&c.OrgMSP, overlay.OrgMSP},
		{&c.MSPConfigPath, overlay.MSPConfigPath},
		{&c.TLSRootCertFile, overlay.TLSRootCertFile},
		{&c.OrdererTLSRootCertFile, overlay.OrdererTLSRootCertFile},
		{&c.FabricCfgPath, overlay.FabricCfgPath},
		{&c.Peer2Address, overlay.Peer2Address},
		{&c.Peer2TLSRootCertFile, overlay.Peer2TLSRootCertFile},
	}
	for _, f := range fields {
		if f.src != "" {
			*f.dst = f.src
		}
	}
}
