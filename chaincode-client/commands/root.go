package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var profilePath string

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "trading-client",
	Short: "Client for the trading-network chaincode",
	Long: `trading-client drives the trading chaincode deployed on a Fabric
channel through the peer binary. Connection material comes from the
environment, optionally overridden by a YAML connection profile.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and reports any failure on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "",
		"path to a YAML connection profile whose fields override the environment")
	rootCmd.AddCommand(initLedgerCmd, queryCmd, createAssetCmd, createParticipantCmd, transferCmd)
}
