package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initLedgerCmd = &cobra.Command{
	Use:   "init-ledger",
	Short: "Seed the ledger with the fixed participants and assets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvoke(opInitLedger)
	},
}

var queryCmd = &cobra.Command{
	Use:   "query <key>",
	Short: "Print the record stored under a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(args[0])
	},
}

var createParticipantCmd = &cobra.Command{
	Use:   "create-participant <id> <firstName> <lastName>",
	Short: "Register a new participant",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvoke(opCreateParticipant, args[0], args[1], args[2])
	},
}

var createAssetCmd = &cobra.Command{
	Use:   "create-asset <id> <value> <owner>",
	Short: "Register a new asset owned by an existing participant",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := strconv.ParseInt(args[1], 10, 64); err != nil {
			return fmt.Errorf("invalid value %q: must be an integer", args[1])
		}
		return runInvoke(opCreateAsset, args[0], args[1], args[2])
	},
}

var transferCmd = &cobra.Command{
	Use:   "transfer <transferer> <transferee> <asset>",
	Short: "Transfer an asset between participants",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvoke(opTransferAsset, args[0], args[1], args[2])
	},
}

// runInvoke validates the operation against the invocation surface, then
// submits it as a write transaction.
func runInvoke(name string, args ...string) error {
	if err := checkOperation(name, args); err != nil {
		return err
	}
	cfg, err := loadConfig(profilePath)
	if err != nil {
		return err
	}

	output, err := invokeChaincode(cfg, name, args...)
	if err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}

	color.Green("%s committed", name)
	if out := strings.TrimSpace(output); out != "" {
		fmt.Println(out)
	}
	return nil
}

// runQuery evaluates the read operation and prints the stored record
// exactly as persisted.
func runQuery(key string) error {
	if err := checkOperation(opQuery, []string{key}); err != nil {
		return err
	}
	cfg, err := loadConfig(profilePath)
	if err != nil {
		return err
	}

	output, err := queryChaincode(cfg, opQuery, key)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	fmt.Println(strings.TrimSpace(output))
	return nil
}
