package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lookupsCmd = &cobra.Command{
	Use:   "lookups <kind>",
	Short: "List a lookup table's options",
	Long: `List a lookup table's options (id and name, sorted by name).

Kinds: actress_type, costume, scene, tag, actress, publisher.

Examples:
  avdex lookups tag
  avdex lookups costume --refresh`,
	Args: cobra.ExactArgs(1),
	RunE: runLookupsCmd,
}

func init() {
	rootCmd.AddCommand(lookupsCmd)
	lookupsCmd.Flags().Bool("refresh", false, "Bypass the server cache and reload")
}

func runLookupsCmd(cmd *cobra.Command, args []string) error {
	kind := args[0]
	refresh, _ := cmd.Flags().GetBool("refresh")

	client := NewClient(serverURL, authToken)

	var opts []LookupOptionResponse
	var err error
	if refresh {
		opts, err = client.RefreshLookups(kind)
	} else {
		opts, err = client.Lookups(kind)
	}
	if err != nil {
		return fmt.Errorf("lookups failed: %w", err)
	}

	if jsonOutput {
		printJSON(opts)
		return nil
	}

	if len(opts) == 0 {
		fmt.Println("No options")
		return nil
	}
	for _, o := range opts {
		fmt.Printf("  %6d  %s\n", o.ID, o.Name)
	}
	return nil
}
