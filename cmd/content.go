// Package cmd implements the command-line interface for folio.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/p09s/folio/content"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(contentCmd)
}

// contentCmd serves as the parent command for inspecting the compiled-in portfolio payload.
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect the compiled-in portfolio content",
}

func init() {
	contentCmd.AddCommand(contentExportCmd)
	contentExportCmd.Flags().Bool("schema", false, "Emit the JSON schema of the payload instead of the payload itself")
	contentExportCmd.SetOut(os.Stdout)
}

// contentExportCmd serializes the portfolio payload, or its schema, as JSON.
var contentExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the portfolio content as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")

		if lo.Must(cmd.Flags().GetBool("schema")) {
			handleErr(encoder.Encode(jsonschema.Reflect(&content.Payload{})))
			return
		}

		handleErr(encoder.Encode(content.Default()))
	},
}
