package main

import (
	"fmt"
	"os"

	"github.com/bluesky/event-model-go/documents"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schemagen [out-dir]",
		Short: "Generate JSON schema files for every event-model document type",
		Long: `schemagen regenerates the JSON schema file for every event-model
document type. Schemas are written one file per document, named after
the document's snake_case title. With no argument, schemas land in
` + documents.DefaultSchemaDir + `.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := documents.DefaultSchemaDir
			if len(args) == 1 {
				dir = args[0]
			}
			paths, err := documents.WriteSchemas(dir)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", p)
			}
			return nil
		},
	}
	return cmd
}
