// Package vectordbcmder
package vectordbcmder

import (
	"github.com/spf13/cobra"

	servecmder "github.com/stakeai/vectordb/cmd/vectordb/serve"
)

const vectordbLongDesc string = `vectordb is an in-memory vector database with a three-level hierarchy:
libraries contain documents, documents contain chunks (vector + metadata).

Run the HTTP API using:
  vectordb serve       Run the API server`

const vectordbShortDesc string = "vectordb - in-memory vector database"

func NewVectorDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vectordb",
		Short: vectordbShortDesc,
		Long:  vectordbLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())

	return cmd
}
