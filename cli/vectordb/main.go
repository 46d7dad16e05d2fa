package main

import (
	"os"

	vectordbcmder "github.com/stakeai/vectordb/cmd/vectordb"
)

func main() {
	cmd := vectordbcmder.NewVectorDBCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
