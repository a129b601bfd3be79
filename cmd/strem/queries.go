package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strem-org/strem/pkg/query"
)

var queriesFile string

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "List the named queries of a query file",
	Args:  cobra.NoArgs,
	RunE:  runQueries,
}

func init() {
	queriesCmd.Flags().StringVar(&queriesFile, "file", "", "Query YAML file to list")
	queriesCmd.MarkFlagRequired("file")
}

func runQueries(cmd *cobra.Command, args []string) error {
	queries, err := query.NewLoader().LoadFile(queriesFile)
	if err != nil {
		return err
	}

	for _, q := range queries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", q.ID, q.Pattern)
		if q.Description != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "\t%s\n", q.Description)
		}
	}
	return nil
}
