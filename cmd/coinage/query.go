package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sociolex/coinage/internal/query"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Print the search query without running it",
	Long: `Query prints the exact recent-search query the search command sends,
built from the default stem list. Needs no credentials and no network.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(query.Default())
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
