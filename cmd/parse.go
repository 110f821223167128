package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/exprify/ast"
	"github.com/gnoswap-labs/exprify/parser"
)

func (a *app) newParseCmd() *cobra.Command {
	var pretty bool

	parseCmd := &cobra.Command{
		Use:   "parse [query...]",
		Short: "Parse a query and print its syntax tree",
		Long: `Parses the query and prints the resulting tree in its one-line form,
or as an indented tree with --pretty.
Example) exprify parse 'ruby OR gem -deprecated'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := queryFromArgs(args)
			root, err := parser.Parse(query)
			if err != nil {
				return a.reportQueryError(cmd, query, err)
			}
			a.logger.Debug("Parsed query", zap.String("query", query))

			if pretty || a.config.Output.Pretty {
				fmt.Fprintln(cmd.OutOrStdout(), ast.Pretty(root))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), root.String())
			}
			return nil
		},
	}

	parseCmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Print the tree indented, one node per line")
	return parseCmd
}
