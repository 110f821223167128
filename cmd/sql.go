package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/exprify/transformers/mailsql"
)

func (a *app) newSQLCmd() *cobra.Command {
	var jsonOutput bool

	sqlCmd := &cobra.Command{
		Use:   "sql [query...]",
		Short: "Convert a query into a SQL WHERE condition for a mail table",
		Long: `Converts the query into a WHERE condition with '?' placeholders.
Keywords and phrases search the subject and body columns, since: and until:
filter the date column. Column names are read from the configuration file.
Example) exprify sql 'ruby -deprecated since:yesterday'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := queryFromArgs(args)
			cond, err := mailsql.Where(query, mailsql.WithColumns(a.config.MailSQL))
			if err != nil {
				return a.reportQueryError(cmd, query, err)
			}
			a.logger.Debug("Built condition", zap.String("query", query), zap.Int("params", len(cond.Args)))

			if jsonOutput {
				d, err := json.Marshal(cond)
				if err != nil {
					a.logger.Error("Error marshalling condition to JSON", zap.Error(err))
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(d))
				return nil
			}

			params, err := json.Marshal(cond.Args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "WHERE %s\nparams: %s\n", cond.SQL, params)
			return nil
		},
	}

	sqlCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the condition in JSON format")
	return sqlCmd
}
