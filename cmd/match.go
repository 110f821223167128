package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/exprify/transformers/match"
)

func (a *app) newMatchCmd() *cobra.Command {
	var (
		text   string
		fields []string
	)

	matchCmd := &cobra.Command{
		Use:   "match [query...]",
		Short: "Evaluate a query against a document given on the command line",
		Long: `Prints true when the document matches the query and false otherwise.
The command exits with status 1 when the document does not match.
Example) exprify match --text 'ruby 3.3 released' --field lang=ruby 'lang:ruby released'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := buildDocument(text, fields)
			if err != nil {
				return err
			}

			query := queryFromArgs(args)
			pred, err := match.Compile(query)
			if err != nil {
				return a.reportQueryError(cmd, query, err)
			}

			matched := pred(doc)
			a.logger.Debug("Evaluated query", zap.String("query", query), zap.Bool("matched", matched))
			fmt.Fprintln(cmd.OutOrStdout(), matched)
			if !matched {
				return errSilentExit
			}
			return nil
		},
	}

	matchCmd.Flags().StringVar(&text, "text", "", "Free text of the document")
	matchCmd.Flags().StringArrayVarP(&fields, "field", "f", nil, "Document field as name=value, repeatable")
	return matchCmd
}

func buildDocument(text string, fields []string) (match.Document, error) {
	doc := match.Document{Text: text, Fields: make(map[string]string, len(fields))}
	for _, f := range fields {
		name, value, ok := strings.Cut(f, "=")
		if !ok || name == "" {
			return match.Document{}, fmt.Errorf("invalid field %q, expected name=value", f)
		}
		doc.Fields[name] = value
	}
	return doc, nil
}
