package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/exprify/scanner"
	"github.com/gnoswap-labs/exprify/transformers/match"
)

// exprify grep QUERY [paths...]
func (a *app) newGrepCmd() *cobra.Command {
	var (
		extensions []string
		countOnly  bool
	)

	grepCmd := &cobra.Command{
		Use:   "grep QUERY [paths...]",
		Short: "Print the lines of files or stdin that match a query",
		Long: `Evaluates the query against every line, treating the line as the document
text. Directories are searched recursively. With no paths, stdin is read.
The command exits with status 1 when no line matches.
Example) exprify grep 'error -"connection reset"' ./logs --ext .log`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, paths := args[0], args[1:]
			pred, err := match.Compile(query)
			if err != nil {
				return a.reportQueryError(cmd, query, err)
			}

			out := cmd.OutOrStdout()
			matches := 0
			emit := func(withPath bool) func(scanner.Line) error {
				return func(l scanner.Line) error {
					if !pred(match.Document{Text: l.Text}) {
						return nil
					}
					matches++
					if countOnly {
						return nil
					}
					if withPath {
						_, err := fmt.Fprintf(out, "%s:%d:%s\n", l.Path, l.Num, l.Text)
						return err
					}
					_, err := fmt.Fprintln(out, l.Text)
					return err
				}
			}

			if len(paths) == 0 {
				if err := scanner.Lines("stdin", cmd.InOrStdin(), emit(false)); err != nil {
					return err
				}
			} else if err := a.grepFiles(paths, extensions, emit(true)); err != nil {
				return err
			}

			a.logger.Debug("Search finished", zap.String("query", query), zap.Int("matches", matches))
			if countOnly {
				fmt.Fprintln(out, matches)
			}
			if matches == 0 {
				return errSilentExit
			}
			return nil
		},
	}

	grepCmd.Flags().StringSliceVar(&extensions, "ext", nil, "Comma-separated file extensions to search in directories")
	grepCmd.Flags().BoolVar(&countOnly, "count", false, "Print only the number of matching lines")
	return grepCmd
}

func (a *app) grepFiles(paths, extensions []string, fn func(scanner.Line) error) error {
	files, err := scanner.New(extensions...).Files(paths...)
	if err != nil {
		return err
	}
	for _, file := range files {
		if err := scanner.File(file, fn); err != nil {
			a.logger.Error("Error reading file", zap.String("file", file), zap.Error(err))
		}
	}
	return nil
}
