package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"article-tui/internal/article"
)

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the values accepted for article parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			groups := []struct {
				key     string
				options article.Catalogue
			}{
				{"font_family", article.FontFamilies},
				{"font_size", article.FontSizes},
				{"font_color", article.FontColors},
				{"background_color", article.BackgroundColors},
				{"content_width", article.ContentWidths},
			}
			fmt.Fprintln(writer, "PARAMETER\tTITLE\tVALUE\tDEFAULT")
			for _, group := range groups {
				def := group.options.Default()
				for _, opt := range group.options {
					mark := ""
					if opt == def {
						mark = "*"
					}
					fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", group.key, opt.Title, opt.Value, mark)
				}
			}
			return writer.Flush()
		},
	}
}
