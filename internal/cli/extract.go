package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newExtractCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "Print the text extracted from a PDF, DOCX or plain text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readSource(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]string{
					"fileName": args[0],
					"format":   doc.Format.String(),
					"text":     doc.Text,
				})
			}
			_, err = fmt.Fprintln(out, doc.Text)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print file name, format and text as JSON")
	return cmd
}
