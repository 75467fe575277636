package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"skribe/coverletter/render"
	"skribe/coverletter/service"
	"skribe/internal/extract"
	"skribe/internal/shared/config"
)

type generateOptions struct {
	jobFile    string
	jobText    string
	resumeFile string
	outFile    string
	printText  bool
}

func newGenerateCommand(v *viper.Viper) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a cover letter DOCX and resume suggestions",
		Long: `Generate reads the job description (--job-text, or a file with --job) and the
resume (--resume), writes the cover letter to --out and prints the resume
suggestions. Pasted job text wins over a job file when both are given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, config.FromViper(v), opts)
		},
	}

	cmd.Flags().StringVar(&opts.jobFile, "job", "", "Job description file (.pdf, .docx, .txt)")
	cmd.Flags().StringVar(&opts.jobText, "job-text", "", "Job description text")
	cmd.Flags().StringVar(&opts.resumeFile, "resume", "", "Resume file (.pdf, .docx, .txt)")
	cmd.Flags().StringVarP(&opts.outFile, "out", "o", render.DocxFileName, "Output path for the cover letter")
	cmd.Flags().BoolVar(&opts.printText, "print", false, "Also print the cover letter text")
	return cmd
}

func runGenerate(cmd *cobra.Command, cfg config.Config, opts *generateOptions) error {
	jobText := opts.jobText
	if strings.TrimSpace(jobText) == "" && opts.jobFile != "" {
		doc, err := readSource(opts.jobFile)
		if err != nil {
			return err
		}
		jobText = doc.Text
	}

	var resumeText string
	if opts.resumeFile != "" {
		doc, err := readSource(opts.resumeFile)
		if err != nil {
			return err
		}
		resumeText = doc.Text
	}

	client, err := newCompleter(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	result, err := service.New(client).Generate(cmd.Context(), jobText, resumeText)
	if err != nil {
		if errors.Is(err, service.ErrMissingInput) {
			return errors.New("Please provide both job description and resume.")
		}
		return err
	}

	if err := os.WriteFile(opts.outFile, result.Document, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.outFile, err)
	}

	out := cmd.OutOrStdout()
	if opts.printText {
		fmt.Fprintf(out, "%s\n\n", result.CoverLetter)
	}
	fmt.Fprintf(out, "Cover letter written to %s\n\n", opts.outFile)
	fmt.Fprintf(out, "Suggestions to personalise your resume:\n%s\n", result.Suggestions)
	return nil
}

func readSource(path string) (extract.SourceDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return extract.SourceDocument{}, fmt.Errorf("read %s: %w", path, err)
	}
	return extract.Read(path, data), nil
}
