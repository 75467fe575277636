package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"skribe/internal/bootstrap"
	"skribe/internal/shared/config"
)

// newCompleter builds the completion client for a command run.
var newCompleter = bootstrap.NewLLMClient

// NewRootCommand builds the command tree. Flags are bound onto v, so
// config.FromViper(v) inside a command sees flag overrides.
func NewRootCommand(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:   "skribe",
		Short: "Generate a cover letter and resume suggestions with an LLM",
		Long: `Skribe reads a job description and a resume (PDF, DOCX or plain text),
asks an LLM for a tailored cover letter and six resume suggestions, and writes
the cover letter as a DOCX document.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("provider", "", "LLM provider: openai or gemini (default from LLM_PROVIDER)")
	root.PersistentFlags().String("model", "", "Model name (default from LLM_MODEL)")
	mustBind(v, "llm_provider", root.PersistentFlags().Lookup("provider"))
	mustBind(v, "llm_model", root.PersistentFlags().Lookup("model"))

	root.AddCommand(
		newGenerateCommand(v),
		newExtractCommand(),
		newServeCommand(v),
		newVersionCommand(),
	)
	return root
}

// Execute runs the CLI with configuration from the environment.
func Execute(ctx context.Context) error {
	return NewRootCommand(config.NewViper()).ExecuteContext(ctx)
}

func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
