package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/danielplaskur/wortschatz/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wortschatz",
		Short: "German screen-text translator and vocabulary builder",
		Long: `wortschatz turns a stream of OCR'd German screen text into live
sentence translations and a frequency-ranked vocabulary list.

It segments noisy frame-by-frame OCR output into sentences, translates
word by word through a local dictionary with remote and manual fallbacks,
and maintains a words.csv table that merges across runs.

Examples:
  wortschatz capture --frames ./frames   # OCR captured frames, translate live
  wortschatz capture --stdin             # observations piped in as text lines
  wortschatz record --stdin              # record a session without translating
  wortschatz frequency session-*.txt     # aggregate session logs into words.csv
  wortschatz translate                   # fill missing translations in words.csv
  wortschatz merge                       # merge words_*.csv tables into words.csv`,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(newCaptureCommand(flags))
	rootCmd.AddCommand(newRecordCommand(flags))
	rootCmd.AddCommand(newFrequencyCommand(flags))
	rootCmd.AddCommand(newTranslateCommand(flags))
	rootCmd.AddCommand(newMergeCommand(flags))

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wortschatz.yaml)")
	cmd.PersistentFlags().StringVar(&flags.Dictionary, "dictionary", flags.Dictionary, "SQLite dictionary store path")
	cmd.PersistentFlags().StringVar(&flags.WordsFile, "words", flags.WordsFile, "Vocabulary table CSV path")
	cmd.PersistentFlags().StringVar(&flags.Whitelist, "whitelist", flags.Whitelist, "Whitelist file path")
	cmd.PersistentFlags().StringVar(&flags.SessionDir, "session-dir", flags.SessionDir, "Directory for session logs")
	cmd.PersistentFlags().IntVar(&flags.MinLength, "min-length", flags.MinLength, "Minimum word length for frequency counting")

	bindFlagsToViper(cmd.PersistentFlags())
}

func bindFlagsToViper(fs *pflag.FlagSet) {
	viper.BindPFlag("dictionary.path", fs.Lookup("dictionary"))
	viper.BindPFlag("output.words", fs.Lookup("words"))
	viper.BindPFlag("output.whitelist", fs.Lookup("whitelist"))
	viper.BindPFlag("output.session_dir", fs.Lookup("session-dir"))
	viper.BindPFlag("token.min_length", fs.Lookup("min-length"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".wortschatz" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wortschatz")
	}

	// Environment variables
	viper.SetEnvPrefix("WORTSCHATZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig overlays configuration file and environment values onto the
// flags. The bound viper keys already resolve precedence as flag > env >
// config file > flag default, so the effective value is read back
// unconditionally.
func ApplyConfig(flags *Flags) {
	flags.Dictionary = viper.GetString("dictionary.path")
	flags.WordsFile = viper.GetString("output.words")
	flags.Whitelist = viper.GetString("output.whitelist")
	flags.SessionDir = viper.GetString("output.session_dir")
	flags.MinLength = viper.GetInt("token.min_length")
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.api_key")
}
