package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/kidcards/internal"
	"codeberg.org/snonux/kidcards/internal/store"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kidcards",
		Short: "First-words flashcard viewer for toddlers",
		Long: `kidcards cycles through categorized flashcards (alphabet, numbers,
colors, animals and more), speaks each card, and remembers which cards
have been seen and starred.

Examples:
  kidcards                        # Launch the card viewer
  kidcards --voice --autoplay     # Start with narration and autoplay on
  kidcards --category fruits      # Start in the fruits category
  kidcards --stats                # Print viewing progress and exit
  kidcards --say alphabet:a       # Speak one card and exit`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.kidcards.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.CatalogFile, "catalog", "", "JSON catalog file (default is the built-in card set)")
	cmd.Flags().StringVar(&flags.StatePath, "state", store.DefaultStatePath(), "State database path")
	cmd.Flags().StringVar(&flags.AssetBase, "asset-base", flags.AssetBase, "Base URL for recorded card audio (empty disables recorded audio)")
	cmd.Flags().StringVarP(&flags.Category, "category", "c", "", "Start in this category instead of the last one")
	cmd.Flags().BoolVar(&flags.Voice, "voice", false, "Start with card narration on")
	cmd.Flags().BoolVar(&flags.Autoplay, "autoplay", false, "Start with autoplay on")
	cmd.Flags().IntVar(&flags.DelayMs, "delay", flags.DelayMs, "Autoplay interval in milliseconds (2000, 3000, 5000 or 8000)")
	cmd.Flags().BoolVar(&flags.Stats, "stats", false, "Print per-category viewing progress and exit")
	cmd.Flags().BoolVar(&flags.ResetProgress, "reset-progress", false, "Clear viewed cards, favorites and the last position, then exit")
	cmd.Flags().StringVar(&flags.Say, "say", "", "Speak one card (category:card) and exit")

	// Speech flags
	cmd.Flags().StringVar(&flags.SpeechProvider, "speech-provider", flags.SpeechProvider, "Speech synthesizer: espeak or openai")
	cmd.Flags().Float64Var(&flags.SpeechRate, "speech-rate", flags.SpeechRate, "Speech rate (1.0 is a normal reading pace)")
	cmd.Flags().Float64Var(&flags.SpeechPitch, "speech-pitch", flags.SpeechPitch, "Speech pitch (1.0 is neutral)")
	cmd.Flags().StringVar(&flags.SpeechLang, "speech-lang", flags.SpeechLang, "Speech language tag")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", flags.OpenAIVoice, "OpenAI voice: alloy, ash, coral, echo, fable, onyx, nova, sage, shimmer")

	bindFlagsToViper(cmd.Flags())
}

func bindFlagsToViper(flags *pflag.FlagSet) {
	viper.BindPFlag("catalog.file", flags.Lookup("catalog"))
	viper.BindPFlag("catalog.asset_base", flags.Lookup("asset-base"))
	viper.BindPFlag("state.path", flags.Lookup("state"))
	viper.BindPFlag("speech.provider", flags.Lookup("speech-provider"))
	viper.BindPFlag("speech.rate", flags.Lookup("speech-rate"))
	viper.BindPFlag("speech.pitch", flags.Lookup("speech-pitch"))
	viper.BindPFlag("speech.lang", flags.Lookup("speech-lang"))
	viper.BindPFlag("speech.openai_model", flags.Lookup("openai-model"))
	viper.BindPFlag("speech.openai_voice", flags.Lookup("openai-voice"))
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

		// Search config in home directory with name ".kidcards" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".kidcards")
	}

	// Environment variables
	viper.SetEnvPrefix("KIDCARDS")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("speech.openai_key")
}
