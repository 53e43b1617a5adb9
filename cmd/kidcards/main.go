package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/kidcards/internal/catalog"
	"codeberg.org/snonux/kidcards/internal/cli"
	"codeberg.org/snonux/kidcards/internal/engine"
	"codeberg.org/snonux/kidcards/internal/gui"
	"codeberg.org/snonux/kidcards/internal/speech"
	"codeberg.org/snonux/kidcards/internal/store"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(flags *cli.Flags) error {
	cat, err := loadCatalog(flags)
	if err != nil {
		return err
	}

	// Handle --reset-progress flag
	if flags.ResetProgress {
		return resetProgress(flags)
	}

	// Handle --stats flag
	if flags.Stats {
		return printStats(cat, flags)
	}

	// Handle --say flag
	if flags.Say != "" {
		return sayCard(cat, flags)
	}

	return runViewer(cat, flags)
}

// loadCatalog loads the card catalog: an explicit JSON file when given,
// the built-in card set otherwise.
func loadCatalog(flags *cli.Flags) (*catalog.Catalog, error) {
	path := flags.CatalogFile
	if path == "" {
		path = viper.GetString("catalog.file")
	}
	if path == "" {
		return catalog.Builtin(), nil
	}
	return catalog.LoadFile(path)
}

// buildSpeech wires the full speech stack: prober, player and synthesizer
// behind the decision controller. A non-espeak primary gets espeak as
// fallback so the cards never go silent over a missing API key or network.
func buildSpeech(flags *cli.Flags) (*speech.Controller, error) {
	player := speech.NewExecPlayer()

	config := &speech.Config{
		Provider:    flags.SpeechProvider,
		Rate:        flags.SpeechRate,
		Pitch:       flags.SpeechPitch,
		Lang:        flags.SpeechLang,
		AssetBase:   flags.AssetBase,
		OpenAIKey:   cli.GetOpenAIKey(),
		OpenAIModel: flags.OpenAIModel,
		OpenAIVoice: flags.OpenAIVoice,
	}

	synth, err := speech.NewSynthesizer(config, player)
	if err != nil {
		return nil, err
	}
	if config.Provider != "espeak" {
		synth = speech.NewSynthesizerWithFallback(synth, speech.NewESpeakSynthesizer(config))
	}

	return speech.NewController(speech.NewHTTPProber(), player, synth, flags.AssetBase), nil
}

// runViewer launches the card viewer window.
func runViewer(cat *catalog.Catalog, flags *cli.Flags) error {
	st, err := store.OpenSQLite(flags.StatePath)
	if err != nil {
		return fmt.Errorf("failed to open state database: %w", err)
	}
	defer st.Close()

	controller, err := buildSpeech(flags)
	if err != nil {
		return err
	}

	eng := engine.New(cat, st, controller)

	// Apply startup overrides. SetDelay ignores values outside the allowed
	// intervals, so a bad --delay just keeps the persisted/default one.
	if flags.Category != "" {
		eng.SelectCategory(flags.Category)
	}
	eng.SetDelay(flags.DelayMs)
	if flags.Voice {
		eng.SetVoice(true)
	}
	if flags.Autoplay {
		eng.SetAutoplay(true)
	}

	app := gui.New(cat, eng, controller)
	app.Run()

	// The window's close handler has already flushed the engine.
	return nil
}

// printStats prints per-category viewing progress without touching it.
func printStats(cat *catalog.Catalog, flags *cli.Flags) error {
	st, err := store.OpenSQLite(flags.StatePath)
	if err != nil {
		return fmt.Errorf("failed to open state database: %w", err)
	}
	defer st.Close()

	// Malformed persisted state degrades to empty, same as the viewer's
	// hydration, but noted on stderr.
	viewed := make(map[string][]string)
	if raw, ok, err := st.Get(store.KeyCategoryViewedIDs); err == nil && ok {
		if err := json.Unmarshal([]byte(raw), &viewed); err != nil {
			fmt.Fprintf(os.Stderr, "kidcards: ignoring malformed viewed state: %v\n", err)
		}
	}
	var favorites []string
	if raw, ok, err := st.Get(store.KeyFavorites); err == nil && ok {
		if err := json.Unmarshal([]byte(raw), &favorites); err != nil {
			fmt.Fprintf(os.Stderr, "kidcards: ignoring malformed favorites: %v\n", err)
		}
	}

	totalSeen := 0
	totalStars := 0

	for _, category := range cat.Categories() {
		count := cat.CardCount(category.ID)
		if count == 0 {
			continue
		}

		seen := 0
		for _, id := range viewed[category.ID] {
			if _, ok := cat.Card(category.ID, id); ok {
				seen++
			}
		}

		stars := 0
		for _, key := range favorites {
			categoryID, cardID, ok := catalog.SplitFavoriteKey(key)
			if !ok || categoryID != category.ID {
				continue
			}
			if _, ok := cat.Card(categoryID, cardID); ok {
				stars++
			}
		}

		totalSeen += seen
		totalStars += stars
		fmt.Printf("%-16s %3d/%-3d viewed   ★ %d\n", category.Label, seen, count, stars)
	}

	fmt.Printf("\nTotal: %d/%d cards viewed, %d starred\n",
		totalSeen, cat.TotalCardCount(), totalStars)
	return nil
}

// resetProgress clears all persisted viewer state.
func resetProgress(flags *cli.Flags) error {
	st, err := store.OpenSQLite(flags.StatePath)
	if err != nil {
		return fmt.Errorf("failed to open state database: %w", err)
	}
	defer st.Close()

	if err := st.Reset(); err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}
	fmt.Println("Progress cleared: viewed cards, favorites and last position.")
	return nil
}

// sayCard speaks a single card given as "category:card" and exits.
func sayCard(cat *catalog.Catalog, flags *cli.Flags) error {
	categoryID, cardID, ok := catalog.SplitFavoriteKey(flags.Say)
	if !ok {
		return fmt.Errorf("invalid --say value %q, expected category:card", flags.Say)
	}

	card, ok := cat.Card(categoryID, cardID)
	if !ok {
		return fmt.Errorf("unknown card %q", flags.Say)
	}

	controller, err := buildSpeech(flags)
	if err != nil {
		return err
	}

	fmt.Printf("Saying: %s\n", card.SpokenText())
	controller.Say(categoryID, card)
	return nil
}
