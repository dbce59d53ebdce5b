// Package main is the entry point for the text quest
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-textquest/internal/config"
)

var (
	envFile  string
	logLevel string
	storage  string
	saveSlot string
	seed     uint64

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "textquest",
	Short: "Turn-based text adventure",
	Long: `textquest is a single-player text adventure: buy gear in the village shop,
fight monsters and clear dungeons to level up. Progress can be saved to a file,
Redis or SQLite.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "env-file", "", "load settings from this file instead of ./.env")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	flags.StringVar(&storage, "storage", "", "save backend: file, redis or sqlite")
	flags.StringVar(&saveSlot, "slot", "", "save slot name")
	flags.Uint64Var(&seed, "seed", 0, "seed for reproducible dice")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadConfig reads the environment and lets explicit flags override it
func loadConfig(cmd *cobra.Command, _ []string) error {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	loaded, err := config.Load(files...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("storage") {
		loaded.Storage = config.Storage(storage)
	}
	if flags.Changed("slot") {
		loaded.SaveSlot = saveSlot
	}
	if flags.Changed("seed") {
		loaded.Seed = seed
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: loaded.SlogLevel(),
	})))

	cfg = loaded
	return nil
}
