package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordle-utils/assets"
	"github.com/robalobadob/wordle/apps/wordle-utils/internal/config"
	"github.com/robalobadob/wordle/apps/wordle-utils/internal/httpserver"
	"github.com/robalobadob/wordle/apps/wordle-utils/internal/simulate"
)

var (
	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "wordle-utils",
		Short: "Wordle guess scoring and letter tracking",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			var err error
			if cfg, err = config.Load(); err != nil {
				return err
			}
			if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			return nil
		},
		SilenceUsage: true,
	}
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the stateless scoring API",
		Args:  cobra.NoArgs,
		Run:   runServe,
	}
	simulateCmd = &cobra.Command{
		Use:   "simulate",
		Short: "Play a scripted game and print the scoring after every guess",
		Args:  cobra.NoArgs,
		RunE:  runSimulate,
	}

	simGame    int
	simAnswer  string
	simGuesses []string
)

func init() {
	simulateCmd.Flags().IntVar(&simGame, "game", 1, "embedded game to play (1-based)")
	simulateCmd.Flags().StringVar(&simAnswer, "answer", "", "answer word (overrides --game)")
	simulateCmd.Flags().StringSliceVar(&simGuesses, "guesses", nil, "comma separated guesses, used with --answer")
	rootCmd.AddCommand(serveCmd, simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) {
	srv := httpserver.New(cfg)
	log.Info().Str("port", cfg.Port).Msg("starting wordle-utils")
	if err := srv.Start(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func runSimulate(cmd *cobra.Command, args []string) error {
	answer, guesses := simAnswer, simGuesses
	if answer == "" {
		answer, guesses = cfg.SimAnswer, cfg.SimGuesses
	}
	if answer == "" {
		games, err := assets.Games()
		if err != nil {
			return err
		}
		if simGame < 1 || simGame > len(games) {
			return fmt.Errorf("--game must be between 1 and %d", len(games))
		}
		g := games[simGame-1]
		answer, guesses = g.Answer, g.Guesses
	}
	if len(guesses) == 0 {
		return fmt.Errorf("no guesses to play against %s", answer)
	}
	log.Debug().Str("answer", answer).Int("guesses", len(guesses)).Msg("simulating game")
	return simulate.Run(cmd.OutOrStdout(), answer, guesses)
}
