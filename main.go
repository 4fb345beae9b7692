// main.go
//
// CLI entrypoint for the Wordy bot simulator.
// Responsibilities:
//   - Flag/env configuration (.env via godotenv, LOG_LEVEL, word-list paths).
//   - Word-list resolution: --words file, --words-db SQLite, or embedded default.
//   - Target resolution: --target, --daily (deterministic per date), or random.
//   - Running one game or a --games N batch, with an end-of-run summary.
//
// Env vars:
//   WORDY_WORDS_FILE=/path/to/words.txt
//   WORDY_WORDS_DB=/path/to/words.db
//   WORDY_DAILY_SALT=some-secret
//   LOG_LEVEL=debug|info|warn|error

package main

import (
	"fmt"
	mrand "math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wordybot/wordy/internal/bot"
	"github.com/wordybot/wordy/internal/display"
	"github.com/wordybot/wordy/internal/game"
	"github.com/wordybot/wordy/internal/store"
	"github.com/wordybot/wordy/internal/words"
)

var flags struct {
	wordsFile  string
	wordsDB    string
	target     string
	maxGuesses int
	seed       int64
	games      int
	daily      bool
	color      bool
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "wordy",
		Short:         "Simulate a bot playing a Wordle-like guessing game",
		Long:          "wordy pits a candidate-elimination bot against a referee that scores\nfive-letter guesses and validates them against previously revealed feedback.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().StringVar(&flags.wordsFile, "words", "", "word list file, one word per line (default: WORDY_WORDS_FILE or embedded list)")
	cmd.Flags().StringVar(&flags.wordsDB, "words-db", "", "SQLite word list database (default: WORDY_WORDS_DB)")
	cmd.Flags().StringVar(&flags.target, "target", "", "explicit target word (must be in the word list)")
	cmd.Flags().IntVar(&flags.maxGuesses, "max-guesses", game.DefaultMaxGuesses, "guess budget per game")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "randomness seed for reproducible runs (0 = time-based)")
	cmd.Flags().IntVar(&flags.games, "games", 1, "number of games to simulate")
	cmd.Flags().BoolVar(&flags.daily, "daily", false, "use today's deterministic daily target")
	cmd.Flags().BoolVar(&flags.color, "color", false, "render feedback as colored tiles")
	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	list, err := loadList()
	if err != nil {
		return fmt.Errorf("load word list: %w", err)
	}
	log.Info().Int("words", list.Len()).Msg("word list loaded")

	seed := flags.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := mrand.New(mrand.NewSource(seed))
	log.Debug().Int64("seed", seed).Msg("randomness seeded")

	target := flags.target
	if flags.daily {
		if target != "" {
			return fmt.Errorf("--daily and --target are mutually exclusive")
		}
		target = list.Daily(time.Now(), getEnv("WORDY_DAILY_SALT", "wordy"))
	}

	rec := store.NewMemoryRecorder()
	reporter := display.NewConsole(cmd.OutOrStdout(), flags.color)

	var lastErr error
	for i := 0; i < flags.games; i++ {
		eng, err := game.New(list, game.Config{
			Target:     target,
			MaxGuesses: flags.maxGuesses,
			Rand:       rng,
			Reporter:   reporter,
		})
		if err != nil {
			return err
		}
		res := eng.Play(bot.NewRandom(list, rng))
		rec.Record(res)

		ev := log.Info().Int("game", i+1).Str("target", res.Target).
			Str("status", string(res.Status)).Int("rounds", res.Rounds)
		if res.Err != nil {
			ev = log.Error().Int("game", i+1).Err(res.Err).Str("status", string(res.Status))
			lastErr = res.Err
		}
		ev.Msg("game finished")
	}

	s := rec.Summary()
	if s.Games > 1 {
		log.Info().Int("games", s.Games).Int("wins", s.Wins).
			Int("exhausted", s.Exhausted).Int("aborted", s.Aborted).
			Float64("win_rate", s.WinRate()).Float64("avg_win_rounds", s.AvgWinRounds()).
			Msg("batch summary")
	}
	return lastErr
}

// loadList resolves the word list source: flag, env, or embedded default.
func loadList() (*words.List, error) {
	if flags.wordsDB == "" {
		flags.wordsDB = os.Getenv("WORDY_WORDS_DB")
	}
	if flags.wordsFile == "" {
		flags.wordsFile = os.Getenv("WORDY_WORDS_FILE")
	}
	switch {
	case flags.wordsDB != "":
		return words.LoadDB(flags.wordsDB)
	case flags.wordsFile != "":
		return words.Load(flags.wordsFile)
	default:
		return words.Default(), nil
	}
}

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
