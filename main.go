package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"reversi/agent"
	"reversi/console"
	"reversi/engine"
	"reversi/experiments"
	"reversi/experiments/metrics"
	"reversi/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	black := flag.String("black", "human", "Black player: human, greedy or random")
	white := flag.String("white", "greedy", "White player: human, greedy or random")
	first := flag.String("first", "black", "Color that moves first")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for random agents")
	games := flag.Int("games", 0, "Play this many automated games and report the tally")
	out := flag.String("out", "", "Directory for experiment records")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	if *games > 0 {
		err = runExperiment(*black, *white, *seed, *games, *out)
	} else {
		err = runInteractive(*black, *white, *first, *seed)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("reversi failed")
	}
}

func runExperiment(black, white string, seed uint64, games int, out string) error {
	result, err := experiments.Run(experiments.Config{
		Games:  games,
		Black:  metrics.AgentConfig{ID: 1, Name: black, Seed: seed},
		White:  metrics.AgentConfig{ID: 2, Name: white, Seed: seed + 1},
		OutDir: out,
	})
	if err != nil {
		return err
	}
	fmt.Printf("black (%s) %d, white (%s) %d, draws %d\n", black, result.BlackWins, white, result.WhiteWins, result.Draws)
	return nil
}

func runInteractive(black, white, first string, seed uint64) error {
	starting, err := game.ParseColor(first)
	if err != nil {
		return err
	}
	session := console.NewSession(os.Stdin, os.Stdout)

	blackAgent, err := newAgent(black, session, seed)
	if err != nil {
		return err
	}
	whiteAgent, err := newAgent(white, session, seed+1)
	if err != nil {
		return err
	}

	e := engine.New(blackAgent, whiteAgent, engine.WithStartingColor(starting))
	return session.Play(e)
}

func newAgent(name string, session *console.Session, seed uint64) (agent.Agent, error) {
	if name == "human" {
		return console.NewHuman(session), nil
	}
	return agent.ByName(name, seed)
}
