package experiments

import (
	"errors"
	"fmt"

	"reversi/agent"
	"reversi/engine"
	"reversi/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// Config describes a matchup played over a number of games. Random agents get
// their seed offset by the game index so every game differs.
type Config struct {
	Name   string
	Games  int
	Black  metrics.AgentConfig
	White  metrics.AgentConfig
	OutDir string // records are only written when set
}

type Result struct {
	BlackWins int
	WhiteWins int
	Draws     int
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
}

func Run(cfg Config) (Result, error) {
	if cfg.Games <= 0 {
		return Result{}, errors.New("games must be positive")
	}
	if cfg.Name == "" {
		cfg.Name = fmt.Sprintf("%s_vs_%s", cfg.Black.Name, cfg.White.Name)
	}

	log.Info().Msgf("starting %s experiment with %d games...", cfg.Name, cfg.Games)

	var result Result
	for i := 0; i < cfg.Games; i++ {
		log.Debug().Msgf("starting game %d of %d...", i+1, cfg.Games)

		winner, gameMetric, moveMetrics, err := runGame(cfg.Black, cfg.White, uint64(i))
		if err != nil {
			return result, fmt.Errorf("game %d: %w", i+1, err)
		}
		switch winner {
		case "black":
			result.BlackWins++
		case "white":
			result.WhiteWins++
		default:
			result.Draws++
		}

		id := i + 1
		result.Games = append(result.Games, metrics.GameRecord{
			ID:         id,
			Black:      cfg.Black.ID,
			White:      cfg.White.ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			result.Moves = append(result.Moves, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		log.Debug().Msgf("completed game %d with winner: %q", id, winner)
	}

	log.Info().Msgf("completed %s experiment: black %d, white %d, draws %d",
		cfg.Name, result.BlackWins, result.WhiteWins, result.Draws)

	if cfg.OutDir == "" {
		return result, nil
	}
	if err := store(cfg, result); err != nil {
		return result, err
	}
	return result, nil
}

func store(cfg Config, result Result) error {
	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs([]metrics.AgentConfig{cfg.Black, cfg.White}); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(result.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return nil
}

// runGame executes a single game between two automated agents and returns the winner
func runGame(black, white metrics.AgentConfig, offset uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	blackAgent, err := agent.ByName(black.Name, black.Seed+offset)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	whiteAgent, err := agent.ByName(white.Name, white.Seed+offset)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	e := engine.New(blackAgent, whiteAgent, engine.WithMetrics())
	return e.Run()
}
