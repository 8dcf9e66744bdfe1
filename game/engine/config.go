package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	// Validate required fields
	if config.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	if len(config.Name) > MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters, got %d", ErrInvalidConfig, MaxNameLength, len(config.Name))
	}
	if config.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidConfig)
	}

	if config.OpenCells < MinOpenCells || config.OpenCells > MaxOpenCells {
		return fmt.Errorf("%w: open_cells must be between %d and %d, got %d",
			ErrInvalidConfig, MinOpenCells, MaxOpenCells, config.OpenCells)
	}
	if config.Seed != nil && *config.Seed < 0 {
		return fmt.Errorf("%w: seed must not be negative, got %d", ErrInvalidConfig, *config.Seed)
	}

	// Validate messages
	if config.Messages.Welcome == "" {
		return fmt.Errorf("%w: messages.welcome is required", ErrInvalidConfig)
	}
	if config.Messages.Victory == "" {
		return fmt.Errorf("%w: messages.victory is required", ErrInvalidConfig)
	}

	// Validate format strings
	if config.Messages.AutoPlayed != "" && !strings.Contains(config.Messages.AutoPlayed, "%d") {
		return fmt.Errorf("%w: messages.auto_played must contain %%d for the card count", ErrInvalidConfig)
	}

	return nil
}

// DefaultGameConfig returns the classic four-cell game with auto-play on.
func DefaultGameConfig() *GameConfig {
	config := &GameConfig{
		Name:        "classic",
		Description: "Classic FreeCell: eight columns, four open cells, auto-play to foundations",
		OpenCells:   DefaultOpenCells,
		AutoPlay:    true,
	}
	config.Messages.Welcome = "Welcome to FreeCell! Build every foundation from Ace to King."
	config.Messages.Victory = "Victory! All four foundations are complete."
	config.Messages.IllegalMove = "That move is not allowed"
	config.Messages.AutoPlayed = "Auto-played %d card(s) to the foundations"
	return config
}

// LoadGameConfig loads a game configuration from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	// Support CONFIG_DIR environment variable for alternative config directory
	configPath := filename
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConfigByName loads a game configuration by name from the configs directory
func LoadConfigByName(configName string) (*GameConfig, error) {
	if !strings.HasSuffix(configName, ".json") {
		configName = configName + ".json"
	}

	dir := "configs"
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		dir = configDir
	}
	configPath := filepath.Join(dir, configName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file '%s' not found", configName)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configName, err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", configName, err)
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %w", configName, err)
	}

	return &config, nil
}

// SeedFor returns the seed a new game under config should be dealt with:
// the pinned seed when there is one, otherwise a fresh random seed.
func SeedFor(config *GameConfig) int64 {
	if config != nil && config.Seed != nil {
		return *config.Seed
	}
	return rand.Int63()
}

// InitGameStateFromConfig deals a new game for the configuration.
func InitGameStateFromConfig(config *GameConfig, seed int64) *GameState {
	if config == nil {
		config = DefaultGameConfig()
	}
	return DealSeed(seed, config.OpenCells)
}
