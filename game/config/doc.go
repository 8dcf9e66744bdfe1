// Package config provides configuration management for the FreeCell game
// server.
//
// The config package handles:
//   - Loading game configurations from JSON files
//   - Configuration validation
//   - Default configuration selection
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Game configurations are stored as JSON files in the configs directory.
// Each configuration defines the number of open cells (1 to 4), whether
// cards are auto-played to the foundations after each move, an optional
// pinned deal seed, and the messages shown to players.
//
//	{
//	  "name": "Classic",
//	  "description": "Four open cells, auto-play on",
//	  "open_cells": 4,
//	  "auto_play": true,
//	  "messages": {"welcome": "...", "victory": "..."}
//	}
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameConfig, err := manager.LoadConfig("two_cells")
//	defaultConfig := manager.GetDefault()
//	configs, err := manager.ListConfigs()
//
// The default is classic.json when present, otherwise the first loadable
// file, otherwise engine.DefaultGameConfig.
package config
