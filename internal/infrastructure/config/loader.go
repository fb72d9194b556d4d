// Package config loads game, character and stage configuration.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// File names inside the config directory
const (
	GameFile      = "game.json"
	CharacterFile = "character.yaml"
	StageDir      = "stages"
)

// ErrEmptyConfig is returned for a config file with no content. Editors
// that truncate before writing expose such a file for a moment.
var ErrEmptyConfig = errors.New("config file is empty")

// Config holds all loaded configurations
type Config struct {
	Game      *GameConfig
	Character *CharacterConfig
}

// Loader loads configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// decode unmarshals name into out, picking JSON or YAML by extension
func (l *Loader) decode(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("failed to read %s: %w", name, ErrEmptyConfig)
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, out)
	default:
		err = json.Unmarshal(data, out)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadGame loads game.json over the defaults
func (l *Loader) LoadGame() (*GameConfig, error) {
	cfg := DefaultGame()
	if err := l.decode(GameFile, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.World.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", GameFile, err)
	}
	return &cfg, nil
}

// LoadCharacter loads character.yaml over the defaults
func (l *Loader) LoadCharacter() (*CharacterConfig, error) {
	cfg := DefaultCharacter()
	if err := l.decode(CharacterFile, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", CharacterFile, err)
	}
	return &cfg, nil
}

// LoadStage loads stages/<name>.tmx if present, otherwise stages/<name>.json
func (l *Loader) LoadStage(name string) (*Stage, error) {
	tmx := path.Join(StageDir, name+".tmx")
	if _, err := fs.Stat(l.fsys, tmx); err == nil {
		stage, err := LoadTMXStage(l.fsys, tmx)
		if err != nil {
			return nil, err
		}
		if stage.Name == "" {
			stage.Name = name
		}
		return stage, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := l.decode(path.Join(StageDir, name+".json"), &cfg); err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", name, err)
	}
	return BuildStage(&cfg)
}

// LoadAll loads all base configurations (game, character)
func (l *Loader) LoadAll() (*Config, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	character, err := l.LoadCharacter()
	if err != nil {
		return nil, err
	}

	return &Config{
		Game:      game,
		Character: character,
	}, nil
}
