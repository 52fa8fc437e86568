// Package store loads and saves the classification rules file. The rules
// are plain YAML so users edit them directly instead of touching code.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/budget-csv/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// DefaultRulesFile is the filename searched for when none is configured.
const DefaultRulesFile = "rules.yaml"

// RulesStore manages loading and saving of classification rules.
type RulesStore struct {
	RulesFile string
}

// NewRulesStore creates a store for the given rules file. An empty filename
// means the default search locations are used.
func NewRulesStore(rulesFile string) *RulesStore {
	return &RulesStore{RulesFile: rulesFile}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *RulesStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// Last resort: user config directory
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "budget-csv", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules loads classification rules from the YAML file. A missing file is
// not an error: the built-in defaults apply. Sections absent from the file
// also fall back to their defaults, so a rules file may override just the
// category table and keep the standard group labels.
func (s *RulesStore) LoadRules() (models.Rules, error) {
	defaults := models.DefaultRules()

	filename := s.RulesFile
	if filename == "" {
		filename = DefaultRulesFile
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Rules file not found: %s, using built-in defaults", filename)
			return defaults, nil
		}
		return models.Rules{}, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return models.Rules{}, fmt.Errorf("error reading rules file %s: %w", filePath, err)
	}

	var rules models.Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return models.Rules{}, fmt.Errorf("error parsing rules file %s: %w", filePath, err)
	}

	if rules.CategoryToGroup == nil {
		rules.CategoryToGroup = defaults.CategoryToGroup
	}
	if rules.GroupLabels == nil {
		rules.GroupLabels = defaults.GroupLabels
	}

	log.WithFields(logrus.Fields{
		"file":       filePath,
		"categories": len(rules.CategoryToGroup),
	}).Info("Loaded classification rules")

	return rules, nil
}

// SaveRules writes the rules back to the YAML file, creating parent
// directories as needed.
func (s *RulesStore) SaveRules(rules models.Rules) error {
	filename := s.RulesFile
	if filename == "" {
		filename = DefaultRulesFile
	}

	data, err := yaml.Marshal(rules)
	if err != nil {
		return fmt.Errorf("error marshaling rules: %w", err)
	}

	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("error writing rules file %s: %w", filename, err)
	}

	log.WithField("file", filename).Info("Saved classification rules")
	return nil
}
