// Package store loads the replaceable category keyword table from YAML.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pigapp/cib-statement/internal/logging"
	"pigapp/cib-statement/internal/models"
)

// categoriesFile is the YAML document shape:
//
//	categories:
//	  - name: food
//	    keywords: [lidl, spar]
type categoriesFile struct {
	Categories []models.CategoryKeywords `yaml:"categories"`
}

// KeywordStore resolves and loads a category keyword table file.
type KeywordStore struct {
	File   string
	logger logging.Logger
}

// NewKeywordStore creates a store for the given file name or path.
func NewKeywordStore(file string, logger logging.Logger) *KeywordStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &KeywordStore{File: file, logger: logger}
}

// LoadCategories loads the keyword table. A missing file is not an
// error: it returns an empty table and the caller falls back to the
// built-in one. Table order in the file is preserved, it decides
// categorization ties.
func (s *KeywordStore) LoadCategories() ([]models.CategoryKeywords, error) {
	filename := s.File
	if filename == "" {
		filename = "categories.yaml"
	}

	path, err := s.findConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField("file", filename).
				Warn("Categories file not found, using built-in table")
			return []models.CategoryKeywords{}, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config file path comes from the user's own configuration
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var doc categoriesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: len(doc.Categories)},
	).Debug("Loaded category keyword table")

	return doc.Categories, nil
}

// findConfigFile looks for the file in standard locations.
func (s *KeywordStore) findConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "cib-statement", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}
