package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stimgen/compose"
	"github.com/katalvlaran/stimgen/pipeline"
)

// Config holds the run configuration loaded from the YAML file.
type Config struct {
	// Input is the lexical-item table (CSV).
	Input string `yaml:"input"`
	// OutDir receives one CSV per presentation list.
	OutDir string `yaml:"out_dir"`

	Seed       int64 `yaml:"seed"`
	FormatSeed int64 `yaml:"format_seed"`

	Session     string `yaml:"session"`
	Language    string `yaml:"language"`
	ArticleRule string `yaml:"article_rule"` // "separate" or "suffixed"

	MaterialsVersion string `yaml:"materials_version"`
	PropertyName     string `yaml:"property_name"`
	PropertyCode     int    `yaml:"property_code"`

	ResponseGrammatical string `yaml:"response_grammatical"`
	ResponseViolation   string `yaml:"response_violation"`
}

// LoadConfig reads and parses the YAML run configuration.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts the file configuration into pipeline options, filling
// unset fields from the deterministic defaults.
func (c Config) Options() (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	if c.Seed != 0 {
		opts.Seed = c.Seed
	}
	if c.FormatSeed != 0 {
		opts.FormatSeed = c.FormatSeed
	}
	if c.Session != "" {
		opts.Session = c.Session
	}
	if c.Language != "" {
		opts.Language = c.Language
	}
	if c.ArticleRule != "" {
		rule, err := compose.ParseArticleRule(c.ArticleRule)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.ArticleRule = rule
	}
	if c.MaterialsVersion != "" {
		opts.MaterialsVersion = c.MaterialsVersion
	}
	if c.PropertyName != "" {
		opts.PropertyName = c.PropertyName
	}
	if c.PropertyCode != 0 {
		opts.PropertyCode = c.PropertyCode
	}
	if c.ResponseGrammatical != "" {
		opts.ResponseGrammatical = c.ResponseGrammatical
	}
	if c.ResponseViolation != "" {
		opts.ResponseViolation = c.ResponseViolation
	}
	return opts, nil
}
