// Package config is the Config value the core accepts: a plain,
// YAML-loaded value whose recognised fields are exactly those the
// extraction pipeline understands. Unknown keys are reported but
// tolerated, following the "plain value" design note.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the core's single configuration value.
type Config struct {
	SourceRoot string `yaml:"source-root"`
	WorkingDir string `yaml:"working-dir"`
	AddonsDir  string `yaml:"addons-dir"`
	Includes   []string `yaml:"includes"`

	Input           []string `yaml:"input"`
	Exclude         []string `yaml:"exclude"`
	ExcludePatterns []string `yaml:"exclude-patterns"`
	FilePatterns    []string `yaml:"file-patterns"`

	IncludeSymbols        []string `yaml:"include-symbols"`
	ExcludeSymbols        []string `yaml:"exclude-symbols"`
	SeeBelow              []string `yaml:"see-below"`
	ImplementationDefined []string `yaml:"implementation-defined"`

	Recursive          bool `yaml:"recursive"`
	ExtractAll         bool `yaml:"extract-all"`
	WarnIfUndocumented bool `yaml:"warn-if-undocumented"`

	ExtractPrivate               bool `yaml:"extract-private"`
	ExtractPrivateVirtual        bool `yaml:"extract-private-virtual"`
	ExtractAnonymousNamespaces   bool `yaml:"extract-anonymous-namespaces"`
	ExtractStatic                bool `yaml:"extract-static"`
	ExtractLocalClasses          bool `yaml:"extract-local-classes"`
	ExtractImplicitSpecializations bool `yaml:"extract-implicit-specializations"`
	ExtractFriends               bool `yaml:"extract-friends"`

	SFINAE bool `yaml:"sfinae"`

	Defines     []string `yaml:"defines"`
	Concurrency int      `yaml:"concurrency"`

	IgnoreFailures bool `yaml:"ignore-failures"`
}

// Default returns a Config with the documented defaults: Regular
// extraction unless include-symbols is set.
func Default() *Config {
	return &Config{
		Recursive:      true,
		Concurrency:    1,
		IgnoreFailures: true,
	}
}

// UnknownKeyError reports a config key the schema does not recognise.
// Load tolerates these: they are collected and returned alongside a
// successfully parsed Config rather than failing the load.
type UnknownKeyError struct {
	Keys []string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("config: unknown keys: %v", e.Keys)
}

// Load reads and parses a YAML config file at path, returning the parsed
// Config and a non-nil *UnknownKeyError (still usable) if any keys in the
// document are not part of the schema.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML config bytes, identical to Load minus the file read.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: parsing: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parsing: %w", err)
	}
	if unknown := unknownKeys(raw); len(unknown) > 0 {
		return c, &UnknownKeyError{Keys: unknown}
	}
	return c, nil
}

func unknownKeys(raw map[string]any) []string {
	var unknown []string
	for k := range raw {
		if !schemaKeys[k] {
			unknown = append(unknown, k)
		}
	}
	return unknown
}

var schemaKeys = map[string]bool{
	"source-root": true, "working-dir": true, "addons-dir": true, "includes": true,
	"input": true, "exclude": true, "exclude-patterns": true, "file-patterns": true,
	"include-symbols": true, "exclude-symbols": true, "see-below": true, "implementation-defined": true,
	"recursive": true, "extract-all": true, "warn-if-undocumented": true,
	"extract-private": true, "extract-private-virtual": true, "extract-anonymous-namespaces": true,
	"extract-static": true, "extract-local-classes": true, "extract-implicit-specializations": true,
	"extract-friends": true,
	"sfinae": true,
	"defines": true, "concurrency": true,
	"ignore-failures": true,
}
