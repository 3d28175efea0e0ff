// Package config loads the selint configuration file (.selint.yaml).
// The configuration selects target files and optionally replaces the
// built-in pattern catalog, so the engine can enforce other banned-API
// policies without code changes.
package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Files    []*File        `yaml:"files"`
	Patterns []*PatternSpec `yaml:"patterns"`
}

// File selects scan targets by a regular expression over paths relative
// to the working directory.
type File struct {
	Pattern string `yaml:"pattern"`
	regexp  *regexp.Regexp
}

func (f *File) Init() error {
	if f.Pattern == "" {
		return errors.New("pattern is required")
	}
	r, err := regexp.Compile(f.Pattern)
	if err != nil {
		return fmt.Errorf("parse pattern as a regular expression: %w", err)
	}
	f.regexp = r
	return nil
}

func (f *File) Match(filePath string) bool {
	return f.regexp != nil && f.regexp.MatchString(filePath)
}

// PatternSpec overrides one entry of the pattern catalog. The regexp is
// compiled and validated at catalog load, before any file is scanned.
type PatternSpec struct {
	ID      string `yaml:"id"`
	Regexp  string `yaml:"regexp"`
	Message string `yaml:"message"`
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".selint.yaml", ".github/selint.yaml", ".selint.yml", ".github/selint.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	for _, file := range cfg.Files {
		if err := file.Init(); err != nil {
			return fmt.Errorf("initialize file: %w", err)
		}
	}
	return nil
}
