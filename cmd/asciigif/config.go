package main

import (
	"fmt"
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v2"
)

// Config mirrors the command line flags so defaults can be kept in a file.
// Flags given on the command line take precedence.
type Config struct {
	Width   int    `yaml:"width"`
	Filter  string `yaml:"filter"`
	Workers int    `yaml:"workers"`
	Adjust  struct {
		Gamma           float64 `yaml:"gamma"`
		Brightness      float64 `yaml:"brightness"`
		Contrast        float64 `yaml:"contrast"`
		Sharpen         float64 `yaml:"sharpen"`
		SigmoidMidpoint float64 `yaml:"sigmoidMidpoint"`
		SigmoidFactor   float64 `yaml:"sigmoidFactor"`
		Invert          bool    `yaml:"invert"`
	} `yaml:"adjust"`
	Play struct {
		Enabled  bool   `yaml:"enabled"`
		Interval string `yaml:"interval"`
		Loops    int    `yaml:"loops"`
	} `yaml:"play"`
}

func readConfig(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		return &cfg, nil
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %v", path, err)
	}
	if cfg.Play.Interval != "" {
		if _, err := time.ParseDuration(cfg.Play.Interval); err != nil {
			return nil, fmt.Errorf("config %s: play.interval: %v", path, err)
		}
	}
	return &cfg, nil
}

// interval returns the configured play interval, or 0 when unset.
func (cfg *Config) interval() time.Duration {
	d, _ := time.ParseDuration(cfg.Play.Interval)
	return d
}
