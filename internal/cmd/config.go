package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the shape of the optional --config YAML file:
//
//	recursive: true
//	verbose: false
//	debug: false
//	options:
//	  gunzip: "-v"
//	  unzip: "-q"
//
// Option keys are the tool names used by the dispatch rules.
type fileConfig struct {
	Recursive bool              `yaml:"recursive"`
	Verbose   bool              `yaml:"verbose"`
	Debug     bool              `yaml:"debug"`
	Options   map[string]string `yaml:"options"`
}

var knownTools = map[string]struct{}{
	"gunzip":     {},
	"bunzip2":    {},
	"unzip":      {},
	"uncompress": {},
}

func loadConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	for tool := range fc.Options {
		if _, ok := knownTools[tool]; !ok {
			return fc, fmt.Errorf("config %s: unknown tool %q in options", path, tool)
		}
	}
	return fc, nil
}
