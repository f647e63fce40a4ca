/*
File    : lox/cmd/lox/config.go

config holds the REPL's cosmetic strings. Lox itself takes no
configuration; its surface is a single optional file argument. But the
REPL banner/prompt are worth letting an embedder customize without a
recompile, so `--config <file.yaml>` loads them from a small YAML
document via gopkg.in/yaml.v3 (see DESIGN.md).
*/
package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

type config struct {
	Banner string `yaml:"banner"`
	Prompt string `yaml:"prompt"`
	Line   string `yaml:"line"`
}

func defaultConfig() *config {
	return &config{
		Banner: banner,
		Prompt: "> ",
		Line:   "----------------------------------------",
	}
}

// loadConfig overlays cfg with whatever fields path's YAML document
// sets; a field it omits keeps its default.
func loadConfig(cfg *config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
