package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alnah/palgen"
)

// Language and quote values accepted in output.language and output.quote.
const (
	LanguageCpp  = string(palgen.LanguageCpp)
	LanguageGo   = string(palgen.LanguageGo)
	QuoteRaw     = string(palgen.QuoteRaw)
	QuoteEscaped = string(palgen.QuoteEscaped)
)

// DefaultPreset is used when neither the config nor the flags name one.
const DefaultPreset = "sciplot"

// DefaultSourceDir is the submodule holding the gnuplot palettes.
const DefaultSourceDir = "gnuplot-palettes"

var (
	plotHeader = palgen.MITHeader(
		"A modern C++ interface for plotting using gnuplot",
		"https://github.com/allanleal/plot",
		"2018 Allan Leal")
	sciplotHeader = palgen.MITHeader(
		"sciplot - a modern C++ scientific plotting library powered by gnuplot",
		"https://github.com/sciplot/sciplot",
		"2018-2021 Allan Leal")
)

// presets reproduce the layouts palgen was written for.
var presets = map[string]Config{
	"plot": {
		Source: SourceConfig{Dir: DefaultSourceDir, Extension: ".pal"},
		Output: OutputConfig{
			Path:      "plot/palletes.hpp",
			Language:  LanguageCpp,
			Quote:     QuoteRaw,
			Namespace: "plot",
			Table:     "palletes",
			Header:    plotHeader,
		},
	},
	"sciplot": {
		Source: SourceConfig{Dir: DefaultSourceDir, Extension: ".pal"},
		Output: OutputConfig{
			Path:      "sciplot/Palettes.hpp",
			Language:  LanguageCpp,
			Quote:     QuoteRaw,
			Namespace: "sciplot",
			Table:     "palettes",
			Header:    sciplotHeader,
		},
	},
	"go": {
		Source: SourceConfig{Dir: DefaultSourceDir, Extension: ".pal"},
		Output: OutputConfig{
			Path:      "palettes/palettes_gen.go",
			Language:  LanguageGo,
			Quote:     QuoteRaw,
			Namespace: "palettes",
			Table:     "Palettes",
		},
	},
}

// Preset returns a copy of the named preset.
func Preset(name string) (*Config, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return &p, nil
}

// PresetNames lists the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
