// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package config defines the process-wide configuration of a dispatcher: which dispatch keys are always
// included in, or always excluded from, the keys used to select a kernel.
//
// The configuration can be given as a string (see Parse), through the GOMLX_DISPATCH environment variable,
// or loaded from a YAML file (see LoadFile).
package config

import (
	"io"
	"os"
	"strings"

	"github.com/gomlx/dispatch/pkg/core/dispatchkeys"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

// GOMLX_DISPATCH is the environment variable with the default dispatcher configuration.
//
// See Parse for the format.
const GOMLX_DISPATCH = "GOMLX_DISPATCH"

// DefaultConfig is used by FromEnv if GOMLX_DISPATCH is not set.
//
// See Parse for the format.
var DefaultConfig string

// Config of a dispatcher.
type Config struct {
	// Include keys are added to the keys of every call.
	Include dispatchkeys.Set

	// Exclude keys are removed from the keys of every call, after Include is added.
	Exclude dispatchkeys.Set
}

// FromEnv returns the default configuration:
//
// 1. The environment GOMLX_DISPATCH is used if defined.
// 2. Next the variable DefaultConfig is used if defined.
// 3. Otherwise, an empty configuration.
func FromEnv() (Config, error) {
	if config, found := os.LookupEnv(GOMLX_DISPATCH); found {
		c, err := Parse(config)
		if err != nil {
			return Config{}, errors.WithMessagef(err, "invalid value for $%s", GOMLX_DISPATCH)
		}
		return c, nil
	}
	return Parse(DefaultConfig)
}

// Parse a configuration string, formatted as semicolon-separated sections "<section>=<keys>",
// where <section> is "include" or "exclude", and <keys> is a comma-separated list of dispatch keys.
//
// E.g.: "include=Profiler;exclude=Autograd,Tracer". An empty string is an empty configuration.
func Parse(config string) (c Config, err error) {
	for _, section := range strings.Split(config, ";") {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}
		name, list, found := strings.Cut(section, "=")
		if !found {
			return Config{}, errors.Errorf("dispatcher config section %q is missing \"=\", "+
				"expected format is \"include=<keys>;exclude=<keys>\"", section)
		}
		var keys dispatchkeys.Set
		keys, err = dispatchkeys.ParseSet(list)
		if err != nil {
			return Config{}, errors.WithMessagef(err, "dispatcher config section %q", section)
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "include":
			c.Include = c.Include.Union(keys)
		case "exclude":
			c.Exclude = c.Exclude.Union(keys)
		default:
			return Config{}, errors.Errorf("unknown dispatcher config section %q, valid sections are \"include\" and \"exclude\"", name)
		}
	}
	if err = c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// fileConfig is the YAML representation of Config.
type fileConfig struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// LoadFile reads the configuration from a YAML file with the format:
//
//	include: [Profiler]
//	exclude:
//	  - Autograd
//	  - Tracer
//
// An empty file is an empty configuration.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to open dispatcher config file")
	}
	defer func() { _ = f.Close() }()

	var raw fileConfig
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err = decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrapf(err, "failed to parse dispatcher config file %q", path)
	}

	var c Config
	if c.Include, err = dispatchkeys.ParseNames(raw.Include); err != nil {
		return Config{}, errors.WithMessagef(err, "dispatcher config file %q, \"include\"", path)
	}
	if c.Exclude, err = dispatchkeys.ParseNames(raw.Exclude); err != nil {
		return Config{}, errors.WithMessagef(err, "dispatcher config file %q, \"exclude\"", path)
	}
	if err = c.Validate(); err != nil {
		return Config{}, errors.WithMessagef(err, "dispatcher config file %q", path)
	}
	klog.V(1).Infof("Loaded dispatcher config %q from %q", c, path)
	return c, nil
}

// Validate checks that no key is both included and excluded.
func (c Config) Validate() error {
	if both := c.Include.Intersect(c.Exclude); !both.IsEmpty() {
		return errors.Errorf("dispatch keys %s are both included and excluded", both)
	}
	return nil
}

// Merge returns the union of both configurations. The result may not be valid, call Validate on it.
func (c Config) Merge(other Config) Config {
	return Config{
		Include: c.Include.Union(other.Include),
		Exclude: c.Exclude.Union(other.Exclude),
	}
}

// Apply returns the keys after including and excluding the configured keys.
func (c Config) Apply(keys dispatchkeys.Set) dispatchkeys.Set {
	return keys.Union(c.Include).Sub(c.Exclude)
}

// String returns the configuration in the format accepted by Parse.
func (c Config) String() string {
	var parts []string
	if !c.Include.IsEmpty() {
		parts = append(parts, "include="+strings.Join(c.Include.Names(), ","))
	}
	if !c.Exclude.IsEmpty() {
		parts = append(parts, "exclude="+strings.Join(c.Exclude.Names(), ","))
	}
	return strings.Join(parts, ";")
}
