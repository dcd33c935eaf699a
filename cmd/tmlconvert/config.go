package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the optional settings a .tmlconvert.yaml file may supply,
// adopted from uber-research-last-diff-analyzer's flat-struct yaml.v3
// config loading rather than anything in the teacher, which has no
// equivalent CLI config file.
type config struct {
	// ServeAddr is the default listen address for the serve subcommand,
	// overridden by its --addr flag when set.
	ServeAddr string `yaml:"serve_addr"`
	// MetricsAddr, if non-empty, is the default listen address for the
	// serve subcommand's Prometheus metrics endpoint.
	MetricsAddr string `yaml:"metrics_addr"`
}

var activeConfig config

// loadConfig reads path into activeConfig. A missing path is not an error:
// tmlconvert runs fine with no config file at all. An explicitly given
// path that can't be read or parsed is.
func loadConfig(path string) error {
	if path == "" {
		path = ".tmlconvert.yaml"
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, &activeConfig)
}
