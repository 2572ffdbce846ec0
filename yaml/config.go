// Package yaml provides YAML-file loading for the audit configuration.
package yaml

import (
	"os"

	"github.com/fwojciec/seoaudit"
	"gopkg.in/yaml.v3"
)

// Load reads a config file and merges it over the defaults. A missing
// path ("" or nonexistent file) returns the defaults unchanged; a present
// but invalid file is an error.
func Load(path string) (seoaudit.Config, error) {
	cfg := seoaudit.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return cfg, seoaudit.Errorf(seoaudit.EINVALID, "cannot read config file %q: %v", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, seoaudit.Errorf(seoaudit.EINVALID, "cannot parse config file %q: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
