package main

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/compliscore/internal/config"
	"github.com/sells-group/compliscore/internal/fetcher"
	"github.com/sells-group/compliscore/internal/model"
	"github.com/sells-group/compliscore/internal/scorer"
)

// loadInputTable reads a broker table from path, or generates the demo
// dataset when no path is given.
func loadInputTable(path string, demoRows int) (*model.Table, error) {
	if path == "" {
		return fetcher.Demo(demoRows), nil
	}
	return fetcher.Load(path)
}

// effectivePolicy overlays a policy YAML file on top of the configured
// policy and validates the result. An empty path returns the base as is.
func effectivePolicy(base config.PolicyConfig, path string) (config.PolicyConfig, error) {
	p := base
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return p, eris.Wrapf(err, "policy: read %s", path)
		}
		// Unmarshal into the base copy so absent keys keep their values.
		if err := yaml.Unmarshal(b, &p); err != nil {
			return p, eris.Wrapf(err, "policy: parse %s", path)
		}
	}
	if err := scorer.ValidatePolicy(p); err != nil {
		return p, err
	}
	return p, nil
}

// outputWriter opens path for writing, or returns stdout when path is empty.
// The cleanup func is a no-op for stdout.
func outputWriter(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "output: create %s", path)
	}
	return f, func() { _ = f.Close() }, nil
}
