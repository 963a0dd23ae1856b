package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
)

// Config mirrors the configuration file schema.
type Config struct {
	Endpoints *Endpoints `hcl:"endpoints,block"`
	Timeout   string     `hcl:"timeout,optional"`
	NoColor   bool       `hcl:"no_color,optional"`
}

// Endpoints overrides the API URLs. Empty fields keep the defaults.
type Endpoints struct {
	Location string `hcl:"location,optional"`
	Passing  string `hcl:"passing,optional"`
	People   string `hcl:"people,optional"`
}

// Load reads and decodes the file at path. An empty path yields an empty
// Config so callers can treat the file as strictly optional.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	if err := hclsimple.DecodeFile(path, evalContext(), cfg); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseTimeout interprets the timeout field. Zero duration means "not set".
func (c *Config) ParseTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout %q must be positive", c.Timeout)
	}
	return d, nil
}

// evalContext exposes the process environment to HCL expressions as a string
// map named env.
func evalContext() *hcl.EvalContext {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}

	env := cty.MapValEmpty(cty.String)
	if len(vars) > 0 {
		env = cty.MapVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
