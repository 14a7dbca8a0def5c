package tablesed

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nystrom/tablesed/engine"
)

// configOverride mirrors the subset of engine.Config a user may want to
// tune from a file, the same way the teacher's sqlcode.yaml overrides a
// handful of settings (cli/cmd/config.go) rather than exposing every
// internal knob.
type configOverride struct {
	RowsStep          *int    `yaml:"rows_step"`
	CellsStep         *int    `yaml:"cells_step"`
	ContentStep       *int    `yaml:"content_step"`
	VariableCount     *int    `yaml:"variable_count"`
	BlacklistedDelims *string `yaml:"blacklisted_delims"`
}

// LoadEngineConfig returns engine.DefaultConfig(), optionally overridden
// by the YAML file at path (spec.md §9's configuration record, §2.1's
// "Configuration" ambient-stack note). An empty path returns the
// defaults unchanged.
func LoadEngineConfig(path string) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, ioErr(err)
	}

	var override configOverride
	if err := yaml.Unmarshal(data, &override); err != nil {
		return cfg, argErr("parsing config %s: %v", path, err)
	}

	if override.RowsStep != nil {
		cfg.RowsStep = *override.RowsStep
	}
	if override.CellsStep != nil {
		cfg.CellsStep = *override.CellsStep
	}
	if override.ContentStep != nil {
		cfg.ContentStep = *override.ContentStep
	}
	if override.VariableCount != nil {
		cfg.VariableCount = *override.VariableCount
	}
	if override.BlacklistedDelims != nil {
		cfg.BlacklistedDelims = *override.BlacklistedDelims
	}
	return cfg, nil
}
