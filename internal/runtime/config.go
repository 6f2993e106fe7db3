// Package runtime contains the structs and definitions consumed by
// setupcheck at runtime.
package runtime

import (
	"github.com/spf13/viper"
)

// Config contains configuration details for running setupcheck.
type Config struct {
	ScriptPath     string
	WorkflowPath   string
	ResponseFormat string
	LogFile        string
	Artifacts      string
	WriteJUnit     bool
}

// NewConfigFrom will return a runtime.Config based on the stored inputs in
// the provided viper.Viper. Defaults should be set after this function has
// been called.
func NewConfigFrom(vcfg viper.Viper) (*Config, error) {
	cfg := Config{}
	cfg.ScriptPath = vcfg.GetString("script")
	cfg.WorkflowPath = vcfg.GetString("workflow")
	cfg.ResponseFormat = vcfg.GetString("format")
	cfg.LogFile = vcfg.GetString("logfile")
	cfg.Artifacts = vcfg.GetString("artifacts")
	cfg.WriteJUnit = vcfg.GetBool("junit")
	return &cfg, nil
}
