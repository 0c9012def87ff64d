// Package config holds the optional runner configuration. A missing file
// means defaults; a present but invalid file is an error.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigName is the file the runner looks for next to the directive file.
const ConfigName = "proj.yaml"

type Config struct {
	// Shell is the program commands are handed to, as `<shell> -c <cmd>`.
	Shell string `json:"shell" validate:"required"`
	// MaxCallDepth bounds nested `call` invocations.
	MaxCallDepth int `json:"max_call_depth" validate:"gte=1,lte=65536"`
}

// Validate checks the configuration for semantic errors, reporting fields by
// their YAML names.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return validate.Struct(c)
}

// Default returns the embedded default configuration.
func Default() *Config {
	var out Config
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
