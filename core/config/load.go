package config

import (
	"os"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load reads the configuration at path from the given filesystem, falling
// back to the embedded default when the file does not exist. Unknown fields
// are rejected.
func Load(fsys afero.Fs, path string) (*Config, error) {
	contents, err := afero.ReadFile(fsys, path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	out := Default()
	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
