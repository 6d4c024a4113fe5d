package ioc

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// LoadContainerOptions reads a YAML file shaped like:
//
//	strictScoping: true
//	strictRegistration: false
//
// into a ContainerOptions value, the way the source's config layer reads
// a file straight into the target shape. Unlike the source's flattened
// key/value ConfigManager, ContainerOptions has exactly two fields, so
// there is no flatten/nest step to reproduce — goccy/go-yaml's struct
// tags do the whole job.
func LoadContainerOptions(path string) (ContainerOptions, error) {
	var opts ContainerOptions

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("ioc: read container options: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("ioc: parse container options: %w", err)
	}
	return opts, nil
}
