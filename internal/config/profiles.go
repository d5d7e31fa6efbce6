package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// profilesFile is the top-level shape of a profiles.yaml sidecar:
//
//	profiles:
//	  - name: ai-policy
//	    query: "AI regulation in the EU"
//	    filters: { country: FR }
//	    limit: 10
type profilesFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// LoadProfiles reads interest profiles from a YAML sidecar file. When the
// config names a profilesPath, the sidecar replaces the JSON profiles list,
// letting operators keep long profile sets out of config.json.
func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles %s: %w", path, err)
	}

	var f profilesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse profiles %s: %w", path, err)
	}
	return f.Profiles, nil
}
