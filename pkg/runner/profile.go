package runner

import (
	_ "embed"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var builtinProfiles []byte

const defaultProfile = "default"

// Profile is a named set of scan defaults. Explicit flags always win over
// the profile.
type Profile struct {
	Concurrency   int  `yaml:"concurrency"`
	Timeout       int  `yaml:"timeout"`
	ChunkSize     int  `yaml:"chunk-size"`
	StatsInterval int  `yaml:"stats-interval"`
	Workers       int  `yaml:"workers"`
	MaxWorkers    int  `yaml:"max-workers"`
	Redirects     bool `yaml:"redirects"`

	// zero is a meaningful value for these, nil means unset
	JitterMin   *int  `yaml:"jitter-min"`
	JitterMax   *int  `yaml:"jitter-max"`
	ChunkPause  *int  `yaml:"chunk-pause"`
	RateBackoff *int  `yaml:"rate-backoff"`
	Soft404     *bool `yaml:"soft404"`
}

func parseProfiles(data []byte) (map[string]*Profile, error) {
	profiles := make(map[string]*Profile)
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, errors.Wrap(err, "could not parse profiles")
	}
	return profiles, nil
}

// LoadProfiles returns the built-in profiles merged with the ones in
// filename, if given. A profile in filename replaces a built-in one with
// the same name.
func LoadProfiles(filename string) (map[string]*Profile, error) {
	profiles, err := parseProfiles(builtinProfiles)
	if err != nil {
		return nil, err
	}
	if filename == "" {
		return profiles, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read profile file %s", filename)
	}
	custom, err := parseProfiles(data)
	if err != nil {
		return nil, errors.Wrapf(err, "profile file %s", filename)
	}
	for name, profile := range custom {
		profiles[name] = profile
	}
	return profiles, nil
}

func ProfileNames(profiles map[string]*Profile) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
