package configs

import (
	"os"
	"strings"
)

var _ ConfigSource = (*envConfigSource)(nil)

// envPrefix is prepended to config keys, `HistorySize` is read from
// PILOT_HISTORY_SIZE.
const envPrefix = "PILOT_"

type envConfigSource struct{}

func (e *envConfigSource) Name() string {
	return "env"
}

func (e *envConfigSource) Get(key string) (string, error) {
	value, ok := os.LookupEnv(envKey(key))
	if !ok {
		return "", ErrConfigNotFound
	}
	return value, nil
}

func (e *envConfigSource) Set(key, value string) error {
	return os.Setenv(envKey(key), value)
}

// envKey converts a camel case key to the env variable name.
func envKey(key string) string {
	if strings.HasPrefix(key, envPrefix) {
		return key
	}
	sb := &strings.Builder{}
	sb.WriteString(envPrefix)
	for i, r := range key {
		if i > 0 && r >= 'A' && r <= 'Z' {
			sb.WriteByte('_')
		}
		sb.WriteString(strings.ToUpper(string(r)))
	}
	return sb.String()
}
