package configs

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	KeyHistorySize  = "HistorySize"
	KeyLogLevel     = "LogLevel"
	KeyLogFile      = "LogFile"
	KeyPager        = "Pager"
	KeyOutputFormat = "OutputFormat"
)

var fileKeys = []string{KeyHistorySize, KeyLogLevel, KeyLogFile, KeyPager, KeyOutputFormat}

var _ ConfigSource = (*fileConfigSource)(nil)

// fileConfigSource reads and writes the items of the config file.
type fileConfigSource struct {
	config *Config
}

func (f *fileConfigSource) Name() string {
	return "file"
}

func (f *fileConfigSource) Get(key string) (string, error) {
	c := f.config
	c.mu.Lock()
	defer c.mu.Unlock()

	var value string
	switch key {
	case KeyHistorySize:
		if c.HistorySize > 0 {
			value = strconv.Itoa(c.HistorySize)
		}
	case KeyLogLevel:
		value = c.LogLevel
	case KeyLogFile:
		value = c.LogFile
	case KeyPager:
		value = c.Pager
	case KeyOutputFormat:
		value = c.OutputFormat
	default:
		return "", errors.Wrapf(ErrConfigNotFound, "unknown key %q", key)
	}
	if value == "" {
		return "", ErrConfigNotFound
	}
	return value, nil
}

// Set updates key and saves the config file.
func (f *fileConfigSource) Set(key, value string) error {
	c := f.config
	c.mu.Lock()
	defer c.mu.Unlock()

	switch key {
	case KeyHistorySize:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return errors.Newf("invalid %s %q, positive number expected", key, value)
		}
		c.HistorySize = n
	case KeyLogLevel:
		c.LogLevel = value
	case KeyLogFile:
		c.LogFile = value
	case KeyPager:
		c.Pager = value
	case KeyOutputFormat:
		c.OutputFormat = value
	default:
		return errors.Newf("unknown key %q, expect one of %s", key, strings.Join(fileKeys, ", "))
	}
	return c.save()
}
