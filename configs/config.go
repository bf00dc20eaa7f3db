package configs

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = `pilot.yaml`
	// DefaultConfigPath is the config folder used when none is provided.
	DefaultConfigPath = `~/.pilot`
	// DefaultHistorySize is the number of requests kept in history.
	DefaultHistorySize = 100
	defaultLogLevel    = "info"
	defaultLogFile     = "pilot_debug.log"
)

var (
	errConfigPathNotExist = errors.New("config path not exist")
	errConfigPathIsFile   = errors.New("config path is file")
	// ErrConfigNotFound is returned when a config key has no value.
	ErrConfigNotFound = errors.New("config not found")
	// ErrUnknownConfigSource is returned for config sources other than env and file.
	ErrUnknownConfigSource = errors.New("unknown config source")
)

// Config stores pilot config items.
type Config struct {
	// pilot configuration folder path
	// default ~/.pilot
	ConfigPath string `yaml:"-"`
	// HistorySize is the number of requests kept in history, default 100
	HistorySize int `yaml:"HistorySize"`
	// LogLevel is the zap level of the debug log
	LogLevel string `yaml:"LogLevel"`
	// LogFile is the debug log path, relative ones are under ConfigPath
	LogFile string `yaml:"LogFile"`
	// Pager pipes prompt output through a pager when set, $PAGER otherwise
	Pager string `yaml:"Pager"`
	// OutputFormat is the default format of printed tables
	OutputFormat string `yaml:"OutputFormat"`

	mu      sync.Mutex
	sources map[string]ConfigSource
}

func (c *Config) load() error {
	err := c.checkConfigPath()
	if err != nil {
		return err
	}

	bs, err := os.ReadFile(c.getConfigPath())
	if err != nil {
		return err
	}

	return yaml.Unmarshal(bs, c)
}

func (c *Config) getConfigPath() string {
	return path.Join(c.ConfigPath, configFileName)
}

// checkConfigPath exists and is a directory.
func (c *Config) checkConfigPath() error {
	info, err := os.Stat(c.ConfigPath)
	if err != nil {
		// not exist, return specified type to handle
		if os.IsNotExist(err) {
			return errConfigPathNotExist
		}
		return err
	}
	if !info.IsDir() {
		return errors.Wrapf(errConfigPathIsFile, "%s(%s)", c.ConfigPath, configFileName)
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.HistorySize <= 0 {
		c.HistorySize = DefaultHistorySize
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.LogFile == "" {
		c.LogFile = defaultLogFile
	}
}

func (c *Config) createDefault() error {
	err := os.MkdirAll(c.ConfigPath, os.ModePerm)
	if err != nil {
		return err
	}

	c.setDefaults()
	return c.save()
}

// save writes the file backed items to the config file.
func (c *Config) save() error {
	bs, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	return os.WriteFile(c.getConfigPath(), bs, 0o644)
}

// NewConfig loads the config from configPath, creating a default one when
// the folder does not exist yet. A leading `~` is expanded.
func NewConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	expanded, err := homedir.Expand(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to expand config path %s", configPath)
	}

	config := &Config{
		ConfigPath: expanded,
	}
	config.sources = map[string]ConfigSource{
		"env":  &envConfigSource{},
		"file": &fileConfigSource{config: config},
	}

	err = config.load()
	// config path not exist, may first time to run
	if errors.Is(err, errConfigPathNotExist) {
		return config, config.createDefault()
	}
	config.setDefaults()

	return config, err
}

// SetConfig sets key to value in the named source, env or file.
func (c *Config) SetConfig(source, key, value string) error {
	s, ok := c.sources[source]
	if !ok {
		return errors.Wrapf(ErrUnknownConfigSource, "%q", source)
	}
	return s.Set(key, value)
}

// GetConfig returns key from the environment first, then the config file.
func (c *Config) GetConfig(key string) (string, error) {
	for _, name := range []string{"env", "file"} {
		s, ok := c.sources[name]
		if !ok {
			continue
		}
		value, err := s.Get(key)
		if errors.Is(err, ErrConfigNotFound) {
			continue
		}
		return value, err
	}
	return "", errors.Wrapf(ErrConfigNotFound, "%q", key)
}

// Items returns all file backed keys with their effective values.
func (c *Config) Items() [][2]string {
	result := make([][2]string, 0, len(fileKeys))
	for _, key := range fileKeys {
		value, err := c.GetConfig(key)
		if err != nil {
			value = ""
		}
		result = append(result, [2]string{key, value})
	}
	return result
}

// GetHistorySize resolves the history size, PILOT_HISTORY_SIZE overrides
// the config file.
func (c *Config) GetHistorySize() int {
	if c == nil {
		return DefaultHistorySize
	}
	value, err := c.GetConfig(KeyHistorySize)
	if err != nil {
		return DefaultHistorySize
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return DefaultHistorySize
	}
	return n
}

// GetLogLevel resolves the log level, PILOT_LOG_LEVEL overrides the config
// file.
func (c *Config) GetLogLevel() string {
	if c == nil {
		return defaultLogLevel
	}
	value, err := c.GetConfig(KeyLogLevel)
	if err != nil || value == "" {
		return defaultLogLevel
	}
	return value
}

// GetLogFile returns the debug log path.
func (c *Config) GetLogFile() string {
	if c == nil {
		return defaultLogFile
	}
	value, err := c.GetConfig(KeyLogFile)
	if err != nil || value == "" {
		value = defaultLogFile
	}
	if path.IsAbs(value) {
		return value
	}
	return path.Join(c.ConfigPath, value)
}

// GetPager returns the pager command, empty when output is not paged.
func (c *Config) GetPager() string {
	if c != nil {
		if value, err := c.GetConfig(KeyPager); err == nil && value != "" {
			return value
		}
	}
	return os.Getenv("PAGER")
}

func (c *Config) String() string {
	return fmt.Sprintf("Config(%s)", c.getConfigPath())
}
