package configs

// ConfigSource is where config items are read from and written to.
type ConfigSource interface {
	// Name is the source name accepted by `set config --source`.
	Name() string
	// Get returns ErrConfigNotFound when key has no value in the source.
	Get(key string) (string, error)
	Set(key, value string) error
}
