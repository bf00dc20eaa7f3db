package configs

// GetGlobalOutputFormat resolves the global output format name from:
// 1. Environment variable PILOT_OUTPUT_FORMAT (highest priority)
// 2. Config file OutputFormat setting
// 3. Default to empty string (caller should use default format)
func (c *Config) GetGlobalOutputFormat() string {
	if c == nil {
		return ""
	}
	value, err := c.GetConfig(KeyOutputFormat)
	if err != nil {
		// caller will use default
		return ""
	}
	return value
}
