package driven

// ConfigStore provides access to user configuration.
// Keys use dot notation for nested values (e.g. "storage.sqlite_path").
type ConfigStore interface {
	// Get retrieves a raw configuration value.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" if unset.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 if unset.
	GetInt(key string) int

	// GetBool retrieves a boolean value, or false if unset.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice value, or nil if unset.
	GetStringSlice(key string) []string

	// Set stores a value and persists it.
	Set(key string, value any) error

	// Path returns the backing file path, for display.
	Path() string
}
