package driven

// ConfigStore provides persistent key-value configuration: the API base URL,
// the last-visited view, and tuning knobs. Keys use dot notation
// (e.g. "api.base_url", "ui.active_menu_item").
type ConfigStore interface {
	// Get retrieves a raw value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" if unset.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 if unset.
	GetInt(key string) int

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Delete removes a key and persists immediately.
	Delete(key string) error
}
