package driven

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}

// Well-known configuration keys.
const (
	// ConfigAPIKey is the Local News API token. The LOCAL_NEWS_API_KEY
	// environment variable takes precedence over this key.
	ConfigAPIKey = "api_key"

	// ConfigBaseURL overrides the Local News API base URL.
	ConfigBaseURL = "base_url"

	// ConfigDefaultPageSize is the default articles-per-page for searches.
	ConfigDefaultPageSize = "default_page_size"

	// ConfigMaxPages caps how many clustered pages one intelligent search
	// may fetch.
	ConfigMaxPages = "max_pages"
)
