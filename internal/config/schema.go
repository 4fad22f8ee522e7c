package config

// Config is the top-level shelfsync configuration.
type Config struct {
	API      APIConfig      `mapstructure:"api" yaml:"api"`
	Identity IdentityConfig `mapstructure:"identity" yaml:"identity"`
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`
}

// APIConfig holds the books API connection settings.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// IdentityConfig holds the identity provider settings.
type IdentityConfig struct {
	Issuer   string `mapstructure:"issuer" yaml:"issuer"`
	ClientID string `mapstructure:"client_id" yaml:"client_id"`
}

// DefaultsConfig holds default values for rendering and local state.
type DefaultsConfig struct {
	PlaceholderCover string `mapstructure:"placeholder_cover" yaml:"placeholder_cover"`
	StatePath        string `mapstructure:"state_path" yaml:"state_path"`
}

// Ready reports whether enough is configured to reach the backend.
func (c *Config) Ready() bool {
	return c.API.BaseURL != "" && c.Identity.Issuer != "" && c.Identity.ClientID != ""
}
