package config

import "time"

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenLength    = 16
	defaultRequestTimeout = 15 * time.Second
)

// applyDefaults fills zero-valued fields of the merged configuration with
// application defaults. Called once from the builder before validation.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenLength == 0 {
		cfg.App.TokenLength = defaultTokenLength
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenLength < 8 {
		return ErrInvalidAppConfigs
	}

	return nil
}
