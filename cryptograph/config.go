package cryptograph

import (
	"github.com/gobeaver/cryptograph/config"
)

// Config defines cryptograph configuration
type Config struct {
	// ChecksumAlgorithm is the digest applied twice for Base58Check checksums
	ChecksumAlgorithm string `env:"CHECKSUM_ALGORITHM,default:sha256"`

	// HMACAlgorithm is the hash under HMAC
	HMACAlgorithm string `env:"HMAC_ALGORITHM,default:sha256"`

	// Key derivation (PBKDF2)
	KDFAlgorithm  string `env:"KDF_ALGORITHM,default:sha256"`
	KDFIterations int    `env:"KDF_ITERATIONS,default:10000"`
	KDFKeyLength  int    `env:"KDF_KEY_LENGTH,default:32"`

	// AddressVersion is the version byte for EncodeAddress / DecodeAddress
	AddressVersion int `env:"ADDRESS_VERSION,default:0"`

	// Logging
	LogLevel string `env:"LOG_LEVEL,default:info"`
	Debug    bool   `env:"DEBUG,default:false"`
}

// DefaultConfig returns a Config with all default values applied.
// Use this when creating configs programmatically instead of from environment variables.
func DefaultConfig() Config {
	return Config{
		ChecksumAlgorithm: "sha256",
		HMACAlgorithm:     "sha256",
		KDFAlgorithm:      "sha256",
		KDFIterations:     10000,
		KDFKeyLength:      32,
		AddressVersion:    0,
		LogLevel:          "info",
		Debug:             false,
	}
}

// GetConfig returns config loaded from environment
func GetConfig(opts ...config.LoadOptions) (*Config, error) {
	cfg := &Config{}
	// Apply default prefix if not specified
	if len(opts) == 0 {
		opts = append(opts, config.LoadOptions{Prefix: "BEAVER_CRYPTOGRAPH_"})
	}
	if err := config.Load(cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}
