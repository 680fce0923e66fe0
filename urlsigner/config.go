package urlsigner

import (
	"time"
)

// Config defines the configuration for URL signer
type Config struct {
	// SecretKey is the HMAC secret key for signing URLs
	SecretKey string `env:"SECRET_KEY,required"`

	// DefaultExpiry is the default expiration duration for signed URLs
	DefaultExpiry time.Duration `env:"DEFAULT_EXPIRY,default:30m"`

	// Algorithm is the hash under HMAC; any krypto algorithm with a digest
	// of at least 224 bits (sha224, sha256, sha384, sha512, sha512/256, sha3-256, ...)
	Algorithm string `env:"ALGORITHM,default:sha256"`

	// SignatureParam is the query parameter name for signature
	SignatureParam string `env:"SIGNATURE_PARAM,default:sig"`

	// ExpiresParam is the query parameter name for expiration
	ExpiresParam string `env:"EXPIRES_PARAM,default:expires"`

	// PayloadParam is the query parameter name for payload
	PayloadParam string `env:"PAYLOAD_PARAM,default:payload"`
}
