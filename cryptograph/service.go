// Package cryptograph wires the Base58 codecs and the krypto primitives into
// a configured, shareable service.
package cryptograph

import (
	"fmt"
	"sync"

	"github.com/gobeaver/cryptograph/base58"
	"github.com/gobeaver/cryptograph/config"
	"github.com/gobeaver/cryptograph/krypto"
	"github.com/sirupsen/logrus"
)

// Global instance management
var (
	defaultService *Service
	defaultOnce    sync.Once
	defaultErr     error
)

// Builder provides a way to create services with custom prefixes
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global service using the builder's prefix
func (b *Builder) Init() error {
	cfg, err := GetConfig(config.LoadOptions{Prefix: b.prefix})
	if err != nil {
		return err
	}
	return Init(*cfg)
}

// New creates a new service using the builder's prefix
func (b *Builder) New() (*Service, error) {
	cfg, err := GetConfig(config.LoadOptions{Prefix: b.prefix})
	if err != nil {
		return nil, err
	}
	return New(*cfg)
}

// Service bundles the configured codecs and primitives. It is immutable
// after New and safe for concurrent use.
type Service struct {
	checksum      krypto.Algorithm
	codec         *base58.CheckCodec
	mac           *krypto.HMAC
	kdf           *krypto.PBKDF2
	kdfIterations int
	kdfKeyLength  int
	version       byte
	log           *logrus.Entry
}

// Init initializes the global instance with optional config
func Init(configs ...Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = &configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultService, defaultErr = New(*cfg)
	})

	return defaultErr
}

// New creates a new instance with given config
func New(cfg Config) (*Service, error) {
	checksum, err := krypto.ParseAlgorithm(cfg.ChecksumAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: checksum algorithm: %v", ErrInvalidConfig, err)
	}
	if checksum.Size() < base58.ChecksumLen {
		return nil, fmt.Errorf("%w: checksum digest %v is shorter than %d bytes", ErrInvalidConfig, checksum, base58.ChecksumLen)
	}

	macAlg, err := krypto.ParseAlgorithm(cfg.HMACAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: hmac algorithm: %v", ErrInvalidConfig, err)
	}
	mac, err := krypto.NewHMAC(macAlg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	kdfAlg, err := krypto.ParseAlgorithm(cfg.KDFAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: kdf algorithm: %v", ErrInvalidConfig, err)
	}
	kdf, err := krypto.NewPBKDF2(kdfAlg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	s := &Service{
		checksum:      checksum,
		codec:         base58.NewCheckCodec(checksum),
		mac:           mac,
		kdf:           kdf,
		kdfIterations: cfg.KDFIterations,
		kdfKeyLength:  cfg.KDFKeyLength,
		version:       byte(cfg.AddressVersion),
		log:           logger,
	}

	s.log.WithFields(logrus.Fields{
		"checksum_algorithm": checksum.String(),
		"hmac_algorithm":     macAlg.String(),
		"kdf_algorithm":      kdfAlg.String(),
		"kdf_iterations":     cfg.KDFIterations,
		"address_version":    cfg.AddressVersion,
	}).Debug("cryptograph service created")

	return s, nil
}

// validateConfig checks the numeric settings
func validateConfig(cfg Config) error {
	if cfg.KDFIterations < 1 {
		return fmt.Errorf("kdf iterations must be positive")
	}
	if cfg.KDFKeyLength < 1 {
		return fmt.Errorf("kdf key length must be positive")
	}
	if cfg.AddressVersion < 0 || cfg.AddressVersion > 255 {
		return fmt.Errorf("address version %d does not fit in a byte", cfg.AddressVersion)
	}
	return nil
}

// Reset clears the global instance (for testing)
func Reset() {
	defaultService = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}

// Cryptograph returns the global service instance, initializing it from
// the environment on first use. It returns nil if that initialization fails;
// call Init to see the error.
func Cryptograph() *Service {
	if defaultService == nil {
		Init() // Initialize with defaults if needed
	}
	return defaultService
}

// ChecksumAlgorithm returns the digest used for Base58Check.
func (s *Service) ChecksumAlgorithm() krypto.Algorithm {
	return s.checksum
}

// Codec returns the configured Base58Check codec.
func (s *Service) Codec() *base58.CheckCodec {
	return s.codec
}

// Hash returns the checksum-algorithm digest of data.
func (s *Service) Hash(data []byte) []byte {
	return s.checksum.Hash(data)
}

// HashHex returns the checksum-algorithm digest of message as lower-case hex.
func (s *Service) HashHex(message string) string {
	return krypto.ToHexadecimal(s.Hash([]byte(message)))
}

// HMAC returns the tag for data under key.
func (s *Service) HMAC(key, data []byte) []byte {
	return s.mac.MAC(key, data)
}

// VerifyHMAC reports in constant time whether tag authenticates data.
func (s *Service) VerifyHMAC(key, data, tag []byte) bool {
	return s.mac.Verify(key, data, tag)
}

// DeriveKey runs PBKDF2 with the configured PRF, iteration count and key length.
func (s *Service) DeriveKey(password, salt []byte) ([]byte, error) {
	return s.kdf.DeriveKey(password, salt, s.kdfIterations, s.kdfKeyLength)
}

// Encode returns the plain Base58 text of b.
func (s *Service) Encode(b []byte) string {
	return base58.Encode(b)
}

// Decode reverses Encode.
func (s *Service) Decode(text string) ([]byte, error) {
	b, err := base58.Decode(text)
	if err != nil {
		s.logDecodeFailure("decode", text, err)
		return nil, err
	}
	return b, nil
}

// CheckEncode returns payload in Base58Check form.
func (s *Service) CheckEncode(payload []byte) string {
	return s.codec.Encode(payload)
}

// CheckDecode reverses CheckEncode.
func (s *Service) CheckDecode(text string) ([]byte, error) {
	b, err := s.codec.Decode(text)
	if err != nil {
		s.logDecodeFailure("check_decode", text, err)
		return nil, err
	}
	return b, nil
}

// EncodeAddress returns payload in Base58Check form behind the configured
// version byte.
func (s *Service) EncodeAddress(payload []byte) string {
	return s.codec.EncodeVersion(s.version, payload)
}

// DecodeAddress reverses EncodeAddress. An address carrying any other
// version byte fails with ErrVersionMismatch.
func (s *Service) DecodeAddress(text string) ([]byte, error) {
	version, payload, err := s.codec.DecodeVersion(text)
	if err != nil {
		s.logDecodeFailure("decode_address", text, err)
		return nil, err
	}
	if version != s.version {
		err = fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, version, s.version)
		s.logDecodeFailure("decode_address", text, err)
		return nil, err
	}
	return payload, nil
}

// NewID returns a random Base58 identifier.
func (s *Service) NewID() (string, error) {
	return krypto.GenerateID()
}
