// Package urlsigner signs URLs with an expiry and an optional payload.
// Signatures are HMAC tags written in Base58, so they need no escaping in
// query strings.
package urlsigner

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/gobeaver/cryptograph/base58"
	"github.com/gobeaver/cryptograph/config"
	"github.com/gobeaver/cryptograph/krypto"
)

// Global instance management
var (
	defaultInstance *Signer
	defaultOnce     sync.Once
	defaultErr      error
)

// Define standard errors for the package
var (
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrInvalidURL         = errors.New("invalid URL")
	ErrSignatureNotFound  = errors.New("signature not found")
	ErrExpirationNotFound = errors.New("expiration not found")
	ErrExpired            = errors.New("URL has expired")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrInvalidPayload     = errors.New("invalid payload")
)

// minSignatureSize rejects MD5, SHA-1 and RIPEMD-160 tags.
const minSignatureSize = 28

// Signer handles URL signing operations
type Signer struct {
	secretKey     []byte
	defaultExpiry time.Duration
	mac           *krypto.HMAC
	queryParams   SignatureParams
}

// SignatureParams customizes how signature parameters appear in URLs
type SignatureParams struct {
	Signature string // query parameter name for signature
	Expires   string // query parameter name for expiration
	Payload   string // query parameter name for additional payload
}

// SignerOptions configures the Signer behavior
type SignerOptions struct {
	SecretKey     string
	DefaultExpiry time.Duration
	Algorithm     string
	QueryParams   *SignatureParams
}

// DefaultSignatureParams returns standard query parameter names
func DefaultSignatureParams() SignatureParams {
	return SignatureParams{
		Signature: "sig",
		Expires:   "expires",
		Payload:   "payload",
	}
}

// GetConfig returns config loaded from environment
func GetConfig(opts ...config.LoadOptions) (*Config, error) {
	if len(opts) == 0 {
		opts = append(opts, config.LoadOptions{Prefix: "BEAVER_URLSIGNER_"})
	}
	cfg := &Config{}
	if err := config.Load(cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
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

		defaultInstance, defaultErr = New(*cfg)
	})

	return defaultErr
}

// New creates a new instance with given config
func New(cfg Config) (*Signer, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	mac, err := newMAC(cfg.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	params := DefaultSignatureParams()
	if cfg.SignatureParam != "" {
		params.Signature = cfg.SignatureParam
	}
	if cfg.ExpiresParam != "" {
		params.Expires = cfg.ExpiresParam
	}
	if cfg.PayloadParam != "" {
		params.Payload = cfg.PayloadParam
	}

	return &Signer{
		secretKey:     []byte(cfg.SecretKey),
		defaultExpiry: cfg.DefaultExpiry,
		mac:           mac,
		queryParams:   params,
	}, nil
}

// validateConfig checks configuration validity
func validateConfig(cfg Config) error {
	if cfg.SecretKey == "" {
		return fmt.Errorf("secret key required")
	}

	if cfg.DefaultExpiry <= 0 {
		return fmt.Errorf("default expiry must be positive")
	}

	_, err := newMAC(cfg.Algorithm)
	return err
}

func newMAC(algorithm string) (*krypto.HMAC, error) {
	alg, err := krypto.ParseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}
	if alg.Size() < minSignatureSize {
		return nil, fmt.Errorf("algorithm %v is too weak for URL signatures", alg)
	}
	return krypto.NewHMAC(alg)
}

// Reset clears the global instance (for testing)
func Reset() {
	defaultInstance = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}

// Service returns the global signer instance
func Service() *Signer {
	if defaultInstance == nil {
		Init() // Initialize with defaults if needed
	}
	return defaultInstance
}

// NewSigner creates a new URL signer with the given secret key and default options
func NewSigner(secretKey string) *Signer {
	return &Signer{
		secretKey:     []byte(secretKey),
		defaultExpiry: 30 * time.Minute,
		mac:           &krypto.HMAC{Algorithm: krypto.SHA256},
		queryParams:   DefaultSignatureParams(),
	}
}

// NewSignerWithOptions creates a new URL signer with custom options. Unset
// options keep the NewSigner defaults.
func NewSignerWithOptions(options SignerOptions) (*Signer, error) {
	signer := NewSigner(options.SecretKey)

	if options.DefaultExpiry > 0 {
		signer.defaultExpiry = options.DefaultExpiry
	}

	if options.Algorithm != "" {
		mac, err := newMAC(options.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		signer.mac = mac
	}

	if options.QueryParams != nil {
		if options.QueryParams.Signature != "" {
			signer.queryParams.Signature = options.QueryParams.Signature
		}
		if options.QueryParams.Expires != "" {
			signer.queryParams.Expires = options.QueryParams.Expires
		}
		if options.QueryParams.Payload != "" {
			signer.queryParams.Payload = options.QueryParams.Payload
		}
	}

	return signer, nil
}

// SignURL signs a URL with an expiration time and optional payload
func (s *Signer) SignURL(rawURL string, expiry time.Duration, payload string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	// Set default expiry if not provided
	if expiry <= 0 {
		expiry = s.defaultExpiry
	}

	expiresAt := time.Now().Add(expiry).Unix()

	q := parsedURL.Query()
	q.Set(s.queryParams.Expires, strconv.FormatInt(expiresAt, 10))
	if payload != "" {
		q.Set(s.queryParams.Payload, base58.Encode([]byte(payload)))
	}

	// Update URL with query params before generating signature
	parsedURL.RawQuery = q.Encode()

	signature := s.generateSignature(parsedURL.String(), expiresAt, payload)

	q.Set(s.queryParams.Signature, signature)
	parsedURL.RawQuery = q.Encode()

	return parsedURL.String(), nil
}

// SignURLWithDefaultExpiry signs a URL with the default expiration time
func (s *Signer) SignURLWithDefaultExpiry(rawURL string, payload string) (string, error) {
	return s.SignURL(rawURL, s.defaultExpiry, payload)
}

// VerifyURL checks if a signed URL is valid and not expired
func (s *Signer) VerifyURL(signedURL string) (bool, string, error) {
	parsedURL, err := url.Parse(signedURL)
	if err != nil {
		return false, "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	q := parsedURL.Query()

	signature := q.Get(s.queryParams.Signature)
	if signature == "" {
		return false, "", ErrSignatureNotFound
	}

	expires, err := s.expiresFrom(q)
	if err != nil {
		return false, "", err
	}

	if time.Now().Unix() > expires {
		return false, "", ErrExpired
	}

	payload, err := s.payloadFrom(q)
	if err != nil {
		return false, "", err
	}

	// Remove signature from URL for verification
	q.Del(s.queryParams.Signature)
	parsedURL.RawQuery = q.Encode()

	tag, err := base58.Decode(signature)
	if err != nil {
		return false, "", fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if !s.mac.Verify(s.secretKey, signingInput(parsedURL.String(), expires, payload), tag) {
		return false, "", ErrInvalidSignature
	}

	return true, payload, nil
}

// GetExpirationTime returns the expiration time from a signed URL
func (s *Signer) GetExpirationTime(signedURL string) (time.Time, error) {
	parsedURL, err := url.Parse(signedURL)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	expires, err := s.expiresFrom(parsedURL.Query())
	if err != nil {
		return time.Time{}, err
	}

	return time.Unix(expires, 0), nil
}

// generateSignature returns the Base58 HMAC tag for the URL, expiration and payload
func (s *Signer) generateSignature(urlString string, expires int64, payload string) string {
	return base58.Encode(s.mac.MAC(s.secretKey, signingInput(urlString, expires, payload)))
}

func signingInput(urlString string, expires int64, payload string) []byte {
	dataToSign := fmt.Sprintf("%s|%d", urlString, expires)
	if payload != "" {
		dataToSign = fmt.Sprintf("%s|%s", dataToSign, payload)
	}
	return []byte(dataToSign)
}

func (s *Signer) expiresFrom(q url.Values) (int64, error) {
	expiresStr := q.Get(s.queryParams.Expires)
	if expiresStr == "" {
		return 0, ErrExpirationNotFound
	}

	expires, err := strconv.ParseInt(expiresStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid expiration: %w", err)
	}
	return expires, nil
}

func (s *Signer) payloadFrom(q url.Values) (string, error) {
	encodedPayload := q.Get(s.queryParams.Payload)
	if encodedPayload == "" {
		return "", nil
	}

	payloadBytes, err := base58.Decode(encodedPayload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return string(payloadBytes), nil
}

// ExtractPayload extracts and returns the payload from a signed URL
func (s *Signer) ExtractPayload(signedURL string) (string, error) {
	parsedURL, err := url.Parse(signedURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	return s.payloadFrom(parsedURL.Query())
}

// IsExpired checks if a signed URL has expired
func (s *Signer) IsExpired(signedURL string) (bool, error) {
	expiresAt, err := s.GetExpirationTime(signedURL)
	if err != nil {
		return true, err
	}

	return time.Now().Unix() > expiresAt.Unix(), nil
}

// RemainingValidity returns the remaining validity time of a signed URL
func (s *Signer) RemainingValidity(signedURL string) (time.Duration, error) {
	expirationTime, err := s.GetExpirationTime(signedURL)
	if err != nil {
		return 0, err
	}

	remaining := time.Until(expirationTime)
	if remaining < 0 {
		return 0, nil // URL has already expired
	}

	return remaining, nil
}
