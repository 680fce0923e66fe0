package config

import (
	"encoding"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// DefaultPrefix is prepended to every variable name unless LoadOptions says otherwise.
const DefaultPrefix = "BEAVER_"

// Standard errors for the config package
var (
	ErrInvalidTarget = errors.New("config target must be a non-nil pointer to a struct")
	ErrRequired      = errors.New("required environment variable not set")
)

// LoadOptions defines options for loading configuration from environment variables.
type LoadOptions struct {
	Prefix   string   // Prefix to prepend to environment variable names
	Debug    bool     // Log every resolved variable (secrets masked)
	EnvFiles []string // .env files to load; defaults to ".env"
}

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Load populates a struct from .env files and environment variables using reflection.
//
// Field tags select the variable and its behaviour:
//   - `env:"VAR_NAME"`: maps the field to PREFIX + VAR_NAME
//   - `env:"VAR_NAME,default:value"`: value used when the variable is unset or empty
//   - `env:"VAR_NAME,required"`: Load fails with ErrRequired when no value resolves
//   - `envDefault:"value"` and `envRequired:"true"`: the same, as separate tags
//   - `envSeparator:"|"`: element separator for []string fields (default ",")
//
// Without options the prefix is DefaultPrefix. Passing LoadOptions replaces
// it, so LoadOptions{} reads bare names. Variables already in the
// environment win over values from .env files, and missing .env files are
// ignored.
//
// Example:
//
//	type Config struct {
//	    Algorithm string        `env:"ALGORITHM,default:sha256"`
//	    Timeout   time.Duration `env:"TIMEOUT,default:30s"`
//	    Secret    string        `env:"SECRET,required"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.LoadOptions{Prefix: "MYAPP_"})
//	// Will look for MYAPP_ALGORITHM, MYAPP_TIMEOUT, MYAPP_SECRET
func Load(cfg interface{}, opts ...LoadOptions) error {
	options := LoadOptions{Prefix: DefaultPrefix}
	if len(opts) > 0 {
		options = opts[0]
	}

	rv := reflect.ValueOf(cfg)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}

	if err := loadEnvFiles(options.EnvFiles); err != nil {
		return err
	}

	v := rv.Elem()
	t := v.Type()
	debug := options.Debug || os.Getenv("BEAVER_CONFIG_DEBUG") == "true"

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		envTag := field.Tag.Get("env")
		if envTag == "" || !field.IsExported() {
			continue
		}

		ts := parseTag(field, envTag)
		fullEnvName := options.Prefix + ts.name
		value := os.Getenv(fullEnvName)
		if value == "" {
			value = ts.defaultValue
		}

		if debug {
			logrus.WithFields(logrus.Fields{
				"package": "config",
				"key":     fullEnvName,
				"value":   maskValue(fullEnvName, value),
			}).Info("resolved configuration value")
		}

		if value == "" {
			if ts.required {
				return fmt.Errorf("%w: %s", ErrRequired, fullEnvName)
			}
			continue
		}

		if err := setFieldValue(v.Field(i), value, ts.separator); err != nil {
			return fmt.Errorf("config %s: %w", fullEnvName, err)
		}
	}

	return nil
}

// loadEnvFiles loads each file on its own so a missing file does not hide
// the ones after it. Only missing files are skipped.
func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", file, err)
		}
	}
	return nil
}

type tagSpec struct {
	name         string
	defaultValue string
	required     bool
	separator    string
}

func parseTag(field reflect.StructField, envTag string) tagSpec {
	parts := strings.Split(envTag, ",")
	ts := tagSpec{name: parts[0], separator: ","}

	for _, part := range parts[1:] {
		switch {
		case strings.HasPrefix(part, "default:"):
			if ts.defaultValue == "" {
				ts.defaultValue = strings.TrimPrefix(part, "default:")
			}
		case part == "required":
			ts.required = true
		}
	}

	if def, ok := field.Tag.Lookup("envDefault"); ok && ts.defaultValue == "" {
		ts.defaultValue = def
	}
	if req, err := strconv.ParseBool(field.Tag.Get("envRequired")); err == nil && req {
		ts.required = true
	}
	if sep := field.Tag.Get("envSeparator"); sep != "" {
		ts.separator = sep
	}
	return ts
}

// maskValue hides values whose names suggest secret material.
func maskValue(name, value string) string {
	upper := strings.ToUpper(name)
	for _, marker := range []string{"SECRET", "PASSWORD", "TOKEN", "KEY"} {
		if strings.Contains(upper, marker) && value != "" {
			return "****"
		}
	}
	return value
}

// setFieldValue converts value to the field's type and stores it.
//
// Supported types:
//   - string
//   - int, int8, int16, int32, int64 and time.Duration ("1h30m", "45s")
//   - uint, uint8, uint16, uint32, uint64
//   - float32, float64
//   - bool ("true", "false", "1", "0", ...)
//   - []string, split on sep
//   - any type whose pointer implements encoding.TextUnmarshaler
//
// Other types are skipped silently.
func setFieldValue(field reflect.Value, value string, sep string) error {
	if field.CanAddr() && field.Addr().Type().Implements(textUnmarshalerType) {
		return field.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(value))
	}

	// Check for time.Duration first
	if field.Type() == durationType {
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(value, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return nil
		}
		parts := strings.Split(value, sep)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		field.Set(reflect.ValueOf(parts).Convert(field.Type()))
	default:
		// Skip unsupported field types silently
		return nil
	}
	return nil
}
