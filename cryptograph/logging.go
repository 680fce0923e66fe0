package cryptograph

import (
	"github.com/sirupsen/logrus"
)

// newLogger builds the service logger. Debug forces the debug level.
func newLogger(cfg Config) (*logrus.Entry, error) {
	level := logrus.InfoLevel
	if cfg.LogLevel != "" {
		parsed, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	if cfg.Debug {
		level = logrus.DebugLevel
	}

	logger := logrus.New()
	logger.SetLevel(level)
	return logger.WithField("package", "cryptograph"), nil
}

// logDecodeFailure records a rejected input by length only; the text
// itself may be a secret.
func (s *Service) logDecodeFailure(operation, text string, err error) {
	s.log.WithFields(logrus.Fields{
		"operation":    operation,
		"input_length": len(text),
		"error":        err.Error(),
	}).Debug("decode rejected")
}
