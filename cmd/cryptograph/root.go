package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/gobeaver/cryptograph/config"
	"github.com/gobeaver/cryptograph/cryptograph"
	"github.com/spf13/cobra"
)

// Version is stamped at build time.
var Version = "0.1.0"

const defaultPrefix = "BEAVER_CRYPTOGRAPH_"

type app struct {
	prefix  string
	envFile string
	debug   bool
	service *cryptograph.Service
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "cryptograph",
		Short:         "Base58, Base58Check and hashing utilities",
		Version:       Version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVar(&a.prefix, "prefix", defaultPrefix, "environment variable prefix for service settings")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load settings from `FILE` in addition to .env")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log at debug level")

	root.AddCommand(
		newEncodeCommand(a),
		newDecodeCommand(a),
		newCheckEncodeCommand(a),
		newCheckDecodeCommand(a),
		newHashCommand(a),
		newHMACCommand(a),
		newPBKDF2Command(a),
		newIDCommand(a),
	)

	return root
}

func (a *app) init() error {
	opts := config.LoadOptions{Prefix: a.prefix}
	if a.envFile != "" {
		opts.EnvFiles = []string{".env", a.envFile}
	}

	cfg, err := cryptograph.GetConfig(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.debug {
		cfg.Debug = true
	}

	a.service, err = cryptograph.New(*cfg)
	return err
}

// readInput returns the first argument, or all of stdin when there is none.
// A single trailing newline on stdin is dropped. With asHex the text is
// decoded from hexadecimal.
func readInput(cmd *cobra.Command, args []string, asHex bool) ([]byte, error) {
	var in []byte
	if len(args) > 0 {
		in = []byte(args[0])
	} else {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		in = trimNewline(b)
	}

	if !asHex {
		return in, nil
	}
	out, err := hex.DecodeString(string(bytes.TrimSpace(in)))
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return out, nil
}

func trimNewline(b []byte) []byte {
	b = bytes.TrimSuffix(b, []byte("\n"))
	return bytes.TrimSuffix(b, []byte("\r"))
}

func writeLine(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
}
