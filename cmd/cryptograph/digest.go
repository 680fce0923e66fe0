package main

import (
	"errors"
	"strings"

	"github.com/gobeaver/cryptograph/base58"
	"github.com/gobeaver/cryptograph/krypto"
	"github.com/spf13/cobra"
)

func newHashCommand(a *app) *cobra.Command {
	var (
		algorithm string
		asHex     bool
		upper     bool
		double    bool
	)

	cmd := &cobra.Command{
		Use:   "hash [message]",
		Short: "Print the hex digest of a message",
		Long: `Print the hex digest of a message. Without --algorithm the configured
checksum algorithm is used. Supported: ` + algorithmNames() + `.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, asHex)
			if err != nil {
				return err
			}

			alg := a.service.ChecksumAlgorithm()
			if algorithm != "" {
				if alg, err = krypto.ParseAlgorithm(algorithm); err != nil {
					return err
				}
			}

			if double {
				out := krypto.ToHexadecimal(krypto.DoubleHash(alg, data))
				if upper {
					out = strings.ToUpper(out)
				}
				writeLine(cmd, out)
				return nil
			}

			out, err := krypto.HashHex(alg, string(data), upper)
			if err != nil {
				return err
			}
			writeLine(cmd, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "hash algorithm")
	cmd.Flags().BoolVar(&asHex, "hex", false, "treat input as hexadecimal bytes")
	cmd.Flags().BoolVar(&upper, "upper", false, "print upper-case hex")
	cmd.Flags().BoolVar(&double, "double", false, "hash twice, as Base58Check does")

	return cmd
}

func newHMACCommand(a *app) *cobra.Command {
	var (
		key       string
		algorithm string
		asBase58  bool
	)

	cmd := &cobra.Command{
		Use:   "hmac [message]",
		Short: "Print the HMAC of a message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, false)
			if err != nil {
				return err
			}

			var tag []byte
			if algorithm == "" {
				tag = a.service.HMAC([]byte(key), data)
			} else {
				alg, err := krypto.ParseAlgorithm(algorithm)
				if err != nil {
					return err
				}
				mac, err := krypto.NewHMAC(alg)
				if err != nil {
					return err
				}
				tag = mac.MAC([]byte(key), data)
			}

			writeLine(cmd, formatDigest(tag, asBase58))
			return nil
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "secret key")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "hash algorithm (default: configured HMAC algorithm)")
	cmd.Flags().BoolVar(&asBase58, "base58", false, "print the tag as Base58 instead of hex")

	return cmd
}

func newPBKDF2Command(a *app) *cobra.Command {
	var (
		salt     string
		asBase58 bool
	)

	cmd := &cobra.Command{
		Use:   "pbkdf2 [password]",
		Short: "Derive a key from a password with the configured PBKDF2 settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readInput(cmd, args, false)
			if err != nil {
				return err
			}
			if salt == "" {
				return errors.New("--salt is required")
			}

			key, err := a.service.DeriveKey(password, []byte(salt))
			if err != nil {
				return err
			}
			writeLine(cmd, formatDigest(key, asBase58))
			return nil
		},
	}
	cmd.Flags().StringVarP(&salt, "salt", "s", "", "salt")
	cmd.Flags().BoolVar(&asBase58, "base58", false, "print the key as Base58 instead of hex")

	return cmd
}

func newIDCommand(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "id",
		Short: "Print random Base58 identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for i := 0; i < count; i++ {
				id, err := a.service.NewID()
				if err != nil {
					return err
				}
				writeLine(cmd, id)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers")

	return cmd
}

func formatDigest(b []byte, asBase58 bool) string {
	if asBase58 {
		return base58.Encode(b)
	}
	return krypto.ToHexadecimal(b)
}

func algorithmNames() string {
	algs := krypto.Algorithms()
	names := make([]string, len(algs))
	for i, alg := range algs {
		names[i] = alg.String()
	}
	return strings.Join(names, ", ")
}
