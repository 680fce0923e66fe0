package main

import (
	"github.com/gobeaver/cryptograph/krypto"
	"github.com/spf13/cobra"
)

func newEncodeCommand(a *app) *cobra.Command {
	var asHex bool

	cmd := &cobra.Command{
		Use:     "encode [data]",
		Short:   "Encode data as Base58",
		Example: "cryptograph encode 'hello world'\ncryptograph encode --hex 0000287fb4cd",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, asHex)
			if err != nil {
				return err
			}
			writeLine(cmd, a.service.Encode(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asHex, "hex", false, "treat input as hexadecimal bytes")

	return cmd
}

func newDecodeCommand(a *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "decode [text]",
		Short: "Decode Base58 text and print the bytes as hex",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, false)
			if err != nil {
				return err
			}
			data, err := a.service.Decode(string(text))
			if err != nil {
				return err
			}
			return writeBytes(cmd, data, raw)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "write the decoded bytes unchanged")

	return cmd
}

func newCheckEncodeCommand(a *app) *cobra.Command {
	var asHex, address bool

	cmd := &cobra.Command{
		Use:   "check-encode [data]",
		Short: "Encode data as Base58Check",
		Long: `Encode data as Base58Check: the payload followed by the first four bytes
of its double digest. With --address the configured version byte is
prepended first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, asHex)
			if err != nil {
				return err
			}
			if address {
				writeLine(cmd, a.service.EncodeAddress(data))
			} else {
				writeLine(cmd, a.service.CheckEncode(data))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asHex, "hex", false, "treat input as hexadecimal bytes")
	cmd.Flags().BoolVar(&address, "address", false, "prefix the configured version byte")

	return cmd
}

func newCheckDecodeCommand(a *app) *cobra.Command {
	var raw, address bool

	cmd := &cobra.Command{
		Use:   "check-decode [text]",
		Short: "Verify and decode Base58Check text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, false)
			if err != nil {
				return err
			}

			var data []byte
			if address {
				data, err = a.service.DecodeAddress(string(text))
			} else {
				data, err = a.service.CheckDecode(string(text))
			}
			if err != nil {
				return err
			}
			return writeBytes(cmd, data, raw)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "write the decoded payload unchanged")
	cmd.Flags().BoolVar(&address, "address", false, "require and strip the configured version byte")

	return cmd
}

func writeBytes(cmd *cobra.Command, data []byte, raw bool) error {
	if raw {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	writeLine(cmd, krypto.ToHexadecimal(data))
	return nil
}
