// Command cryptograph is a command line front end for the Base58 codecs and
// the hash, HMAC and PBKDF2 primitives.
//
//	cryptograph encode --hex 00010966776006953d5567439e5e39f86a0d273beed61967f6
//	cryptograph check-decode --address 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa
//	echo -n secret | cryptograph pbkdf2 --salt NaCl
//
// Service settings come from BEAVER_CRYPTOGRAPH_* environment variables or a
// .env file.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
