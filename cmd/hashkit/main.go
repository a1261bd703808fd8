// Command hashkit computes message digests and HMACs of files or
// standard input, in the md5sum output format.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cadmean-labs/hashkit/hash"
)

var (
	hmacKey    string
	hmacKeyHex string
)

var rootCmd = &cobra.Command{
	Use:           "hashkit",
	Short:         "Streaming message digests and keyed MACs",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supported hashing algorithms",
	Run: func(command *cobra.Command, args []string) {
		fmt.Println("Supported algorithms:")
		for _, name := range hash.SupportedNames() {
			fmt.Printf("  * %s\n", name)
		}
	},
}

var sumCmd = &cobra.Command{
	Use:   "sum <algorithm> [file...]",
	Short: "Compute the digest of files or standard input",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(command *cobra.Command, args []string) error {
		newHasher := func() (hash.Hasher, error) {
			return hash.NewHasherByName(args[0])
		}
		return sumFiles(newHasher, args[1:])
	},
}

var hmacCmd = &cobra.Command{
	Use:   "hmac <algorithm> [file...]",
	Short: "Compute the HMAC of files or standard input",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(command *cobra.Command, args []string) error {
		key, err := resolveKey()
		if err != nil {
			return err
		}
		newHasher := func() (hash.Hasher, error) {
			inner, err := hash.NewHasherByName(args[0])
			if err != nil {
				return nil, err
			}
			return hash.NewHMAC(inner.Algorithm(), key)
		}
		return sumFiles(newHasher, args[1:])
	},
}

func resolveKey() ([]byte, error) {
	switch {
	case hmacKey != "" && hmacKeyHex != "":
		return nil, errors.New("--key and --key-hex are mutually exclusive")
	case hmacKeyHex != "":
		key, err := hex.DecodeString(hmacKeyHex)
		return key, errors.Wrap(err, "decoding --key-hex")
	default:
		return []byte(hmacKey), nil
	}
}

// sumFiles prints one "<hex digest>  <name>" line per input.
func sumFiles(newHasher func() (hash.Hasher, error), files []string) error {
	if len(files) == 0 {
		return sumOne(newHasher, os.Stdin, "-")
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrapf(err, "opening %s", name)
		}
		err = sumOne(newHasher, f, name)
		_ = f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func sumOne(newHasher func() (hash.Hasher, error), r io.Reader, name string) error {
	h, err := newHasher()
	if err != nil {
		return err
	}
	if _, err := io.Copy(h, r); err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	fmt.Printf("%s  %s\n", h.SumHash().Hex(), name)
	return nil
}

func init() {
	hmacCmd.Flags().StringVar(&hmacKey, "key", "", "HMAC key as a literal string")
	hmacCmd.Flags().StringVar(&hmacKeyHex, "key-hex", "", "HMAC key as hex bytes")
	rootCmd.AddCommand(listCmd, sumCmd, hmacCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
