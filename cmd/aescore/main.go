// Command aescore is a small demonstration CLI layered on top of the aes
// and blockcipher packages: not part of the cryptographic contract, just a
// convenient way to exercise it from a shell pipeline.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/oxcrypt/aescore"
	"github.com/oxcrypt/aescore/blockcipher"
)

func main() {
	mode := flag.String("mode", "ecb", "block mode: ecb or cbc")
	ivHex := flag.String("iv", "", "hex-encoded 16-byte IV (required for -mode cbc)")
	flag.Parse()

	keyStr := os.Getenv("AESCORE_KEY")
	if keyStr == "" {
		log.Fatal("AESCORE_KEY environment variable must hold the AES key")
	}
	key := []byte(keyStr)

	variant, err := variantForKeySize(len(key))
	if err != nil {
		log.Fatal(err)
	}

	encrypt, err := opForArg(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	var iv []byte
	if *mode == "cbc" {
		iv, err = hex.DecodeString(*ivHex)
		if err != nil || len(iv) != 16 {
			log.Fatal("-mode cbc requires a 16-byte hex-encoded -iv")
		}
	} else if *mode != "ecb" {
		log.Fatalf("invalid -mode %q (want ecb or cbc)", *mode)
	}

	buf, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal("error reading from stdin: ", err)
	}
	if len(buf)%16 != 0 {
		log.Fatalf("input must be a multiple of 16 bytes (got %d); pad it yourself first", len(buf))
	}

	ctx := context.Background()
	for off := 0; off < len(buf); off += blockcipher.MaxBufferSize {
		end := off + blockcipher.MaxBufferSize
		if end > len(buf) {
			end = len(buf)
		}
		chunk := buf[off:end]

		// CBC chains across the MaxBufferSize-sized chunks this loop feeds
		// the mode driver, the same way it chains across blocks within one
		// call: each chunk's IV is the last ciphertext block of the chunk
		// before it. Captured before decrypting, since decryption
		// overwrites the chunk's ciphertext with plaintext in place.
		var nextIV []byte
		if *mode == "cbc" && !encrypt {
			nextIV = append([]byte{}, chunk[len(chunk)-16:]...)
		}

		var err error
		switch {
		case *mode == "cbc" && encrypt:
			err = blockcipher.CBCEncrypt(ctx, variant, key, iv, chunk)
			iv = chunk[len(chunk)-16:]
		case *mode == "cbc" && !encrypt:
			err = blockcipher.CBCDecrypt(ctx, variant, key, iv, chunk)
			iv = nextIV
		case encrypt:
			err = blockcipher.ECBEncrypt(ctx, variant, key, chunk)
		default:
			err = blockcipher.ECBDecrypt(ctx, variant, key, chunk)
		}
		if err != nil {
			log.Fatal("cipher operation failed: ", err)
		}
	}

	if _, err := os.Stdout.Write(buf); err != nil {
		log.Fatal("failed to write to stdout: ", err)
	}
}

func opForArg(arg string) (encrypt bool, err error) {
	switch arg {
	case "encrypt":
		return true, nil
	case "decrypt":
		return false, nil
	default:
		return false, fmt.Errorf("invalid op %q (want encrypt or decrypt)", arg)
	}
}

func variantForKeySize(n int) (aes.Variant, error) {
	switch n {
	case 16:
		return aes.AES128, nil
	case 24:
		return aes.AES192, nil
	case 32:
		return aes.AES256, nil
	default:
		return 0, fmt.Errorf("AESCORE_KEY must be 16, 24, or 32 bytes, got %d", n)
	}
}
