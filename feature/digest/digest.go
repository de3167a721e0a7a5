// Package digest computes a deterministic fingerprint over a folder's files.
//
// Every regular file is hashed with SHA3-256, the digests are ordered by a
// positional weight (the product of each hex digit value plus one), joined,
// salted, and hashed again. The weight ordering is part of the published
// fingerprint format and must not change.
package digest

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/crypto/sha3"
)

// Config holds configuration for the folder digest utility.
type Config struct {
	// Salt is appended to the joined digests before the final hash.
	Salt string `mapstructure:"salt" default:""`
}

type weighted struct {
	hex    string
	weight *big.Int
}

// Folder fingerprints every regular file directly inside path. Sub-folders
// are ignored. The result is stable across runs and file-listing order.
func Folder(path, salt string) (string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return "", fmt.Errorf("failed to read folder %s: %w", path, err)
	}

	var digests []weighted
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		sum, err := hashFile(filepath.Join(path, e.Name()))
		if err != nil {
			return "", err
		}
		digests = append(digests, weighted{hex: sum, weight: digitWeight(sum)})
	}

	sort.Slice(digests, func(i, j int) bool {
		return digests[i].weight.Cmp(digests[j].weight) < 0
	})

	var joined string
	for _, d := range digests {
		joined += d.hex
	}

	final := sha3.Sum256([]byte(joined + salt))
	return hex.EncodeToString(final[:]), nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := sha3.New256()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// digitWeight is the product of (digit value + 1) over the hex digest. The
// products overflow 64 bits for 64-digit hashes, hence big.Int.
func digitWeight(hexDigest string) *big.Int {
	product := big.NewInt(1)
	var digit big.Int
	for _, ch := range hexDigest {
		v, _ := hexDigitValue(ch)
		digit.SetInt64(int64(v) + 1)
		product.Mul(product, &digit)
	}
	return product
}

func hexDigitValue(ch rune) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10, true
	}
	return 0, false
}
