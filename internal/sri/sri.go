// Package sri parses and verifies W3C Subresource Integrity digests for the
// three standard algorithms: sha256, sha384 and sha512.
package sri

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"errors"
	"strings"
)

var (
	ErrInvalidFormat        = errors.New("invalid SRI format (expected 'algorithm-base64hash')")
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm (supported: sha256, sha384, sha512)")
	ErrInvalidBase64        = errors.New("invalid base64 encoding in hash")
	ErrInvalidHashLength    = errors.New("hash length doesn't match algorithm")
)

// hashSizes maps the recognized (case-sensitive) algorithm names to their
// digest sizes in bytes.
var hashSizes = map[string]int{
	"sha256": sha256.Size,
	"sha384": sha512.Size384,
	"sha512": sha512.Size,
}

// Hash is a parsed SRI digest: an algorithm tag plus the expected sum.
// Immutable once constructed by Parse.
type Hash struct {
	algo string
	sum  []byte
}

// Parse parses an SRI string like "sha384-oqVuAfXRKap7fdgc...".
// The input is split on the first '-'; the left side must be one of the
// three supported algorithm names in lowercase, the right side standard
// base64 of a correctly sized digest.
func Parse(s string) (Hash, error) {
	algo, b64, ok := strings.Cut(s, "-")
	if !ok {
		return Hash{}, ErrInvalidFormat
	}

	sum, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return Hash{}, ErrInvalidBase64
	}

	size, ok := hashSizes[algo]
	if !ok {
		return Hash{}, ErrUnsupportedAlgorithm
	}
	if len(sum) != size {
		return Hash{}, ErrInvalidHashLength
	}

	return Hash{algo: algo, sum: sum}, nil
}

// Verify recomputes the hash of content and compares it against the
// expected sum. Plain comparison is fine here: the content being checked
// is public, so timing is not a concern.
func (h Hash) Verify(content []byte) bool {
	var computed []byte
	switch h.algo {
	case "sha256":
		s := sha256.Sum256(content)
		computed = s[:]
	case "sha384":
		s := sha512.Sum384(content)
		computed = s[:]
	case "sha512":
		s := sha512.Sum512(content)
		computed = s[:]
	default:
		return false
	}
	return bytes.Equal(computed, h.sum)
}

// Algorithm returns the algorithm name ("sha256", "sha384" or "sha512").
func (h Hash) Algorithm() string { return h.algo }

// String renders the canonical "algorithm-base64" form.
func (h Hash) String() string {
	return h.algo + "-" + base64.StdEncoding.EncodeToString(h.sum)
}
