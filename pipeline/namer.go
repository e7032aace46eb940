package pipeline

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/google/uuid"

	"github.com/w4/shorty/errors"
)

const (
	// UploadPrefix is the key prefix for uploaded files.
	UploadPrefix = "u/"

	// ShortPrefix is the key prefix for redirect pages.
	ShortPrefix = "s/"

	// ShortTokenLength is the number of letters in a short link token.
	ShortTokenLength = 10
)

const (
	consonants = "bcdfghjklmnprstvz"
	vowels     = "aeiou"
)

// KeyNamer chooses the object key for an upload.
type KeyNamer interface {
	// Key returns the object key; ext has no leading dot and may be empty.
	Key(ext string) (string, error)
}

// UploadNamer names uploads u/<uuid>[.<ext>].
type UploadNamer struct {
	// NewID generates the identifier. Defaults to uuid.NewRandom.
	NewID func() (uuid.UUID, error)
}

// Key implements KeyNamer.
func (n UploadNamer) Key(ext string) (string, error) {
	newID := n.NewID
	if newID == nil {
		newID = uuid.NewRandom
	}

	id, err := newID()
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "failed to generate object id")
	}

	key := UploadPrefix + id.String()
	if ext != "" {
		key += "." + ext
	}
	return key, nil
}

// ShortNamer names redirect pages s/<token>, where token is a pronounceable
// run of alternating consonants and vowels. The extension is ignored.
type ShortNamer struct {
	// Rand is the entropy source. Defaults to crypto/rand.Reader.
	Rand io.Reader
}

// Key implements KeyNamer.
func (n ShortNamer) Key(string) (string, error) {
	token, err := n.Token()
	if err != nil {
		return "", err
	}
	return ShortPrefix + token, nil
}

// Token returns a fresh ShortTokenLength letter token.
func (n ShortNamer) Token() (string, error) {
	r := n.Rand
	if r == nil {
		r = rand.Reader
	}

	token := make([]byte, ShortTokenLength)
	for i := range token {
		set := consonants
		if i%2 == 1 {
			set = vowels
		}

		idx, err := rand.Int(r, big.NewInt(int64(len(set))))
		if err != nil {
			return "", errors.Wrap(err, errors.CodeInternal, "failed to generate short token")
		}
		token[i] = set[idx.Int64()]
	}

	return string(token), nil
}
