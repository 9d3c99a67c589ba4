// Package tombstone derives the opaque values written over unique
// columns of soft-deleted records, freeing the originals for reuse.
package tombstone

import (
	"encoding/base32"
	"encoding/binary"
	"errors"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// DefaultLength is the tombstone length used for user records.
const DefaultLength = 11

// DeletedEmailDomain is the reserved domain used for tombstoned emails.
const DeletedEmailDomain = "deleted.invalid"

var (
	ErrEmptyKey   = errors.New("tombstone key must not be empty")
	ErrKeyTooLong = errors.New("tombstone key must be at most 64 bytes")
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Generator produces deterministic per-id tombstone values.
type Generator struct {
	key    []byte
	length int
}

// New creates a generator keyed with key.
func New(key []byte) (*Generator, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if len(key) > blake2b.Size {
		return nil, ErrKeyTooLong
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &Generator{key: k, length: DefaultLength}, nil
}

// WithLength returns a copy of g whose ForID produces values of length n.
func (g *Generator) WithLength(n int) *Generator {
	c := *g
	if n > 0 {
		c.length = n
	}
	return &c
}

// ForID returns the tombstone for id at the generator's configured length.
func (g *Generator) ForID(id uint) string {
	return g.Generate(id, g.length)
}

// Generate returns a lowercase base32 value of at most length characters
// derived from id. Equal ids always yield equal values; distinct ids
// collide only with negligible probability.
func (g *Generator) Generate(id uint, length int) string {
	if length <= 0 {
		length = DefaultLength
	}

	h, err := blake2b.New512(g.key)
	if err != nil {
		// key length is checked in New
		panic(err)
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	h.Write(buf[:])

	encoded := strings.ToLower(encoding.EncodeToString(h.Sum(nil)))
	if length < len(encoded) {
		encoded = encoded[:length]
	}
	return encoded
}

// Email returns the email written over a deleted record's email.
func Email(tomb string) string {
	return tomb + "@" + DeletedEmailDomain
}

// Phone returns the value written over a deleted record's phone number.
func Phone(tomb string) string {
	return tomb
}

// TaxID returns the value written over a deleted record's CPF/CNPJ.
func TaxID(tomb string) string {
	return tomb
}
