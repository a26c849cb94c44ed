// Package encoding seals small pieces of UI state into opaque tokens that
// round-trip through the browser, typically in hx-vals.
//
// Components are stateless: a counter or a tab strip rendered by the
// application keeps its state in a token carried by the next request. The
// token is either signed (readable, tamper-proof) or encrypted (opaque).
package encoding

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	// ErrInvalidFormat is returned for tokens that are not base64 or lack a signature.
	ErrInvalidFormat = errors.New("encoding: invalid token format")
	// ErrSignatureInvalid is returned when a signed token was modified or
	// signed with another key.
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
	// ErrDecryptFailed is returned when an encrypted token cannot be opened.
	ErrDecryptFailed = errors.New("encoding: decryption failed")
)

// sigSize is the truncated HMAC-SHA256 length, 128 bits.
const sigSize = 16

// Mode selects how a token protects its payload.
type Mode int

const (
	// Signed tokens are base64 msgpack followed by an HMAC.
	Signed Mode = iota
	// Encrypted tokens are AES-256-GCM sealed.
	Encrypted
)

// Codec seals values into tokens and opens them again. It is safe for
// concurrent use.
type Codec struct {
	key  []byte
	gcm  cipher.AEAD
	mode Mode
}

// NewCodec creates a codec. Keys shorter than 32 bytes are stretched with
// SHA-256.
func NewCodec(key []byte, mode Mode) (*Codec, error) {
	if len(key) == 0 {
		return nil, errors.New("encoding: empty key")
	}
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}
	block, err := aes.NewCipher(key[:32])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Codec{key: key, gcm: gcm, mode: mode}, nil
}

// Mode reports how the codec protects tokens.
func (c *Codec) Mode() Mode {
	return c.mode
}

// Seal serializes v with msgpack and protects it.
func (c *Codec) Seal(v any) (string, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding: marshal state: %w", err)
	}
	if c.mode == Encrypted {
		return c.encrypt(packed)
	}
	return c.sign(packed), nil
}

// Open verifies or decrypts token and decodes it into v, a pointer.
func (c *Codec) Open(token string, v any) error {
	var (
		packed []byte
		err    error
	)
	if c.mode == Encrypted {
		packed, err = c.decrypt(token)
	} else {
		packed, err = c.verify(token)
	}
	if err != nil {
		return err
	}
	if err := msgpack.Unmarshal(packed, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

func (c *Codec) mac(data []byte) []byte {
	m := hmac.New(sha256.New, c.key)
	m.Write(data)
	return m.Sum(nil)[:sigSize]
}

// sign produces "payload.signature".
func (c *Codec) sign(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data) + "." +
		base64.RawURLEncoding.EncodeToString(c.mac(data))
}

func (c *Codec) verify(token string) ([]byte, error) {
	payload, sig, ok := strings.Cut(token, ".")
	if !ok {
		return nil, ErrInvalidFormat
	}
	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return nil, ErrSignatureInvalid
	}
	if !hmac.Equal(got, c.mac(data)) {
		return nil, ErrSignatureInvalid
	}
	return data, nil
}

func (c *Codec) encrypt(data []byte) (string, error) {
	nonce := make([]byte, c.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(c.gcm.Seal(nonce, nonce, data, nil)), nil
}

func (c *Codec) decrypt(token string) ([]byte, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	n := c.gcm.NonceSize()
	if len(sealed) < n {
		return nil, ErrInvalidFormat
	}
	data, err := c.gcm.Open(nil, sealed[:n], sealed[n:], nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return data, nil
}
