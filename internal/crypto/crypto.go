// Package crypto encrypts data at rest.
//
// Twitch OAuth tokens stored in PostgreSQL are sealed with AES-256-GCM.
// NoopService is a plaintext passthrough for development and tests.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

type Service interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// NoopService passes values through unchanged.
type NoopService struct{}

func (NoopService) Encrypt(plaintext string) (string, error)  { return plaintext, nil }
func (NoopService) Decrypt(ciphertext string) (string, error) { return ciphertext, nil }

type AesGcmService struct {
	gcm cipher.AEAD
}

// NewAesGcmService builds an AES-256-GCM service from a hex-encoded
// 32-byte key.
func NewAesGcmService(hexKey string) (*AesGcmService, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption key hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AesGcmService{gcm: gcm}, nil
}

func (c *AesGcmService) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, c.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Seal returns nonce || ciphertext || tag
	ciphertext := c.gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(ciphertext), nil
}

func (c *AesGcmService) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	buffer, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decode hex: %w", err)
	}

	nonceSize := c.gcm.NonceSize()
	if len(buffer) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, cipherBytes := buffer[:nonceSize], buffer[nonceSize:]
	plainBytes, err := c.gcm.Open(nil, nonce, cipherBytes, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	return string(plainBytes), nil
}
