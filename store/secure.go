package store

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/servinow/servinow-go/utils"
)

// SecureStore persists entries in a single file sealed with
// XChaCha20-Poly1305. It is the secure-enclave analog for platforms
// without one: the file on disk is ciphertext, the 32-byte key comes
// from the caller (typically decoded from configuration).
type SecureStore struct {
	path string
	key  []byte
	mu   sync.Mutex
}

// NewSecureStore requires a key of exactly chacha20poly1305.KeySize bytes.
func NewSecureStore(path string, key []byte) (*SecureStore, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("secure store key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &SecureStore{path: path, key: key}, nil
}

func (s *SecureStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return "", err
	}
	value, ok := entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *SecureStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return err
	}
	entries[key] = value
	return s.save(entries)
}

func (s *SecureStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return err
	}
	delete(entries, key)
	return s.save(entries)
}

func (s *SecureStore) load() (map[string]string, error) {
	sealed, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, err
	}
	if len(sealed) < aead.NonceSize() {
		return nil, fmt.Errorf("store file truncated")
	}
	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("unseal store file: %w", err)
	}

	entries := map[string]string{}
	if err := utils.BytesToStruct(plaintext, &entries); err != nil {
		return nil, fmt.Errorf("decode store file: %w", err)
	}
	return entries, nil
}

func (s *SecureStore) save(entries map[string]string) error {
	plaintext, err := utils.StructToBytes(entries)
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}
	sealed := aead.Seal(nonce, nonce, plaintext, nil)

	if err := os.WriteFile(s.path, sealed, 0o600); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}
