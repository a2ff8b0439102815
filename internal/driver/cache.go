package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"ember/internal/lexer"
	"ember/internal/token"
)

// Current schema version - increment when CachePayload or token.Token changes.
const tokenCacheSchemaVersion uint16 = 2

// TokenCache хранит результаты токенизации на диске по SHA-256 содержимого.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is the on-disk record for one file content.
// A failed tokenization is cached too: ErrKind is non-zero then.
type CachePayload struct {
	Schema    uint16        `msgpack:"v"`
	Tokens    []token.Token `msgpack:"t"`
	ErrKind   uint8         `msgpack:"ek,omitempty"`
	ErrOffset uint32        `msgpack:"eo,omitempty"`
	ErrStart  uint32        `msgpack:"es,omitempty"`
}

// DefaultCacheDir returns $XDG_CACHE_HOME/<app> or ~/.cache/<app>.
func DefaultCacheDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// OpenTokenCache initializes a cache rooted at dir; an empty dir selects
// DefaultCacheDir("ember").
func OpenTokenCache(dir string) (*TokenCache, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultCacheDir("ember"); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *TokenCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *TokenCache) pathFor(key [32]byte) string {
	// Отдельный подкаталог "tokens", чтобы clean не трогал чужое.
	return filepath.Join(c.dir, "tokens", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a result to the cache.
func (c *TokenCache) Put(key [32]byte, toks []token.Token, lexErr error) (err error) {
	if c == nil {
		return nil
	}
	payload := CachePayload{Schema: tokenCacheSchemaVersion, Tokens: toks}
	var le *lexer.Error
	if errors.As(lexErr, &le) {
		payload.Tokens = nil
		payload.ErrKind = uint8(le.Kind)
		payload.ErrOffset = le.Offset
		payload.ErrStart = le.Start
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после успешного Rename временного файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a cached payload. ok is false on a miss or a schema mismatch.
func (c *TokenCache) Get(key [32]byte) (*CachePayload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	// #nosec G304 -- path is derived from a hex digest inside the cache dir
	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var payload CachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != tokenCacheSchemaVersion {
		return nil, false, nil
	}
	return &payload, true, nil
}

// Result restores what Tokenize returned when the payload was stored.
func (p *CachePayload) Result() ([]token.Token, error) {
	if p.ErrKind != 0 {
		return nil, &lexer.Error{Kind: lexer.ErrorKind(p.ErrKind), Offset: p.ErrOffset, Start: p.ErrStart}
	}
	if p.Tokens == nil {
		return []token.Token{}, nil
	}
	return p.Tokens, nil
}

// DropAll removes every cached entry.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "tokens"))
}
