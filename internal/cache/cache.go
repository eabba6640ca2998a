// Package cache memoizes translation runs keyed by the dump's content
// hash: an in-process LRU (github.com/hashicorp/golang-lru, the same
// package ProbeChain-go-probe's consensus snapshot cache uses) backed by
// a persistent cross-run store in SQLite (modernc.org/sqlite, the pure-Go
// driver the teacher's `sql` builtins already import).
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	_ "modernc.org/sqlite"
)

// HashContent returns the content-addressed cache key for a dump's text.
func HashContent(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Memory is the in-process LRU layer, consulted before the persistent
// store on every lookup.
type Memory struct {
	cache *lru.Cache
}

// NewMemory creates an in-memory LRU cache of the given capacity.
func NewMemory(size int) (*Memory, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("cache: new LRU: %w", err)
	}
	return &Memory{cache: c}, nil
}

func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.cache.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (m *Memory) Put(key, value string) {
	m.cache.Add(key, value)
}

// Persistent is the cross-run SQLite-backed cache store, keyed by dump
// content hash, holding the rendered Kotlin output.
type Persistent struct {
	db *sql.DB
}

// OpenPersistent opens (creating if absent) a SQLite database at path and
// ensures the cache table exists.
func OpenPersistent(path string) (*Persistent, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open sqlite: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS translation_cache (
			content_hash TEXT PRIMARY KEY,
			kotlin_text  TEXT NOT NULL,
			created_at   INTEGER NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: create table: %w", err)
	}
	return &Persistent{db: db}, nil
}

func (p *Persistent) Close() error { return p.db.Close() }

func (p *Persistent) Get(key string) (string, bool, error) {
	row := p.db.QueryRow(`SELECT kotlin_text FROM translation_cache WHERE content_hash = ?`, key)
	var text string
	switch err := row.Scan(&text); err {
	case nil:
		return text, true, nil
	case sql.ErrNoRows:
		return "", false, nil
	default:
		return "", false, err
	}
}

func (p *Persistent) Put(key, value string, createdAtUnix int64) error {
	_, err := p.db.Exec(
		`INSERT INTO translation_cache (content_hash, kotlin_text, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(content_hash) DO UPDATE SET kotlin_text = excluded.kotlin_text, created_at = excluded.created_at`,
		key, value, createdAtUnix,
	)
	return err
}

// Cache composes the memory and persistent layers: a lookup checks memory
// first, falls back to the persistent store (and backfills memory on hit),
// and a store writes through both.
type Cache struct {
	Memory     *Memory
	Persistent *Persistent // nil when running without a persistent store
}

func New(memory *Memory, persistent *Persistent) *Cache {
	return &Cache{Memory: memory, Persistent: persistent}
}

func (c *Cache) Lookup(key string) (string, bool, error) {
	if v, ok := c.Memory.Get(key); ok {
		return v, true, nil
	}
	if c.Persistent == nil {
		return "", false, nil
	}
	v, ok, err := c.Persistent.Get(key)
	if err != nil || !ok {
		return "", false, err
	}
	c.Memory.Put(key, v)
	return v, true, nil
}

func (c *Cache) Store(key, value string, createdAtUnix int64) error {
	c.Memory.Put(key, value)
	if c.Persistent == nil {
		return nil
	}
	return c.Persistent.Put(key, value, createdAtUnix)
}
