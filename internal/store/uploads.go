package store

import (
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"rota-reader/internal/logger"
)

// Uploads maps opaque session tokens to uploaded roster paths. Each
// upload gets its own token, so a later upload never redirects requests
// already holding one. Expired entries are dropped and their files
// removed by a janitor goroutine.
type Uploads struct {
	entries sync.Map // token -> *entry
	ttl     time.Duration
}

type entry struct {
	path      string
	createdAt time.Time
}

func NewUploads(ttl time.Duration) *Uploads {
	u := &Uploads{ttl: ttl}
	go func() {
		for range time.Tick(5 * time.Minute) {
			u.expire()
		}
	}()
	return u
}

// NewToken returns a fresh token for an upload about to be saved.
func NewToken() string {
	return uuid.NewString()
}

func (u *Uploads) Put(token, path string) {
	u.entries.Store(token, &entry{path: path, createdAt: time.Now()})
}

func (u *Uploads) Get(token string) (string, bool) {
	v, ok := u.entries.Load(token)
	if !ok {
		return "", false
	}
	return v.(*entry).path, true
}

func (u *Uploads) expire() {
	u.entries.Range(func(k, v any) bool {
		e := v.(*entry)
		if time.Since(e.createdAt) > u.ttl {
			u.entries.Delete(k)
			if err := os.Remove(e.path); err != nil && !os.IsNotExist(err) {
				logger.Warn("upload.expire: remove failed", "path", e.path, "err", err)
			} else {
				logger.Info("upload.expired", "token", k, "path", e.path)
			}
		}
		return true
	})
}
