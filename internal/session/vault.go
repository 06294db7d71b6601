package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/HardenedIot/console/internal/model"

	_ "modernc.org/sqlite"
)

// The vault keeps exactly two durable keys. Token and user snapshot are
// written and cleared together so they can never disagree on "logged in".
const (
	keyToken = "auth_token"
	keyUser  = "current_user"
)

// Vault is the durable credential store backing a session. It holds the
// opaque bearer token and the cached user snapshot in a local SQLite db,
// mirrored in memory for cheap header construction.
type Vault struct {
	db *sql.DB

	mu    sync.RWMutex
	token string
	user  *model.User
}

// OpenVault opens (creating if needed) the session database under dir.
func OpenVault(ctx context.Context, dir string) (*Vault, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(dir, "session.sqlite"))
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when a CLI and TUI run side by side.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS session (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}

	v := &Vault{db: db}
	if err := v.load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return v, nil
}

func (v *Vault) Close() error { return v.db.Close() }

func (v *Vault) load(ctx context.Context) error {
	token, err := v.get(ctx, keyToken)
	if err != nil {
		return err
	}
	rawUser, err := v.get(ctx, keyUser)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.token = token
	v.user = nil
	if rawUser != "" {
		var u model.User
		if err := json.Unmarshal([]byte(rawUser), &u); err == nil {
			v.user = &u
		}
	}
	return nil
}

func (v *Vault) get(ctx context.Context, k string) (string, error) {
	var val string
	err := v.db.QueryRowContext(ctx, `SELECT v FROM session WHERE k = ?`, k).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return val, err
}

// SetCredentials stores the token and user snapshot in one transaction.
func (v *Vault) SetCredentials(ctx context.Context, token string, user model.User) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}

	tx, err := v.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for k, val := range map[string]string{keyToken: token, keyUser: string(rawUser)} {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO session (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
			k, val); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.token = token
	u := user
	v.user = &u
	return nil
}

// Clear removes both keys together. It is idempotent.
func (v *Vault) Clear(ctx context.Context) error {
	if _, err := v.db.ExecContext(ctx, `DELETE FROM session WHERE k IN (?, ?)`, keyToken, keyUser); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.token = ""
	v.user = nil
	return nil
}

// Token returns the stored credential, empty when logged out.
func (v *Vault) Token() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.token
}

// User returns the cached (possibly stale) profile snapshot.
func (v *Vault) User() (model.User, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.user == nil {
		return model.User{}, false
	}
	return *v.user, true
}

// AuthHeaders is a pure function of the stored credential: the JSON content
// type always, a bearer authorization header only while logged in.
// It never fails.
func (v *Vault) AuthHeaders() map[string]string {
	h := map[string]string{"Content-Type": "application/json"}
	if t := v.Token(); t != "" {
		h["Authorization"] = "Bearer " + t
	}
	return h
}
