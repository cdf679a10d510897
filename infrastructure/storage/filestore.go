// Package storage implements the persistence collaborator with flat
// JSON files: one file per session and one per decision under a data
// directory.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Swamyakshitha/debate-referee/internal/domain"
	"github.com/Swamyakshitha/debate-referee/internal/ports"
)

// maxLoadConcurrency bounds parallel file reads during bulk listing.
const maxLoadConcurrency = 8

// FileStore persists sessions and decisions as JSON files. Writes are
// atomic (temp file plus rename) so a crash never leaves a truncated
// record. A mutex serializes writers; readers of distinct sessions can
// proceed concurrently through the OS.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

var _ ports.SessionStore = (*FileStore)(nil)

// NewFileStore creates a store rooted at dir, creating the directory
// when missing.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("storage directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, ports.NewStorageError("init", "", err)
	}
	return &FileStore{dir: dir}, nil
}

// GetSession loads a session by id. Unknown ids return an error
// wrapping ports.ErrSessionNotFound.
func (fs *FileStore) GetSession(ctx context.Context, id string) (*domain.DebateSession, error) {
	var session domain.DebateSession
	if err := fs.readJSON(fs.sessionPath(id), &session); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ports.NewStorageError("get_session", id, ports.ErrSessionNotFound)
		}
		return nil, ports.NewStorageError("get_session", id, err)
	}
	return &session, nil
}

// SaveSession persists a new or updated session.
func (fs *FileStore) SaveSession(ctx context.Context, session *domain.DebateSession) error {
	if session == nil || session.ID == "" {
		return ports.NewStorageError("save_session", "", errors.New("session must have an id"))
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.writeJSON(fs.sessionPath(session.ID), session); err != nil {
		return ports.NewStorageError("save_session", session.ID, err)
	}
	return nil
}

// SaveDecision persists the decision produced for a session.
func (fs *FileStore) SaveDecision(ctx context.Context, decision *domain.DebateDecision) error {
	if decision == nil || decision.SessionID == "" {
		return ports.NewStorageError("save_decision", "", errors.New("decision must reference a session"))
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.writeJSON(fs.decisionPath(decision.SessionID), decision); err != nil {
		return ports.NewStorageError("save_decision", decision.SessionID, err)
	}
	return nil
}

// GetDecision loads the stored decision for a session id. Missing
// decisions return an error wrapping ports.ErrDecisionNotFound.
func (fs *FileStore) GetDecision(ctx context.Context, sessionID string) (*domain.DebateDecision, error) {
	var decision domain.DebateDecision
	if err := fs.readJSON(fs.decisionPath(sessionID), &decision); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ports.NewStorageError("get_decision", sessionID, ports.ErrDecisionNotFound)
		}
		return nil, ports.NewStorageError("get_decision", sessionID, err)
	}
	return &decision, nil
}

// MarkProcessed stamps the session's processed timestamp and rewrites
// the session file.
func (fs *FileStore) MarkProcessed(ctx context.Context, sessionID string, at time.Time) error {
	session, err := fs.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	session.MarkProcessed(at)

	fs.mu.Lock()
	defer fs.mu.Unlock()
	if err := fs.writeJSON(fs.sessionPath(sessionID), session); err != nil {
		return ports.NewStorageError("mark_processed", sessionID, err)
	}
	return nil
}

// ListSessions loads every stored session, newest first. Files are read
// with bounded concurrency; a single unreadable file fails the listing
// rather than silently dropping a session.
func (fs *FileStore) ListSessions(ctx context.Context) ([]*domain.DebateSession, error) {
	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return nil, ports.NewStorageError("list_sessions", "", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".session.json") {
			continue
		}
		paths = append(paths, filepath.Join(fs.dir, entry.Name()))
	}

	sessions := make([]*domain.DebateSession, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxLoadConcurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var session domain.DebateSession
			if err := fs.readJSON(path, &session); err != nil {
				return fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
			}
			sessions[i] = &session
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, ports.NewStorageError("list_sessions", "", err)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

func (fs *FileStore) sessionPath(id string) string {
	return filepath.Join(fs.dir, id+".session.json")
}

func (fs *FileStore) decisionPath(sessionID string) string {
	return filepath.Join(fs.dir, sessionID+".decision.json")
}

// readJSON decodes one JSON file into v. Not-found errors pass through
// unwrapped so callers can map them to the store's sentinel errors.
func (fs *FileStore) readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("corrupt record: %w", err)
	}
	return nil
}

// writeJSON writes v atomically: marshal, write a temp file in the same
// directory, then rename over the target.
func (fs *FileStore) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
