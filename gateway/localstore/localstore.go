// Package localstore implements the persistence gateway over on-device
// files. It backs the local-only fallback mode: reads and writes are
// synchronous, and subscriptions deliver one initial snapshot instead of
// server pushes — callers re-read after each mutation.
package localstore

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/homebills/tracker/gateway/iface"
)

// Store is the shared file store. Each owner's collection is a single JSON
// document map at {root}/{owner}/{collection}.json.
type Store struct {
	mu   sync.Mutex
	fs   afero.Fs
	root string
}

func NewStore(fs afero.Fs, root string) *Store {
	return &Store{fs: fs, root: root}
}

// Gateway returns the owner-scoped gateway view over the store.
func (s *Store) Gateway(owner string) *Gateway {
	return &Gateway{store: s, owner: owner}
}

// Gateway implements iface.Gateway for a single owner identity.
type Gateway struct {
	store *Store
	owner string
}

type snapshot struct {
	id     string
	exists bool
	raw    json.RawMessage
}

func (s snapshot) ID() string {
	return s.id
}

func (s snapshot) Exists() bool {
	return s.exists
}

func (s snapshot) DataTo(v interface{}) error {
	if !s.exists {
		return iface.ErrNotFound
	}

	return codec.Unmarshal(s.raw, v)
}

func (g *Gateway) path(collection string) string {
	return filepath.Join(g.store.root, g.owner, collection+".json")
}

func (g *Gateway) readCollection(collection string) (map[string]json.RawMessage, error) {
	data, err := afero.ReadFile(g.store.fs, g.path(collection))
	if err != nil {
		// A collection that was never written to is empty, not broken.
		return map[string]json.RawMessage{}, nil
	}

	docs := map[string]json.RawMessage{}
	if err := codec.Unmarshal(data, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

func (g *Gateway) writeCollection(collection string, docs map[string]json.RawMessage) error {
	data, err := codec.Marshal(docs)
	if err != nil {
		return err
	}

	if err := g.store.fs.MkdirAll(filepath.Join(g.store.root, g.owner), 0o755); err != nil {
		return err
	}

	return afero.WriteFile(g.store.fs, g.path(collection), data, 0o644)
}

func (g *Gateway) Get(ctx context.Context, collection, key string) (iface.Snapshot, error) {
	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	docs, err := g.readCollection(collection)
	if err != nil {
		return nil, err
	}

	raw, ok := docs[key]
	if !ok {
		return nil, iface.ErrNotFound
	}

	return snapshot{id: key, exists: true, raw: raw}, nil
}

func (g *Gateway) List(ctx context.Context, collection string) ([]iface.Snapshot, error) {
	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	return g.list(collection)
}

func (g *Gateway) list(collection string) ([]iface.Snapshot, error) {
	docs, err := g.readCollection(collection)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(docs))
	for key := range docs {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	snaps := make([]iface.Snapshot, 0, len(keys))
	for _, key := range keys {
		snaps = append(snaps, snapshot{id: key, exists: true, raw: docs[key]})
	}

	return snaps, nil
}

// Subscribe delivers the current state once and then stays silent until
// Stop. There is no file watching; callers re-read after mutations.
func (g *Gateway) Subscribe(ctx context.Context, collection, key string) (*iface.Subscription, error) {
	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	var event iface.Event

	if key == "" {
		snaps, err := g.list(collection)
		if err != nil {
			return nil, err
		}

		event = iface.Event{Snapshots: snaps}
	} else {
		docs, err := g.readCollection(collection)
		if err != nil {
			return nil, err
		}

		raw, ok := docs[key]
		event = iface.Event{Snapshots: []iface.Snapshot{
			snapshot{id: key, exists: ok, raw: raw},
		}}
	}

	events := make(chan iface.Event, 1)
	events <- event

	done := make(chan struct{})

	go func() {
		<-done
		close(events)
	}()

	return iface.NewSubscription(events, func() { close(done) }), nil
}

func (g *Gateway) Set(ctx context.Context, collection, key string, data interface{}, merge bool) error {
	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	docs, err := g.readCollection(collection)
	if err != nil {
		return err
	}

	raw, err := codec.Marshal(data)
	if err != nil {
		return err
	}

	if existing, ok := docs[key]; ok && merge {
		raw, err = mergeFields(existing, raw)
		if err != nil {
			return err
		}
	}

	docs[key] = raw

	return g.writeCollection(collection, docs)
}

func (g *Gateway) Add(ctx context.Context, collection string, data interface{}) (string, error) {
	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	docs, err := g.readCollection(collection)
	if err != nil {
		return "", err
	}

	raw, err := codec.Marshal(data)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	docs[id] = raw

	if err := g.writeCollection(collection, docs); err != nil {
		return "", err
	}

	return id, nil
}

func (g *Gateway) Delete(ctx context.Context, collection, key string) error {
	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	docs, err := g.readCollection(collection)
	if err != nil {
		return err
	}

	if _, ok := docs[key]; !ok {
		return nil
	}

	delete(docs, key)

	return g.writeCollection(collection, docs)
}

// mergeFields overlays the top-level fields of update onto existing,
// matching Firestore's MergeAll at document depth.
func mergeFields(existing, update json.RawMessage) (json.RawMessage, error) {
	var base map[string]json.RawMessage
	if err := codec.Unmarshal(existing, &base); err != nil {
		return nil, err
	}

	var next map[string]json.RawMessage
	if err := codec.Unmarshal(update, &next); err != nil {
		return nil, err
	}

	for field, value := range next {
		base[field] = value
	}

	return codec.Marshal(base)
}
