// Package iface defines the persistence gateway contract shared by the
// remote (Firestore) and local (on-disk) document stores. All four logical
// collections behave identically in shape under either implementation so
// calculation and display logic stay mode-agnostic.
package iface

import (
	"context"
	"errors"
	"sync"
)

// Logical collections, scoped per owner identity at the storage layer.
const (
	CollectionTenants  = "tenants"
	CollectionBills    = "bills"
	CollectionMilk     = "milk"
	CollectionSettings = "settings"
)

// SettingsKey is the singleton settings document key.
const SettingsKey = "global"

var ErrNotFound = errors.New("document not found")

// Snapshot is a point-in-time view of a single document.
type Snapshot interface {
	ID() string
	Exists() bool
	DataTo(v interface{}) error
}

// Event carries the documents delivered on a subscription. Single-document
// subscriptions deliver exactly one snapshot per event.
type Event struct {
	Snapshots []Snapshot
}

// Subscription is a cancellable stream of snapshot events.
type Subscription struct {
	Events <-chan Event

	stop     func()
	stopOnce sync.Once
}

// NewSubscription wraps an event channel with its teardown function.
func NewSubscription(events <-chan Event, stop func()) *Subscription {
	return &Subscription{Events: events, stop: stop}
}

// Stop tears the subscription down unconditionally. Safe to call more
// than once; the events channel is closed by the producer.
func (s *Subscription) Stop() {
	s.stopOnce.Do(s.stop)
}

//go:generate mockery --name Gateway --output ../mocks
type Gateway interface {
	// Get returns the document stored under key, or ErrNotFound.
	Get(ctx context.Context, collection, key string) (Snapshot, error)

	// List returns every document in the collection.
	List(ctx context.Context, collection string) ([]Snapshot, error)

	// Subscribe streams snapshots for a single document, or for the whole
	// collection when key is empty.
	Subscribe(ctx context.Context, collection, key string) (*Subscription, error)

	// Set writes data under key. With merge, existing top-level fields not
	// present in data are preserved and data must be a map keyed by field
	// name; without it the document is replaced.
	Set(ctx context.Context, collection, key string, data interface{}, merge bool) error

	// Add appends a new document and returns its generated id.
	Add(ctx context.Context, collection string, data interface{}) (string, error)

	// Delete removes the document under key. Deleting a missing document
	// is not an error.
	Delete(ctx context.Context, collection, key string) error
}

// CtxGatewayKey is how the request-scoped gateway is stored/retrieved.
const CtxGatewayKey = "app-gateway"

// FromContextFun fetches the gateway bound to the given context.
type FromContextFun func(ctx context.Context) Gateway

// FromContext returns the gateway that the identity middleware stored in
// context, or nil when none was resolved.
func FromContext(ctx context.Context) Gateway {
	if g, ok := ctx.Value(CtxGatewayKey).(Gateway); ok {
		return g
	}

	return nil
}
