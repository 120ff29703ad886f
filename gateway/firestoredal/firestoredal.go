// Package firestoredal implements the persistence gateway over Firestore.
// Subscriptions are server-pushed; writes are remote and may fail with
// network or permission errors, which are surfaced to the caller.
package firestoredal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/homebills/tracker/gateway/iface"
)

// Gateway is an owner-scoped document gateway backed by Firestore. All
// collections live under artifacts/{appID}/users/{owner}.
type Gateway struct {
	client *firestore.Client
	appID  string
	owner  string
}

func New(client *firestore.Client, appID, owner string) *Gateway {
	return &Gateway{
		client: client,
		appID:  appID,
		owner:  owner,
	}
}

func (g *Gateway) col(collection string) *firestore.CollectionRef {
	return g.client.
		Collection("artifacts").
		Doc(g.appID).
		Collection("users").
		Doc(g.owner).
		Collection(collection)
}

type snapshot struct {
	doc *firestore.DocumentSnapshot
}

func (s snapshot) ID() string {
	return s.doc.Ref.ID
}

func (s snapshot) Exists() bool {
	return s.doc.Exists()
}

func (s snapshot) DataTo(v interface{}) error {
	return s.doc.DataTo(v)
}

func (g *Gateway) Get(ctx context.Context, collection, key string) (iface.Snapshot, error) {
	doc, err := g.col(collection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, iface.ErrNotFound
		}

		return nil, err
	}

	return snapshot{doc}, nil
}

func (g *Gateway) List(ctx context.Context, collection string) ([]iface.Snapshot, error) {
	docs, err := g.col(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	snaps := make([]iface.Snapshot, 0, len(docs))
	for _, doc := range docs {
		snaps = append(snaps, snapshot{doc})
	}

	return snaps, nil
}

// Subscribe streams the collection (empty key) or a single document. Events
// arrive in the order Firestore emits them; Stop cancels the underlying
// listener.
func (g *Gateway) Subscribe(ctx context.Context, collection, key string) (*iface.Subscription, error) {
	subCtx, cancel := context.WithCancel(ctx)
	events := make(chan iface.Event, 1)

	if key == "" {
		it := g.col(collection).Snapshots(subCtx)

		go func() {
			defer close(events)

			for {
				qsnap, err := it.Next()
				if err != nil {
					return
				}

				docs, err := qsnap.Documents.GetAll()
				if err != nil {
					return
				}

				snaps := make([]iface.Snapshot, 0, len(docs))
				for _, doc := range docs {
					snaps = append(snaps, snapshot{doc})
				}

				select {
				case events <- iface.Event{Snapshots: snaps}:
				case <-subCtx.Done():
					return
				}
			}
		}()

		return iface.NewSubscription(events, func() {
			cancel()
			it.Stop()
		}), nil
	}

	it := g.col(collection).Doc(key).Snapshots(subCtx)

	go func() {
		defer close(events)

		for {
			doc, err := it.Next()
			if err != nil {
				return
			}

			select {
			case events <- iface.Event{Snapshots: []iface.Snapshot{snapshot{doc}}}:
			case <-subCtx.Done():
				return
			}
		}
	}()

	return iface.NewSubscription(events, func() {
		cancel()
		it.Stop()
	}), nil
}

func (g *Gateway) Set(ctx context.Context, collection, key string, data interface{}, merge bool) error {
	doc := g.col(collection).Doc(key)

	var err error
	if merge {
		_, err = doc.Set(ctx, data, firestore.MergeAll)
	} else {
		_, err = doc.Set(ctx, data)
	}

	return err
}

func (g *Gateway) Add(ctx context.Context, collection string, data interface{}) (string, error) {
	ref, _, err := g.col(collection).Add(ctx, data)
	if err != nil {
		return "", err
	}

	return ref.ID, nil
}

func (g *Gateway) Delete(ctx context.Context, collection, key string) error {
	_, err := g.col(collection).Doc(key).Delete(ctx)
	return err
}
