// Package prefsync keeps the display theme in sync between the live preview,
// the local cache and the remote profile store.
//
// A Controller owns one preference.State. SetDraft and Revert are local and
// immediate. Save and Reconcile talk to the remote store without holding the
// controller lock, and their results are checked against the identity epoch
// and draft sequence current at completion time before they touch state.
package prefsync

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/learnhub/internal/client/identity"
	"github.com/dmitrijs2005/learnhub/internal/common"
	"github.com/dmitrijs2005/learnhub/internal/logging"
	"github.com/dmitrijs2005/learnhub/internal/preference"
)

var (
	ErrRemoteUnavailable = errors.New("remote preference store unavailable")
	ErrRemoteRejected    = errors.New("remote preference store rejected the request")
	ErrStaleReconcile    = errors.New("reconcile superseded by a newer identity change")
	ErrStaleSave         = errors.New("identity changed while saving")
)

// Cache is the local key/value store the controller mirrors the draft into.
// Implementations never fail observably.
type Cache interface {
	Get(key string) (preference.Preference, bool)
	Set(key string, p preference.Preference)
}

// RemoteStore holds one preference per identity.
type RemoteStore interface {
	Upsert(ctx context.Context, id identity.Identity, p preference.Preference) error
	Get(ctx context.Context, id identity.Identity) (preference.Preference, bool, error)
}

// Applier makes a preference visible. It is called synchronously, with the
// controller lock held, so it must not call back into the controller.
type Applier interface {
	Apply(p preference.Preference)
}

type ApplierFunc func(p preference.Preference)

func (f ApplierFunc) Apply(p preference.Preference) { f(p) }

type Option func(*Controller)

// WithFallback sets the value used when the cache holds nothing usable.
func WithFallback(p preference.Preference) Option {
	return func(c *Controller) {
		if p.Valid() {
			c.fallback = p
		}
	}
}

func WithCacheKey(key string) Option {
	return func(c *Controller) {
		if key != "" {
			c.key = key
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithReconcileHook registers fn to run after every reconcile started by
// Follow. fn runs without the controller lock.
func WithReconcileHook(fn func(id identity.Identity, err error)) Option {
	return func(c *Controller) {
		c.onReconcile = fn
	}
}

type Controller struct {
	cache   Cache
	remote  RemoteStore
	applier Applier
	log     logging.Logger

	key         string
	fallback    preference.Preference
	onReconcile func(identity.Identity, error)

	mu       sync.Mutex
	state    preference.State
	identity identity.Identity
	epoch    uint64
	seq      uint64
}

// NewController builds a controller whose initial state comes from the cache,
// or the fallback when the cache is empty, and applies it once.
func NewController(cache Cache, remote RemoteStore, applier Applier, opts ...Option) *Controller {
	c := &Controller{
		cache:    cache,
		remote:   remote,
		applier:  applier,
		log:      logging.Nop(),
		key:      common.ThemeCacheKey,
		fallback: preference.Fallback,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("module", "prefsync")

	initial := c.fallback
	if p, ok := c.cache.Get(c.key); ok {
		initial = p
	}
	c.state = preference.NewState(initial)
	c.applier.Apply(initial)

	return c
}

// State returns a snapshot.
func (c *Controller) State() preference.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Identity returns the identity of the last reconcile.
func (c *Controller) Identity() identity.Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity
}

func (c *Controller) SetDraft(p preference.Preference) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %q", preference.ErrInvalidPreference, string(p))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.setDraftLocked(p)
	return nil
}

// Toggle flips the draft between the two themes and returns the new draft.
func (c *Controller) Toggle() preference.Preference {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.Draft.Toggle()
	c.setDraftLocked(next)
	return next
}

func (c *Controller) setDraftLocked(p preference.Preference) {
	c.seq++
	c.state.Draft = p
	c.recompute()
	c.applier.Apply(p)
	c.cache.Set(c.key, p)
}

// Revert discards the draft. It never talks to the remote store.
func (c *Controller) Revert() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.state.Draft = c.state.Committed
	c.recompute()
	c.applier.Apply(c.state.Committed)
	c.cache.Set(c.key, c.state.Committed)
}

// Save commits the current draft. Without an identity the commit is local
// only. With one, the draft is upserted remotely first and a failure leaves
// the state untouched. When the identity changes before the upsert returns
// nothing is committed and ErrStaleSave is returned: the value went to the
// previous account.
func (c *Controller) Save(ctx context.Context) error {
	c.mu.Lock()
	id, epoch, snapshot := c.identity, c.epoch, c.state.Draft
	if id.IsNone() {
		c.state.Committed = snapshot
		c.recompute()
		c.cache.Set(c.key, snapshot)
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	err := c.remote.Upsert(ctx, id, snapshot)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.log.Warn(ctx, "save failed", "identity", id.String(), "value", snapshot.String(), "error", err)
		return fmt.Errorf("save preference: %w", err)
	}
	if c.epoch != epoch {
		c.log.Warn(ctx, "identity changed during save, result not committed",
			"identity", id.String(), "value", snapshot.String())
		return fmt.Errorf("save preference: %w", ErrStaleSave)
	}

	c.state.Committed = snapshot
	c.recompute()
	c.cache.Set(c.key, c.state.Draft)
	c.log.Debug(ctx, "preference saved", "identity", id.String(), "value", snapshot.String())

	return nil
}

// Reconcile switches the controller to id. A remote value overwrites the
// local one; a missing remote record keeps the local value. When a newer
// Reconcile starts before this one completes the result is dropped and
// ErrStaleReconcile is returned.
func (c *Controller) Reconcile(ctx context.Context, id identity.Identity) error {
	epoch, seq := c.beginReconcile(id)
	return c.finishReconcile(ctx, id, epoch, seq)
}

// beginReconcile switches to id and returns the tags its result is checked
// against. Calls order the identities: the last one to begin wins.
func (c *Controller) beginReconcile(id identity.Identity) (epoch, seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.identity = id
	return c.epoch, c.seq
}

func (c *Controller) finishReconcile(ctx context.Context, id identity.Identity, epoch, seq uint64) error {
	if id.IsNone() {
		c.log.Debug(ctx, "identity cleared, keeping local preference")
		return nil
	}

	remote, found, err := c.remote.Get(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.epoch != epoch {
		c.log.Debug(ctx, "discarding stale reconcile", "identity", id.String())
		return ErrStaleReconcile
	}
	if err != nil {
		c.log.Warn(ctx, "reconcile failed", "identity", id.String(), "error", err)
		return fmt.Errorf("reconcile preference: %w", err)
	}
	if !found {
		c.log.Info(ctx, "no remote preference, keeping local value",
			"identity", id.String(), "value", c.state.Draft.String())
		return nil
	}

	c.state.Committed = remote
	if c.seq == seq {
		c.state.Draft = remote
		c.applier.Apply(remote)
		c.cache.Set(c.key, remote)
	} else {
		c.log.Info(ctx, "draft changed during reconcile, keeping draft",
			"identity", id.String(), "remote", remote.String(), "draft", c.state.Draft.String())
	}
	c.recompute()

	return nil
}

// IdentitySource is satisfied by *identity.Provider.
type IdentitySource interface {
	Current() identity.Identity
	Subscribe() (<-chan identity.Identity, func())
}

// Follow reconciles against the source's current identity and then against
// every change it publishes, until ctx is done. Identities are claimed in
// arrival order on the calling goroutine; only the remote fetch runs in the
// background, so a slow remote never delays the next change and older
// results are discarded as stale. Follow returns once all started
// reconciles finished.
func (c *Controller) Follow(ctx context.Context, src IdentitySource) {
	changes, unsubscribe := src.Subscribe()
	defer unsubscribe()

	var wg sync.WaitGroup
	defer wg.Wait()

	start := func(id identity.Identity) {
		epoch, seq := c.beginReconcile(id)
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := c.finishReconcile(ctx, id, epoch, seq)
			if err != nil && !errors.Is(err, ErrStaleReconcile) {
				c.log.Error(ctx, "reconcile after identity change", "identity", id.String(), "error", err)
			}
			if c.onReconcile != nil {
				c.onReconcile(id, err)
			}
		}()
	}

	start(src.Current())

	for {
		select {
		case <-ctx.Done():
			return
		case id, ok := <-changes:
			if !ok {
				return
			}
			start(id)
		}
	}
}

func (c *Controller) recompute() {
	c.state.IsDirty = c.state.Draft != c.state.Committed
}
