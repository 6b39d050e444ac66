// Package identity tracks who is signed in to the CLI and tells interested
// parties when that changes.
package identity

import "sync"

// Identity is either none (the zero value) or an authenticated user ID.
type Identity struct {
	ID string
}

func None() Identity { return Identity{} }

func User(id string) Identity { return Identity{ID: id} }

func (i Identity) IsNone() bool { return i.ID == "" }

func (i Identity) String() string {
	if i.IsNone() {
		return "none"
	}
	return i.ID
}

// Provider owns the current identity. Subscribers receive every change;
// a slow subscriber only ever sees the latest identity, older undelivered
// ones are dropped.
type Provider struct {
	mu      sync.Mutex
	current Identity
	subs    map[int]chan Identity
	nextID  int
}

func NewProvider() *Provider {
	return &Provider{subs: make(map[int]chan Identity)}
}

func (p *Provider) Current() Identity {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Set replaces the current identity. Setting the identity already held is
// a no-op and notifies nobody.
func (p *Provider) Set(id Identity) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if id == p.current {
		return
	}
	p.current = id

	for _, ch := range p.subs {
		publishLatest(ch, id)
	}
}

func publishLatest(ch chan Identity, id Identity) {
	for {
		select {
		case ch <- id:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Subscribe returns a channel of identity changes and a func that ends the
// subscription and closes the channel.
func (p *Provider) Subscribe() (<-chan Identity, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	ch := make(chan Identity, 1)
	p.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.subs, id)
			close(ch)
		})
	}
}
