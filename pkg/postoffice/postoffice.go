package postoffice

import (
	"cmp"
	"context"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/ponyexpress/pkg/logger"
)

// PostOffice relays posted letters to every recipient registered for the
// letter's type, optionally restricted to a specific sender.
//
// A PostOffice is safe for concurrent use. Handlers never run while the
// internal lock is held, so they may register, unregister and post again.
type PostOffice struct {
	id     uuid.UUID
	name   string
	logger *slog.Logger

	mu        sync.Mutex
	listeners map[reflect.Type]*bucket
	index     map[RecipientID]reflect.Type
}

// bucket holds the recipients of one letter type in registration order.
// The recipients slice is never mutated in place; writers replace it.
type bucket struct {
	key        TypeKey
	recipients []*recipient
}

// New creates an empty PostOffice. Independent post offices never share
// recipients.
func New(opts ...Option) *PostOffice {
	p := &PostOffice{
		id:        uuid.New(),
		logger:    slog.Default(),
		listeners: make(map[reflect.Type]*bucket),
		index:     make(map[RecipientID]reflect.Type),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(
		logger.Component("postoffice"),
		logger.PostOfficeID(p.id),
	)
	if p.name != "" {
		p.logger = p.logger.With(slog.String("name", p.name))
	}
	return p
}

// ID returns the unique id of this post office.
func (p *PostOffice) ID() uuid.UUID { return p.id }

// Name returns the name set with WithName.
func (p *PostOffice) Name() string { return p.name }

// Count returns the number of registered recipients across all letter types,
// including expired ones that have not been pruned by a post yet.
func (p *PostOffice) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.index)
}

// Types returns the keys of every letter type that currently has recipients,
// ordered by name.
func (p *PostOffice) Types() []TypeKey {
	p.mu.Lock()
	keys := make([]TypeKey, 0, len(p.listeners))
	for _, b := range p.listeners {
		keys = append(keys, b.key)
	}
	p.mu.Unlock()

	slices.SortFunc(keys, func(a, b TypeKey) int { return cmp.Compare(a.Name(), b.Name()) })
	return keys
}

// Unregister stops deliveries to the recipient registered under id.
// Unknown or already removed ids are ignored.
func (p *PostOffice) Unregister(id RecipientID) {
	p.mu.Lock()
	typ, ok := p.index[id]
	if !ok {
		p.mu.Unlock()
		return
	}
	delete(p.index, id)
	if b, ok := p.listeners[typ]; ok {
		p.replace(typ, b, without(b.recipients, func(r *recipient) bool { return r.id == id }))
	}
	p.mu.Unlock()

	p.logger.Debug("recipient unregistered", logger.RecipientID(id))
}

// UnregisterRecipient removes every method registration owned by owner.
// Owners are compared by identity, so owner must be the same pointer that was
// registered.
func (p *PostOffice) UnregisterRecipient(owner any) {
	if owner == nil {
		return
	}

	p.mu.Lock()
	var removed int
	for typ, b := range p.listeners {
		kept := without(b.recipients, func(r *recipient) bool {
			if !r.ownedBy(owner) {
				return false
			}
			delete(p.index, r.id)
			return true
		})
		removed += len(b.recipients) - len(kept)
		p.replace(typ, b, kept)
	}
	p.mu.Unlock()

	if removed > 0 {
		p.logger.Debug("recipient owner unregistered", logger.Count(removed))
	}
}

func (p *PostOffice) register(key TypeKey, sh shape, deliver func(letter, sender any), owner *weakRef, opts []RegisterOption) RecipientID {
	var reg registration
	for _, opt := range opts {
		if opt != nil {
			opt(&reg)
		}
	}

	r := &recipient{
		id:      newRecipientID(),
		key:     key,
		shape:   sh,
		deliver: deliver,
		owner:   owner,
		sender:  reg.sender,
		exec:    reg.exec,
	}

	p.mu.Lock()
	b, ok := p.listeners[key.typ]
	if !ok {
		b = &bucket{key: key}
		p.listeners[key.typ] = b
	}
	recipients := make([]*recipient, len(b.recipients), len(b.recipients)+1)
	copy(recipients, b.recipients)
	b.recipients = append(recipients, r)
	p.index[r.id] = key.typ
	p.mu.Unlock()

	p.logger.Debug("recipient registered",
		logger.RecipientID(r.id),
		logger.LetterType(key.Name()),
		logger.Handler(sh.String()),
		slog.Bool("sender_filter", r.sender != nil),
		slog.Bool("executor", r.exec != nil),
	)
	return r.id
}

// decline logs a registration that could not be accepted. Nothing is
// registered and the zero RecipientID is returned.
func (p *PostOffice) decline(key TypeKey, sh shape, reason string) RecipientID {
	p.logger.Warn("registration declined",
		logger.LetterType(key.Name()),
		logger.Handler(sh.String()),
		slog.String("reason", reason),
	)
	return RecipientID{}
}

// post delivers letter to every recipient registered for its dynamic type or
// for an interface it implements.
//
// Matching buckets are snapshotted and pruned of collectible recipients under
// a single lock acquisition; delivery happens after the lock is released, in
// registration order.
func (p *PostOffice) post(ctx context.Context, letter, sender any) {
	if letter == nil {
		return
	}

	var (
		toNotify []*recipient
		pruned   int
	)

	p.mu.Lock()
	for typ, b := range p.listeners {
		if !b.key.Matches(letter) {
			continue
		}
		kept := without(b.recipients, func(r *recipient) bool {
			if !r.collectible() {
				toNotify = append(toNotify, r)
				return false
			}
			delete(p.index, r.id)
			pruned++
			return true
		})
		p.replace(typ, b, kept)
	}
	p.mu.Unlock()

	if pruned > 0 {
		p.logger.DebugContext(ctx, "expired recipients pruned",
			logger.LetterType(reflect.TypeOf(letter).String()),
			logger.Count(pruned),
		)
	}
	if len(toNotify) == 0 {
		return
	}

	slices.SortFunc(toNotify, func(a, b *recipient) int { return cmp.Compare(a.id.value, b.id.value) })

	for _, r := range toNotify {
		if !r.accepts(sender) {
			continue
		}
		r.dispatch(letter, sender)
	}
}

// replace stores recipients as the new list of b, dropping the bucket when it
// becomes empty. Callers must hold p.mu.
func (p *PostOffice) replace(typ reflect.Type, b *bucket, recipients []*recipient) {
	if len(recipients) == 0 {
		delete(p.listeners, typ)
		return
	}
	b.recipients = recipients
}

// without returns a copy of list minus the elements for which drop reports
// true. When nothing is dropped the original slice is returned.
func without(list []*recipient, drop func(*recipient) bool) []*recipient {
	var kept []*recipient
	for i, r := range list {
		if drop(r) {
			if kept == nil {
				kept = make([]*recipient, i, len(list))
				copy(kept, list[:i])
			}
			continue
		}
		if kept != nil {
			kept = append(kept, r)
		}
	}
	if kept == nil {
		return list
	}
	return kept
}
