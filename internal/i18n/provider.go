package i18n

import (
	"context"
	"fmt"
	"sync"
)

// Listener receives the complete table whenever the language changes.
type Listener func(lang string, table Table)

// Provider is the language state for one scope, typically one request.
type Provider struct {
	resolver *Resolver

	mu        sync.RWMutex
	lang      string
	table     Table
	listeners map[int]Listener
	nextID    int
}

// NewProvider starts in lang, or in the default language when lang is not
// supported.
func NewProvider(r *Resolver, lang string) *Provider {
	c, ok := Normalize(lang)
	if !ok {
		c = DefaultLanguage
	}
	table, _ := r.Table(c)
	return &Provider{
		resolver:  r,
		lang:      c,
		table:     table,
		listeners: map[int]Listener{},
	}
}

func (p *Provider) Language() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lang
}

// SetLanguage switches the table and notifies every listener with it.
func (p *Provider) SetLanguage(lang string) error {
	table, ok := p.resolver.Table(lang)
	if !ok {
		return fmt.Errorf("i18n: unsupported language %q", lang)
	}
	c, _ := Normalize(lang)

	p.mu.Lock()
	p.lang = c
	p.table = table
	listeners := make([]Listener, 0, len(p.listeners))
	for _, l := range p.listeners {
		listeners = append(listeners, l)
	}
	p.mu.Unlock()

	for _, l := range listeners {
		l(c, table.clone())
	}
	return nil
}

// Subscribe registers l and returns a function that removes it.
func (p *Provider) Subscribe(l Listener) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = l
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

func (p *Provider) Table() Table {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.table.clone()
}

// T looks up a dotted key. Unknown keys come back unchanged.
func (p *Provider) T(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.table[key]; ok {
		return v
	}
	return key
}

type ctxKey struct{}

func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the scope's provider. It panics outside a scope set
// up by WithProvider.
func FromContext(ctx context.Context) *Provider {
	p, ok := Lookup(ctx)
	if !ok {
		panic("i18n: provider missing from context")
	}
	return p
}

func Lookup(ctx context.Context) (*Provider, bool) {
	p, ok := ctx.Value(ctxKey{}).(*Provider)
	return p, ok && p != nil
}
