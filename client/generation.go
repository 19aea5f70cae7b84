package client

import "sync/atomic"

// Generation tracks which request is the latest for one piece of UI state,
// such as the detail view for the current slug. Responses carrying an older
// Ticket are stale and should be dropped.
type Generation struct {
	n atomic.Uint64
}

// Ticket identifies one issued request.
type Ticket struct {
	g *Generation
	n uint64
}

// Next issues a ticket that supersedes every earlier one.
func (g *Generation) Next() Ticket {
	return Ticket{g: g, n: g.n.Add(1)}
}

// Invalidate makes every issued ticket stale, e.g. when the view goes away.
func (g *Generation) Invalidate() {
	g.n.Add(1)
}

// Current reports whether no newer ticket has been issued since t.
func (t Ticket) Current() bool {
	return t.g != nil && t.g.n.Load() == t.n
}

// Deliver calls apply with v only if t is still current, and reports
// whether it did.
func Deliver[T any](t Ticket, v T, apply func(T)) bool {
	if !t.Current() {
		return false
	}
	apply(v)
	return true
}
