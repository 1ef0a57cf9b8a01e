package styler

import "sync/atomic"

type counters struct {
	messages atomic.Uint64
	matched  atomic.Uint64
	replaced atomic.Uint64
	bytesIn  atomic.Uint64
	bytesOut atomic.Uint64
}

// Stats is a snapshot of the work a Styler has done
type Stats struct {
	Messages uint64 // Calls to Transform
	Matched  uint64 // Commands found, known or not
	Replaced uint64 // Commands with known tokens that were styled
	BytesIn  uint64
	BytesOut uint64
}

// Stats returns a snapshot of s's counters
func (s *Styler) Stats() Stats {
	return Stats{
		Messages: s.stats.messages.Load(),
		Matched:  s.stats.matched.Load(),
		Replaced: s.stats.replaced.Load(),
		BytesIn:  s.stats.bytesIn.Load(),
		BytesOut: s.stats.bytesOut.Load(),
	}
}
