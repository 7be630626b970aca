package snake

// StartSignal is the edge-triggered "game start" notification.
// It carries no payload. Every emission bumps a generation counter and
// each consumer owns a SignalReader remembering the last generation it
// consumed, so several consumers react once to the same emission.
type StartSignal struct {
	gen uint64
}

// Emit raises the signal. Emissions not yet consumed collapse into one.
func (s *StartSignal) Emit() {
	s.gen++
}

// Reader returns a consumer cursor that sees every future emission, plus
// any emission already raised.
func (s *StartSignal) Reader() SignalReader {
	return SignalReader{sig: s}
}

// SignalReader tracks one consumer's view of a StartSignal.
type SignalReader struct {
	sig  *StartSignal
	seen uint64
}

// Pending reports whether a start arrived since the last Consume.
func (r *SignalReader) Pending() bool {
	return r.sig != nil && r.seen < r.sig.gen
}

// Consume clears the pending signal for this reader.
// It returns false if nothing was pending.
func (r *SignalReader) Consume() bool {
	if !r.Pending() {
		return false
	}
	r.seen = r.sig.gen
	return true
}
