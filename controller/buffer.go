package controller

// InputKind identifies a bufferable input.
type InputKind uint8

const (
	InputJump InputKind = iota + 1
)

func (k InputKind) String() string {
	switch k {
	case InputJump:
		return "jump"
	}
	return "unknown"
}

// consumedTTL marks an entry that has already been acted on.
const consumedTTL = -1

// BufferedInput is an early press waiting to become legal.
type BufferedInput struct {
	Kind               InputKind
	FramesUntilDropped int
}

// InputBuffer keeps buffered inputs in arrival order.
type InputBuffer struct {
	entries []BufferedInput
}

// Record appends an input that stays pending for ttl ticks.
func (b *InputBuffer) Record(kind InputKind, ttl int) {
	if b == nil {
		return
	}
	b.entries = append(b.entries, BufferedInput{Kind: kind, FramesUntilDropped: ttl})
}

// HasPending reports whether any unexpired entry of kind is buffered.
func (b *InputBuffer) HasPending(kind InputKind) bool {
	if b == nil {
		return false
	}
	for _, in := range b.entries {
		if in.Kind == kind && in.FramesUntilDropped > 0 {
			return true
		}
	}
	return false
}

// Consume invalidates every entry of kind. The entries are dropped on the
// next Tick.
func (b *InputBuffer) Consume(kind InputKind) {
	if b == nil {
		return
	}
	for i := range b.entries {
		if b.entries[i].Kind == kind {
			b.entries[i].FramesUntilDropped = consumedTTL
		}
	}
}

// Tick ages every entry by one tick and drops all expired or consumed
// entries, wherever they sit in the buffer.
func (b *InputBuffer) Tick() {
	if b == nil || len(b.entries) == 0 {
		return
	}
	kept := b.entries[:0]
	for _, in := range b.entries {
		in.FramesUntilDropped--
		if in.FramesUntilDropped > 0 {
			kept = append(kept, in)
		}
	}
	clear(b.entries[len(kept):])
	b.entries = kept
}

// Len returns the number of entries still held, expired or not.
func (b *InputBuffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// Entries returns a copy of the buffer contents, oldest first.
func (b *InputBuffer) Entries() []BufferedInput {
	if b == nil {
		return nil
	}
	return append([]BufferedInput(nil), b.entries...)
}
