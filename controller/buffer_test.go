package controller

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func ttls(b *InputBuffer) []int {
	var out []int
	for _, in := range b.Entries() {
		out = append(out, in.FramesUntilDropped)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestInputBufferTick(t *testing.T) {
	cases := []struct {
		name   string
		record []int
		want   []int
	}{
		{"empty", nil, nil},
		{"ages_entries", []int{5, 3}, []int{4, 2}},
		{"drops_expired_anywhere", []int{5, 1, 4}, []int{4, 3}},
		{"drops_leading_expired", []int{1, 1, 2}, []int{1}},
		{"drops_all", []int{1, 1}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b InputBuffer
			for _, ttl := range tc.record {
				b.Record(InputJump, ttl)
			}
			b.Tick()
			if got := ttls(&b); !equalInts(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestInputBufferConsume(t *testing.T) {
	var b InputBuffer
	b.Record(InputJump, 5)
	b.Record(InputJump, 3)
	if !b.HasPending(InputJump) {
		t.Fatalf("expected pending jump")
	}

	b.Consume(InputJump)
	if b.HasPending(InputJump) {
		t.Fatalf("consumed entries still pending")
	}
	if b.Len() != 2 {
		t.Fatalf("consumed entries should linger until Tick, len %d", b.Len())
	}
	b.Tick()
	if b.Len() != 0 {
		t.Fatalf("expected consumed entries dropped, len %d", b.Len())
	}
}

func TestInputBufferExpiry(t *testing.T) {
	var b InputBuffer
	b.Record(InputJump, 2)
	b.Tick()
	if !b.HasPending(InputJump) {
		t.Fatalf("expected pending after one tick")
	}
	b.Tick()
	if b.HasPending(InputJump) || b.Len() != 0 {
		t.Fatalf("expected expiry after two ticks")
	}
}

func TestInputBufferNil(t *testing.T) {
	var b *InputBuffer
	b.Record(InputJump, 5)
	b.Tick()
	b.Consume(InputJump)
	if b.HasPending(InputJump) || b.Len() != 0 || b.Entries() != nil {
		t.Fatalf("nil buffer should be empty")
	}
}

func TestNewFrameInputQuantizes(t *testing.T) {
	raw := RawInput{JumpDown: true, Move: cp.Vector{X: -0.4, Y: 0.005}, DashPressed: true}
	in := NewFrameInput(raw, 0.01)
	if in.Move != (cp.Vector{X: -1, Y: 0}) {
		t.Fatalf("expected (-1, 0), got %v", in.Move)
	}
	if !in.JumpDown || !in.DashPressed || in.JumpHeld {
		t.Fatalf("buttons not carried over: %+v", in)
	}
}
