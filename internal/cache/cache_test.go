package cache

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestFIFOEvictsEarliestInsertion(t *testing.T) {
	var evicted []string
	c, err := NewFIFO[string, int](DefaultCapacity, func(key string, _ int) {
		evicted = append(evicted, key)
	})
	if err != nil {
		t.Fatalf("NewFIFO: %v", err)
	}

	for i := 0; i < DefaultCapacity; i++ {
		c.Put(fmt.Sprintf("k%d", i), i)
	}
	if c.Len() != DefaultCapacity {
		t.Fatalf("expected %d entries, got %d", DefaultCapacity, c.Len())
	}

	c.Put("k16", 16)

	if c.Len() != DefaultCapacity {
		t.Fatalf("expected capacity bound %d after overflow, got %d", DefaultCapacity, c.Len())
	}
	if c.Contains("k0") {
		t.Fatalf("expected k0 to be evicted")
	}
	if !c.Contains("k1") || !c.Contains("k16") {
		t.Fatalf("expected k1 and k16 to survive eviction")
	}
	if !reflect.DeepEqual(evicted, []string{"k0"}) {
		t.Fatalf("expected exactly k0 evicted, got %v", evicted)
	}
}

func TestFIFOGetDoesNotRefreshOrder(t *testing.T) {
	c, err := NewFIFO[string, int](2, nil)
	if err != nil {
		t.Fatalf("NewFIFO: %v", err)
	}
	c.Put("a", 1)
	c.Put("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = (%d,%v), want (1,true)", v, ok)
	}
	c.Put("c", 3)

	if c.Contains("a") {
		t.Fatalf("reading a must not protect it from eviction")
	}
	if got := c.Keys(); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("Keys() = %v, want [b c]", got)
	}
}

func TestFIFOOverwriteKeepsSlot(t *testing.T) {
	c, err := NewFIFO[string, int](3, nil)
	if err != nil {
		t.Fatalf("NewFIFO: %v", err)
	}
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	c.Put("a", 10)

	if got := c.Keys(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("Keys() after overwrite = %v, want [a b c]", got)
	}
	if v, _ := c.Get("a"); v != 10 {
		t.Fatalf("expected overwritten value 10, got %d", v)
	}
	if c.Len() != 3 {
		t.Fatalf("overwrite must not grow the store, len=%d", c.Len())
	}

	c.Put("d", 4)
	if c.Contains("a") {
		t.Fatalf("overwritten key keeps its old slot and is evicted first")
	}
}

func TestFIFOGetMissingReturnsZero(t *testing.T) {
	c, err := NewFIFO[string, []int](1, nil)
	if err != nil {
		t.Fatalf("NewFIFO: %v", err)
	}
	v, ok := c.Get("missing")
	if ok || v != nil {
		t.Fatalf("Get(missing) = (%v,%v), want (nil,false)", v, ok)
	}
}

func TestLRUMatchesFIFOWithoutRePut(t *testing.T) {
	var evicted []string
	c, err := NewLRU[string, int](3, func(key string, _ int) {
		evicted = append(evicted, key)
	})
	if err != nil {
		t.Fatalf("NewLRU: %v", err)
	}
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	_, _ = c.Get("a")
	_ = c.Contains("a")
	c.Put("d", 4)

	if c.Contains("a") {
		t.Fatalf("peek-only reads must not promote a")
	}
	if got := c.Keys(); !reflect.DeepEqual(got, []string{"b", "c", "d"}) {
		t.Fatalf("Keys() = %v, want [b c d]", got)
	}
	if !reflect.DeepEqual(evicted, []string{"a"}) {
		t.Fatalf("expected a evicted, got %v", evicted)
	}
}

func TestLRURePutPromotes(t *testing.T) {
	c, err := NewLRU[string, int](2, nil)
	if err != nil {
		t.Fatalf("NewLRU: %v", err)
	}
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("a", 3)
	c.Put("c", 4)

	if !c.Contains("a") || c.Contains("b") {
		t.Fatalf("expected re-put a to survive and b to be evicted, keys=%v", c.Keys())
	}
}

func TestNewRejectsBadArguments(t *testing.T) {
	if _, err := New[string, int](PolicyFIFO, 0, nil); !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("expected ErrInvalidCapacity, got %v", err)
	}
	if _, err := New[string, int](Policy("random"), 4, nil); !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
}

func TestNewSelectsPolicy(t *testing.T) {
	tests := []struct {
		policy Policy
		want   any
	}{
		{"", &FIFO[string, int]{}},
		{PolicyFIFO, &FIFO[string, int]{}},
		{PolicyLRU, &LRU[string, int]{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			s, err := New[string, int](tt.policy, 4, nil)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if reflect.TypeOf(s) != reflect.TypeOf(tt.want) {
				t.Fatalf("New(%q) = %T, want %T", tt.policy, s, tt.want)
			}
			if s.Cap() != 4 {
				t.Fatalf("Cap() = %d, want 4", s.Cap())
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", PolicyFIFO, false},
		{"FIFO", PolicyFIFO, false},
		{" lru ", PolicyLRU, false},
		{"lfu", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParsePolicy(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParsePolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
