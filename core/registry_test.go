package core

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
)

type nopHandler struct{}

func (nopHandler) Enabled(Level) bool { return false }
func (nopHandler) Log(*Record)        {}
func (nopHandler) Flush()             {}

func TestRegistry_SetOnce(t *testing.T) {
	var reg Registry

	if reg.Handler() != nil {
		t.Error("fresh registry should have no handler")
	}

	first := &nopHandler{}
	if err := reg.Set(first); err != nil {
		t.Fatalf("first Set() error = %v", err)
	}
	if reg.Handler() == nil {
		t.Fatal("Handler() returned nil after Set")
	}

	err := reg.Set(&nopHandler{})
	if err == nil {
		t.Fatal("second Set() succeeded, want ErrAlreadyInit")
	}
	if !errors.Is(err, ErrAlreadyInit) {
		t.Errorf("second Set() error = %v, want ErrAlreadyInit", err)
	}

	// The first handler must survive the rejected second attempt.
	if reg.Handler() != Handler(first) {
		t.Error("rejected Set replaced the installed handler")
	}
}

func TestRegistry_ConcurrentSet(t *testing.T) {
	var reg Registry

	const callers = 16
	var wg sync.WaitGroup
	errs := make([]error, callers)

	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = reg.Set(&nopHandler{})
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else if !errors.Is(err, ErrAlreadyInit) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if won != 1 {
		t.Errorf("%d Set() calls succeeded, want exactly 1", won)
	}
	if reg.Handler() == nil {
		t.Error("no handler installed after concurrent Set calls")
	}
}

func TestRecord_EffectiveTarget(t *testing.T) {
	r := &Record{Module: "app/server", Target: ""}
	if got := r.EffectiveTarget(); got != "app/server" {
		t.Errorf("EffectiveTarget() = %q, want module fallback", got)
	}

	r.Target = "app/metrics"
	if got := r.EffectiveTarget(); got != "app/metrics" {
		t.Errorf("EffectiveTarget() = %q, want explicit target", got)
	}
}
