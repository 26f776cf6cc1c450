package lock

import (
	"sync"
	"testing"
)

func TestKeyedSerializesScope(t *testing.T) {
	locks := NewKeyed()

	const workers = 50

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locks.Lock("a")
			defer locks.Unlock("a")
			counter++
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Fatalf("expected %d increments, got %d", workers, counter)
	}
}

func TestKeyedScopesAreIndependent(t *testing.T) {
	locks := NewKeyed()

	locks.Lock("a")
	defer locks.Unlock("a")

	// A different scope's lock must not be held.
	done := make(chan struct{})
	go func() {
		locks.Lock("b")
		locks.Unlock("b")
		close(done)
	}()
	<-done
}
