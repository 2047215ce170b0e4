package workqueue

import (
	"fmt"
	"sync"
	"testing"

	"julia-render/internal/domain"
)

func TestDispatcher_ClaimsInOrderThenStops(t *testing.T) {
	strips, err := Partition(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	d := NewDispatcher(strips)

	for _, want := range []domain.Strip{{YStart: 0, YEnd: 1}, {YStart: 2, YEnd: 3}} {
		got, ok := d.Claim()
		if !ok || got != want {
			t.Fatalf("Claim() = %v, %v; want %v, true", got, ok, want)
		}
	}
	if got, ok := d.Claim(); ok {
		t.Fatalf("third Claim() = %v, true; want none", got)
	}
	// stays exhausted
	if _, ok := d.Claim(); ok {
		t.Fatal("Claim() after exhaustion returned a strip")
	}
}

func TestDispatcher_EmptyList(t *testing.T) {
	d := NewDispatcher(nil)
	if _, ok := d.Claim(); ok {
		t.Fatal("Claim() on empty dispatcher returned a strip")
	}
}

func TestDispatcher_ConcurrentClaimsAreExact(t *testing.T) {
	strips, err := Partition(1000, 3)
	if err != nil {
		t.Fatal(err)
	}

	for _, claimers := range []int{1, 2, 8, 64} {
		t.Run(fmt.Sprintf("claimers=%d", claimers), func(t *testing.T) {
			d := NewDispatcher(strips)
			claimed := make([][]domain.Strip, claimers)

			var wg sync.WaitGroup
			for i := range claimers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for {
						s, ok := d.Claim()
						if !ok {
							return
						}
						claimed[i] = append(claimed[i], s)
					}
				}()
			}
			wg.Wait()

			seen := make(map[domain.Strip]int, len(strips))
			for _, list := range claimed {
				for _, s := range list {
					seen[s]++
				}
			}
			if len(seen) != len(strips) {
				t.Fatalf("claimed %d distinct strips, want %d", len(seen), len(strips))
			}
			for _, s := range strips {
				if seen[s] != 1 {
					t.Errorf("strip %v claimed %d times", s, seen[s])
				}
			}
		})
	}
}
