package resolver

import "testing"

// TestEvictFileRunsCallbacksInReverseRegistrationOrder is a white-box
// test (package resolver, not resolver_test) because the public API
// has no way to register an arbitrary observer callback — every
// exported registration path (AddReference, AddGlobalReference) wraps
// a commutative map delete, which would pass whether callbacks ran
// forward or backward. Reaching into onEvict directly is the only way
// to pin down the ordering spec.md §5 actually requires.
func TestEvictFileRunsCallbacksInReverseRegistrationOrder(t *testing.T) {
	r := New()

	var order []int
	r.onEvict["Main.sol"] = []func(){
		func() { order = append(order, 1) },
		func() { order = append(order, 2) },
		func() { order = append(order, 3) },
	}

	r.EvictFile("Main.sol")

	want := []int{3, 2, 1}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}
