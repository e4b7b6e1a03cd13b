package deque

import "github.com/puzpuzpuz/xsync/v3"

// rebalanceStats counts the two events the spine invariant maintenance
// actually does interesting work for: an edge buffer overflowing into the
// middle on push, and an edge buffer being redistributed from the middle
// (or the opposite edge) on pop. The counters are process-wide and safe to
// read from any number of goroutines concurrently with any number of
// deques being built — they track activity across all of them, not any one
// deque's history.
var (
	overflowCount  = xsync.NewCounter()
	underflowCount = xsync.NewCounter()
)

// RebalanceStats reports cumulative edge-buffer rebalancing activity across
// every Deque constructed in this process.
type RebalanceStats struct {
	// Overflows counts pushes that migrated a full edge buffer into middle.
	Overflows int64
	// Underflows counts pops that redistributed a drained edge buffer from
	// middle or the opposite edge.
	Underflows int64
}

// Stats returns a snapshot of the current rebalance counters.
func Stats() RebalanceStats {
	return RebalanceStats{
		Overflows:  overflowCount.Value(),
		Underflows: underflowCount.Value(),
	}
}

func recordOverflow() {
	overflowCount.Inc()
}

func recordUnderflow() {
	underflowCount.Inc()
}
