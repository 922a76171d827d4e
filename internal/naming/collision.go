package naming

import "sync"

// ClaimTracker records which source file first mapped to each destination
// path during a run. Two sources that normalize to the same name (3_2.png
// in one chapter folder, 03_02.png in another) are reported, not renamed:
// the copy guard's existence check keeps the first one. All methods are
// goroutine-safe.
type ClaimTracker struct {
	mu     sync.Mutex
	owners map[string]string // destination path → source path that claimed it
}

// NewClaimTracker creates a ready-to-use tracker.
func NewClaimTracker() *ClaimTracker {
	return &ClaimTracker{owners: make(map[string]string)}
}

// Claim registers source as the owner of dest. If a different source already
// owns dest, that source is returned with ok=false and ownership is
// unchanged. Re-claiming with the same source is ok.
func (ct *ClaimTracker) Claim(source, dest string) (owner string, ok bool) {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	owner, exists := ct.owners[dest]
	if !exists || owner == source {
		ct.owners[dest] = source
		return source, true
	}
	return owner, false
}

// Len returns the number of distinct destinations claimed so far.
func (ct *ClaimTracker) Len() int {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return len(ct.owners)
}
