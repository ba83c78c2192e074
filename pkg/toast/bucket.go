package toast

import "slices"

// bucket holds the toasts of one position, oldest first.
// A capacity of 0 means unbounded.
type bucket struct {
	position Position
	capacity int
	toasts   []Toast
}

func newBucket(pos Position, capacity int) *bucket {
	return &bucket{position: pos, capacity: capacity}
}

// insert appends t and returns the toasts evicted from the head to bring
// the bucket back to capacity.
func (b *bucket) insert(t Toast) []Toast {
	b.toasts = append(b.toasts, t)
	if b.capacity <= 0 || len(b.toasts) <= b.capacity {
		return nil
	}
	n := len(b.toasts) - b.capacity
	evicted := slices.Clone(b.toasts[:n])
	b.toasts = slices.Delete(b.toasts, 0, n)
	return evicted
}

func (b *bucket) remove(id string) (Toast, bool) {
	i := slices.IndexFunc(b.toasts, func(t Toast) bool { return t.ID == id })
	if i < 0 {
		return Toast{}, false
	}
	t := b.toasts[i]
	b.toasts = slices.Delete(b.toasts, i, i+1)
	return t, true
}

func (b *bucket) clear() []Toast {
	removed := b.toasts
	b.toasts = nil
	return removed
}

// oldest returns the head of the bucket.
func (b *bucket) oldest() (Toast, bool) {
	if len(b.toasts) == 0 {
		return Toast{}, false
	}
	return b.toasts[0], true
}

func (b *bucket) len() int {
	return len(b.toasts)
}

func (b *bucket) snapshot() []Toast {
	return slices.Clone(b.toasts)
}
