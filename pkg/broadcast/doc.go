// Package broadcast fans values out from one producer to many in-process
// subscribers over buffered channels.
//
// Broadcast never blocks. When a subscriber's buffer is full the oldest
// queued message is dropped to make room, so a slow reader always catches
// up with the most recent value. This suits state snapshots, where only the
// latest one matters:
//
//	b := broadcast.NewMemoryBroadcaster[toast.Snapshot](1)
//	defer b.Close()
//
//	sub := b.Subscribe(r.Context())
//	defer sub.Close()
//
//	for msg := range sub.Receive(r.Context()) {
//		render(msg.Data)
//	}
//
// Subscriptions end when the subscriber is closed, its context is
// cancelled, or the broadcaster is closed.
package broadcast
