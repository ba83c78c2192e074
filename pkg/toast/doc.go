// Package toast manages ephemeral on-screen notifications.
//
// A Provider owns a Store that keeps the visible toasts in six position
// buckets (top-left through bottom-right). Each bucket keeps insertion order,
// which is both the rendering and the eviction order: when a bucket exceeds
// Config.MaxToasts the oldest toasts are dropped. Every toast with a finite
// Duration gets its own timer and disappears when it fires.
//
// # Basic Usage
//
//	p := toast.NewProvider(toast.DefaultConfig())
//	defer p.Close()
//
//	id, err := p.Show(toast.Options{
//	    Title:    "Saved",
//	    Message:  "Your changes have been saved.",
//	    Type:     toast.TypeSuccess,
//	    Position: toast.BottomRight,
//	    Duration: toast.For(3 * time.Second),
//	})
//	if errors.Is(err, toast.ErrInvalidToast) {
//	    // empty message or negative duration
//	}
//
//	p.Dismiss(id)
//	p.ClearAll(toast.TopLeft)
//
// Toasts created with Duration: toast.Persistent() stay until they are
// dismissed, cleared or evicted.
//
// # Context Helpers
//
// Handlers that receive a context can reach the provider without passing it
// around:
//
//	ctx = toast.WithProvider(ctx, p)
//	toast.Success(ctx, "Project deleted")
//
// # Rendering
//
// Renderers read Provider.Snapshot, register a synchronous callback with
// Subscribe, or consume Provider.Stream, which always delivers the most
// recent snapshot. Rendering, animation and the close button are the
// renderer's job; it calls Dismiss when the user closes a toast.
//
// # Timers
//
// Timers come from a Scheduler. TimerScheduler uses AfterFunc on a
// k8s.io/utils clock (the wall clock unless NewTimerSchedulerWithClock is
// used); ManualScheduler advances only when told to and is meant for tests:
//
//	sched := toast.NewManualScheduler()
//	p := toast.NewProvider(cfg, toast.WithScheduler(sched))
//	sched.Advance(5 * time.Second)
//
// Removal always cancels the timer, so a dismissed or evicted toast never
// produces a late expiry.
package toast
