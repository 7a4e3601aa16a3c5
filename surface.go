package dotgo

// Key identifies a physical key in surface events and key-state queries.
// Only the keys the frontend can bind are named; everything else maps to
// KeyNone.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyZ
	KeyX
	KeyReturn
	KeyBackspace
	KeyR
	KeyI
	KeyO
)

// EventKind tags a surface event.
type EventKind int

const (
	EventNone EventKind = iota
	EventKeyDown
	EventKeyUp
)

// Event is one host input event drained from the surface's queue.
type Event struct {
	Kind EventKind
	Key  Key
	// Repeat marks key auto-repeat; one-shot hotkeys must ignore it.
	Repeat bool
}

// Surface is the host window the frontend draws into. The frontend does
// not own it beyond the release ordering in the loop: it only uses the
// surface's stride and raw pixel memory, its event queue, and its
// presentation primitive.
//
// Pix is addressed as rows of 32-bit pixels with a stride equal to the
// physical width reported by Size. The frame-rate cap set with
// SetTargetRate is enforced by Present, not by the caller.
type Surface interface {
	Pix() []uint32
	Size() (w, h int)

	PollEvent() (Event, bool)
	CloseRequested() bool
	KeyDown(k Key) bool

	Present() error
	SetTargetRate(hz int)

	Close() error
}
