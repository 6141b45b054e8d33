package sqlite

// observerList is a plain callback list. Registration and delivery both
// happen on the caller's goroutine; the store does not spawn goroutines
// for notifications.
type observerList struct {
	fns []func()
}

func (l *observerList) subscribe(fn func()) {
	if fn == nil {
		return
	}
	l.fns = append(l.fns, fn)
}

func (l *observerList) notify() {
	for _, fn := range l.fns {
		fn()
	}
}
