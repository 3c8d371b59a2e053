package utils

//Window keeps the most recent items of a sequence, newest first. It is used to hold the consecutive
//frames the model takes as one input.
type Window[T any] struct {
	size  int
	items []T
}

//NewWindow returns an empty window holding at most size items
func NewWindow[T any](size int) *Window[T] {
	return &Window[T]{size: size, items: make([]T, 0, size)}
}

//Push adds item as the newest entry. When the window was already full the oldest item is returned
//with evicted == true, so the caller can release it.
func (w *Window[T]) Push(item T) (oldest T, evicted bool) {
	if len(w.items) == w.size {
		oldest, evicted = w.items[len(w.items)-1], true
		w.items = w.items[:len(w.items)-1]
	}
	w.items = append([]T{item}, w.items...)
	return oldest, evicted
}

//Full reports whether the window holds size items
func (w *Window[T]) Full() bool {
	return len(w.items) == w.size
}

//Items returns the held items, newest first. The slice must not be modified.
func (w *Window[T]) Items() []T {
	return w.items
}

//Drain empties the window and returns what it held, newest first
func (w *Window[T]) Drain() []T {
	items := w.items
	w.items = make([]T, 0, w.size)
	return items
}
