package browse

// Window is the {first, current, last} pagination state over one result
// set. First is always 1; an empty result set is presented as "page 1 of 1"
// so the window invariant first <= current <= last holds even with nothing
// to show.
type Window struct {
	First   int
	Current int
	Last    int
}

// NeededPages returns how many pages of size perPage are required to hold
// count items. A count of zero needs zero pages; Paginate floors the window
// at one page regardless.
func NeededPages(count, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := count / perPage
	if count%perPage != 0 {
		pages++
	}
	return pages
}

// Paginate builds a fresh window over count items, positioned on the first
// page.
func Paginate(count, perPage int) Window {
	last := NeededPages(count, perPage)
	if last < 1 {
		last = 1
	}
	return Window{First: 1, Current: 1, Last: last}
}

// Resize recomputes the window for a new item count while keeping the
// current page where it was. If the set shrank underneath the current page,
// the current page is clamped to the new last page.
func (w Window) Resize(count, perPage int) Window {
	resized := Paginate(count, perPage)
	resized.Current = w.Current
	if resized.Current < resized.First {
		resized.Current = resized.First
	}
	if resized.Current > resized.Last {
		resized.Current = resized.Last
	}
	return resized
}

func (w Window) GoFirst() Window {
	w.Current = w.First
	return w
}

func (w Window) GoLast() Window {
	w.Current = w.Last
	return w
}

// GoNext moves one page forward and clamps at the last page.
func (w Window) GoNext() Window {
	if w.Current < w.Last {
		w.Current++
	}
	return w
}

// GoPrevious moves one page back and clamps at the first page.
func (w Window) GoPrevious() Window {
	if w.Current > w.First {
		w.Current--
	}
	return w
}

// GoTo jumps to page n. Values outside [first, last] are silently ignored
// and the window is returned unchanged, matching how the page input box
// behaves.
func (w Window) GoTo(n int) Window {
	if n >= w.First && n <= w.Last {
		w.Current = n
	}
	return w
}

// Bounds returns the half-open slice [lo, hi) of the current page over a
// result set of the given length.
func (w Window) Bounds(length, perPage int) (int, int) {
	lo := (w.Current - 1) * perPage
	if lo > length {
		lo = length
	}
	if lo < 0 {
		lo = 0
	}
	hi := w.Current * perPage
	if hi > length {
		hi = length
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
