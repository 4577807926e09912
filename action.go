package track

// Execute calls before, after or during, depending on the track's position.
// At most one function is called and nil functions are skipped.
func (t Track[F]) Execute(before, after, during func()) {
	var fn func()
	switch t.Position() {
	case Before:
		fn = before
	case After:
		fn = after
	case Inside:
		fn = during
	}
	if fn != nil {
		fn()
	}
}

// ExecuteBefore calls fn if the track is before its interval. It returns t
// so that calls can be chained.
func (t Track[F]) ExecuteBefore(fn func()) Track[F] {
	t.Execute(fn, nil, nil)
	return t
}

// ExecuteAfter calls fn if the track is past its interval.
func (t Track[F]) ExecuteAfter(fn func()) Track[F] {
	t.Execute(nil, fn, nil)
	return t
}

// ExecuteDuring calls fn if the track is inside its interval.
func (t Track[F]) ExecuteDuring(fn func()) Track[F] {
	t.Execute(nil, nil, fn)
	return t
}
