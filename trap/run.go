package trap

// Run executes fn on the calling goroutine and recovers any panic it raises.
//
// It reports (true, nil) when fn returns normally and (false, err) when fn
// panics, whatever the panic value. The panic is fully absorbed; Run never
// re-panics, logs or retries. Side effects fn performed before panicking are
// left as they are.
//
// Run is re-entrant: a Run nested inside fn absorbs its own panic and the
// outer call observes a normal return.
func Run(fn func()) (bool, *Error) {
	var g *Guard

	return g.Run(fn)
}

// Do is Run with the outcome folded into a single error. It returns an untyped
// nil on success, otherwise the *Error.
func Do(fn func()) error {
	if _, err := Run(fn); err != nil {
		return err
	}

	return nil
}
