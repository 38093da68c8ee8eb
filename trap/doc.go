// Package trap converts panics into structured error values.
//
// It exposes Run and Do, which execute a callback on the calling goroutine
// and recover any panic it raises, and a single concrete type Error that
// implements contract.TrappedError and integrates with the standard library's
// errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Fixed Domain and sentinel Code on every trapped error
//   - Exception name and reason preserved losslessly
//   - Ancillary UserInfo carried verbatim, defensively cloned on read/write
//   - Original panic value kept; error panics preserved for errors.Is / errors.As
//   - ExceptionName recovers the name from any error in a wrap chain
//
// Faults the Go runtime reports as fatal errors rather than panics (stack
// exhaustion, concurrent map writes, out of memory) cannot be recovered and
// remain fatal. Panics raised on goroutines started by the callback are not
// trapped.
//
// Guard adds opt-in stack capture, zap logging and Prometheus counting on top
// of the same conversion. Run and the zero Guard perform no I/O.
package trap
