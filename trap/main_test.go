package trap_test

import (
	"testing"

	"go.uber.org/goleak"
)

// Run never starts goroutines; any leak here comes from a test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
