package mergequeue

import (
	"testing"

	"go.uber.org/goleak"
)

// Sequences are pulled through iter.Pull, which parks a goroutine per
// sequence until it is exhausted or stopped.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
