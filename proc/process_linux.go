package proc

import (
	"fmt"
	"syscall"

	sys "golang.org/x/sys/unix"
)

// wait calls waitpid(2) for pid, retrying across EINTR, and hands back the
// raw wait status for the caller to interpret. It is the single place that
// blocks on the kernel reporting the debuggee's next state change
// (spec.md §5: "every wait_for_stop call is a blocking suspension").
func (dbp *Process) wait(pid, options int) (int, *sys.WaitStatus, error) {
	for {
		var status sys.WaitStatus
		wpid, err := sys.Wait4(pid, &status, options, nil)
		if err == syscall.EINTR {
			continue
		}
		if err != nil {
			return 0, nil, fmt.Errorf("wait4: %w", err)
		}
		return wpid, &status, nil
	}
}
