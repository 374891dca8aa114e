package process

// Notes:
// - KillProcessGroup: only exercised with an invalid PID. Real group kills are
//   covered by the git client cancellation test in internal/git.
// - Cannot test with PID 0 (kills the current process group).

import (
	"os/exec"
	"testing"
)

// ---------------------------------------------------------------------------
// TestKillProcessGroup - Invalid PID Handling
// ---------------------------------------------------------------------------

func TestKillProcessGroup_InvalidPID(t *testing.T) {
	t.Parallel()

	KillProcessGroup(999999999)
}

// ---------------------------------------------------------------------------
// TestIsolate - SysProcAttr setup
// ---------------------------------------------------------------------------

func TestIsolate(t *testing.T) {
	t.Parallel()

	t.Run("allocates attributes", func(t *testing.T) {
		t.Parallel()

		cmd := exec.Command("git", "--version")
		Isolate(cmd)
		if cmd.SysProcAttr == nil {
			t.Fatal("SysProcAttr is nil after Isolate")
		}
	})

	t.Run("keeps existing attributes", func(t *testing.T) {
		t.Parallel()

		cmd := exec.Command("git", "--version")
		Isolate(cmd)
		attr := cmd.SysProcAttr
		Isolate(cmd)
		if cmd.SysProcAttr != attr {
			t.Error("Isolate replaced an existing SysProcAttr")
		}
	})
}
