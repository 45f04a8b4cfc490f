//go:build unix

package supervisor

import "syscall"

// detached starts the child in its own session so it outlives the launcher
// and the launcher's terminal.
func detached() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
