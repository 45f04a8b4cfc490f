//go:build !unix

package supervisor

import "syscall"

func detached() *syscall.SysProcAttr {
	return nil
}
