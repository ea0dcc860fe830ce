package ioctl

import (
	"syscall"
	"unsafe"
)

// Ioctl issues the request, restarting it while the call is interrupted by
// a signal. Every device-boundary operation goes through here.
func Ioctl(fd int, req uint, arg unsafe.Pointer) error {
	for {
		_, _, err := syscall.Syscall(syscall.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(arg))
		if err == syscall.EINTR {
			continue
		}
		if err != 0 {
			return err
		}
		return nil
	}
}
