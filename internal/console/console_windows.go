//go:build windows

package console

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
	procFreeConsole      = kernel32.NewProc("FreeConsole")
	procGetWindowPID     = user32.NewProc("GetWindowThreadProcessId")
)

// Attached reports whether the console belongs to a shell the user started
// us from. A double-clicked binary gets a fresh console owned by itself.
func Attached() bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		return false
	}
	var pid uint32
	_, _, _ = procGetWindowPID.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	return pid != windows.GetCurrentProcessId()
}

// Detach releases the console so the window closes while we keep running.
func Detach() error {
	r, _, err := procFreeConsole.Call()
	if r == 0 {
		return err
	}
	return nil
}
