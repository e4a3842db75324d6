//go:build windows

package app

import "golang.org/x/sys/windows"

// flushPendingInput drops keystrokes typed while the picker was closing so
// they do not reach the calling shell.
func flushPendingInput() {
	handle, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return
	}
	_ = windows.FlushConsoleInputBuffer(handle)
}
