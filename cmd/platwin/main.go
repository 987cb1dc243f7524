package main

import (
	"runtime"
)

func init() {
	// Win32 ties a window and its message queue to the creating thread, so
	// the window lives on the main goroutine for the life of the process.
	runtime.LockOSThread()
}

func main() {
	Execute()
}
