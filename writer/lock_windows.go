//go:build windows

package writer

import (
	"os"

	"golang.org/x/sys/windows"
)

// lockFile takes an exclusive lock on the maximum byte range, the
// conventional whole-file lock on Windows. LockFileEx always locks a
// range; spanning the largest possible one covers the file at any
// size.
func lockFile(f *os.File) error {
	ov := new(windows.Overlapped)
	return windows.LockFileEx(windows.Handle(f.Fd()), windows.LOCKFILE_EXCLUSIVE_LOCK, 0, ^uint32(0), ^uint32(0), ov)
}

func unlockFile(f *os.File) error {
	ov := new(windows.Overlapped)
	return windows.UnlockFileEx(windows.Handle(f.Fd()), 0, ^uint32(0), ^uint32(0), ov)
}
