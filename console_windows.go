package main

import (
	"log"
	"os"
	"syscall"
)

const attachParentProcess = ^uint32(0) // (DWORD)-1

var (
	modkernel32       = syscall.NewLazyDLL("kernel32.dll")
	procAttachConsole = modkernel32.NewProc("AttachConsole")
)

func attachConsole(dwParentProcess uint32) (ok bool, lasterr error) {
	r1, _, lasterr := syscall.SyscallN(procAttachConsole.Addr(), uintptr(dwParentProcess))
	return r1 != 0, lasterr
}

// init hooks the GUI binary up to the console it was started from so log output stays visible.
func init() {
	ok, lasterr := attachConsole(attachParentProcess)
	if !ok {
		if lasterr != nil {
			log.Printf("attachConsole failed: %v", lasterr)
		}
		return
	}
	hout, err := syscall.GetStdHandle(syscall.STD_OUTPUT_HANDLE)
	if err != nil {
		log.Printf("stdout connection error: %v", err)
	}
	herr, err := syscall.GetStdHandle(syscall.STD_ERROR_HANDLE)
	if err != nil {
		log.Printf("stderr connection error: %v", err)
	}
	os.Stdout = os.NewFile(uintptr(hout), "/dev/stdout")
	os.Stderr = os.NewFile(uintptr(herr), "/dev/stderr")
	log.SetOutput(os.Stderr)
}
