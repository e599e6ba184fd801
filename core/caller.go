package core

import (
	"path/filepath"
	"runtime"
	"strings"
)

// CallerInfo contains information about a stack frame
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// GetCaller retrieves caller information. skip follows runtime.Caller:
// 0 identifies the caller of GetCaller.
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}
	return callerFromPC(pc, file, line)
}

// CallerFromPC resolves a program counter, as stored by log/slog, into
// caller information.
func CallerFromPC(pc uintptr) CallerInfo {
	if pc == 0 {
		return CallerInfo{}
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.File == "" {
		return CallerInfo{}
	}
	return CallerInfo{
		File:      frame.File,
		ShortFile: filepath.Base(frame.File),
		Line:      frame.Line,
		Function:  shortFunction(frame.Function),
		Defined:   true,
	}
}

func callerFromPC(pc uintptr, file string, line int) CallerInfo {
	var funcName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  shortFunction(funcName),
		Defined:   true,
	}
}

// shortFunction strips the import path from a fully qualified function
// name: "github.com/a/b/pkg.(*T).M" becomes "pkg.(*T).M".
func shortFunction(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Locate returns a copy of r carrying the location described by c. An
// undefined CallerInfo leaves r unchanged.
func (c CallerInfo) Locate(r Record) Record {
	if !c.Defined || c.Function == "" {
		return r
	}
	return r.WithLocation(c.ShortFile, c.Line, c.Function)
}
