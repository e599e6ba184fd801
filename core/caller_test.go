package core

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCaller(t *testing.T) {
	caller := GetCaller(0)
	require.True(t, caller.Defined, "GetCaller() returned undefined CallerInfo")

	assert.Equal(t, "caller_test.go", caller.ShortFile)
	assert.True(t, strings.HasSuffix(caller.File, "caller_test.go"))
	assert.NotZero(t, caller.Line)
	assert.Equal(t, "core.TestGetCaller", caller.Function)
}

func TestCallerFromPC(t *testing.T) {
	var pcs [1]uintptr
	runtime.Callers(1, pcs[:])

	caller := CallerFromPC(pcs[0])
	require.True(t, caller.Defined)
	assert.Equal(t, "caller_test.go", caller.ShortFile)
	assert.Equal(t, "core.TestCallerFromPC", caller.Function)

	assert.False(t, CallerFromPC(0).Defined)
}

func TestCallerInfo_Locate(t *testing.T) {
	r := NewRecord(InfoLevel, "app", "msg")

	located := CallerInfo{ShortFile: "a.txt", Line: 12, Function: "foo", Defined: true}.Locate(r)
	assert.Equal(t, "a.txt", located.FileName)
	assert.Equal(t, 12, located.LineNumber)
	assert.Equal(t, "foo", located.MethodName)

	assert.Equal(t, r, CallerInfo{}.Locate(r))
}

func TestShortFunction(t *testing.T) {
	assert.Equal(t, "pkg.(*T).M", shortFunction("github.com/a/b/pkg.(*T).M"))
	assert.Equal(t, "main.main", shortFunction("main.main"))
}
