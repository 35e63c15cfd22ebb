package logger

import (
	"runtime"
	"strings"
)

// dispatchDepth is the number of frames between runtime.Caller inside
// callerModule and the user's log statement: callerModule, dispatch, and
// the exported emit function or TargetLogger method.
const dispatchDepth = 3

// callerModule resolves the import path of the package containing the log
// statement skip frames up the stack.
func callerModule(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "<unknown>"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "<unknown>"
	}
	return packagePath(fn.Name())
}

// packagePath trims a runtime function name like
// "github.com/user/app/server.(*Conn).serve" down to the package import
// path "github.com/user/app/server".
func packagePath(name string) string {
	slash := strings.LastIndexByte(name, '/')
	dot := strings.IndexByte(name[slash+1:], '.')
	if dot < 0 {
		return name
	}
	return name[:slash+1+dot]
}
