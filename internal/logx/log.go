// Package logx is a small leveled logger with a package-level call-site
// idiom: logx.DEBUG("...", args...) rather than a logger value threaded
// through every call. DEBUG/INFO/WARN write to stderr when the
// configured level permits; ERROR always does.
package logx

import (
	"fmt"
	"os"
	"sync/atomic"
)

// Level orders verbosity from most to least: Debug is the most verbose.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var current int32 = int32(LevelInfo)

// SetLevel changes the global minimum level that is printed.
func SetLevel(l Level) { atomic.StoreInt32(&current, int32(l)) }

func enabled(l Level) bool { return int32(l) >= atomic.LoadInt32(&current) }

func printf(l Level, prefix, format string, args ...interface{}) {
	if !enabled(l) {
		return
	}
	fmt.Fprintf(os.Stderr, prefix+format+"\n", args...)
}

func DEBUG(format string, args ...interface{}) { printf(LevelDebug, "DEBUG: ", format, args...) }
func INFO(format string, args ...interface{})  { printf(LevelInfo, "INFO: ", format, args...) }
func WARN(format string, args ...interface{})  { printf(LevelWarn, "WARN: ", format, args...) }
func ERROR(format string, args ...interface{}) { printf(LevelError, "ERROR: ", format, args...) }
