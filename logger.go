package wad

import (
	"io"
	"log"
	"sync/atomic"
)

var (
	discardLogger = log.New(io.Discard, "", log.LstdFlags)
	current       atomic.Pointer[log.Logger]
)

// SetLogger sets the logger used to report load progress. Output is discarded by default, and
// a nil logger restores that. Safe to call while archives are in use.
func SetLogger(l *log.Logger) {
	current.Store(l)
}

func logger() *log.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return discardLogger
}
