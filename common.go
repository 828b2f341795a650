package selenite

import (
	"github.com/golang/glog"
)

var debugFlag = false

// SetDebug sets debug mode. When enabled, table reads and page turns are
// logged through glog.
func SetDebug(debug bool) {
	debugFlag = debug
}

func debugLog(format string, args ...interface{}) {
	if !debugFlag {
		return
	}
	glog.Infof(format, args...)
}
