// Package log is a thin wrapper over klog so callers do not import it
// directly.
package log

import (
	"flag"
	"fmt"

	"k8s.io/klog/v2"
)

// InitFlags registers the klog flags (-v, -logtostderr, ...) on fs.
// A nil fs means flag.CommandLine.
func InitFlags(fs *flag.FlagSet) {
	klog.InitFlags(fs)
}

func Info(args ...interface{}) {
	klog.InfoDepth(1, args...)
}

func Infof(format string, args ...interface{}) {
	klog.InfoDepth(1, fmt.Sprintf(format, args...))
}

// Error logs err with a message and optional key/value pairs.
func Error(err error, msg string, keysAndValues ...interface{}) {
	klog.ErrorS(err, msg, keysAndValues...)
}

func V(level klog.Level) klog.Verbose {
	return klog.V(level)
}

func Flush() {
	klog.Flush()
}
