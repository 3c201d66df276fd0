package app

import (
	goflag "flag"
	"runtime"
	"strings"
	"sync"

	"randgen/pkg/util/log"
)

var (
	goFlags  = goflag.NewFlagSet("klog", goflag.ContinueOnError)
	initOnce sync.Once
)

// initFlag registers the klog flags once per process.
func initFlag() {
	initOnce.Do(func() {
		log.InitFlags(goFlags)
	})
}

// FormatBaseName is formatted as an executable file name under different
// operating systems according to the given name.
func FormatBaseName(basename string) string {
	// Make case-insensitive and strip executable suffix if present
	if runtime.GOOS == "windows" {
		basename = strings.ToLower(basename)
		basename = strings.TrimSuffix(basename, ".exe")
	}

	return basename
}
