package shared

import (
	"fmt"
	"os"
)

//DebugEnvKey enables debug logging when set
const DebugEnvKey = "VPATH_DEBUG"

var logFn func(format string, args []interface{})

func init() {
	if os.Getenv(DebugEnvKey) == "" {
		logFn = func(format string, args []interface{}) {}
	} else {
		logFn = func(format string, args []interface{}) {
			fmt.Printf("[Logger] "+format+"\n", args...)
		}
	}
}

//Log logs debug message if VPATH_DEBUG is set
func Log(message string, args ...interface{}) {
	logFn(message, args)
}
