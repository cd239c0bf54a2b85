// Command libbattinfo is built with -buildmode=c-shared and exports the
// battery accessor to C callers. See include/battery_info.h.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"context"
	"os"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battinfo/pkg/accessor"
	"github.com/charlie0129/battinfo/pkg/channel"
	"github.com/charlie0129/battinfo/pkg/utils/osver"
)

// EnvLogLevel sets the logrus level of the library. Defaults to warn.
const EnvLogLevel = "BATTINFO_LOG_LEVEL"

func init() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)
	if lvl, err := logrus.ParseLevel(os.Getenv(EnvLogLevel)); err == nil {
		logrus.SetLevel(lvl)
	}
}

//export battery_info_get_level
func battery_info_get_level() C.int32_t {
	return C.int32_t(accessor.Shared().GetLevel())
}

//export battery_info_is_charging
func battery_info_is_charging() C.int32_t {
	return C.int32_t(accessor.Shared().IsCharging())
}

//export battery_info_get_state
func battery_info_get_state() C.int32_t {
	return C.int32_t(accessor.Shared().GetState())
}

// battery_info_platform_version returns a string owned by the caller, which
// must release it with battery_info_free_string.
//
//export battery_info_platform_version
func battery_info_platform_version() *C.char {
	h := channel.NewHandler(accessor.Shared(), osver.Platform)
	res := h.Handle(context.Background(), channel.Call{Method: channel.MethodGetPlatformVersion})
	s, _ := res.Value.(string)
	return C.CString(s)
}

//export battery_info_free_string
func battery_info_free_string(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

// main is required by c-shared build mode and never runs.
func main() {}
