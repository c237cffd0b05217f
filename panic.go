package asciigif

import (
	"log"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

var (
	panicHookOnce sync.Once
	panicHook     atomic.Value // func(v interface{}, stack []byte)
	panicLog      = log.New(os.Stderr, "asciigif: ", log.LstdFlags)
)

// InitPanicHook installs a reporter that logs any panic raised during a
// conversion, with its stack, to stderr before the panic continues. It is safe
// to call any number of times from any goroutine; only the first call has an
// effect.
func InitPanicHook() {
	panicHookOnce.Do(func() {
		panicHook.Store(func(v interface{}, stack []byte) {
			panicLog.Printf("panic: %v\n%s", v, stack)
		})
	})
}

// reportPanic must be deferred directly. Without a hook installed it leaves
// panics alone.
func reportPanic() {
	hook, _ := panicHook.Load().(func(interface{}, []byte))
	if hook == nil {
		return
	}
	if v := recover(); v != nil {
		hook(v, debug.Stack())
		panic(v)
	}
}
