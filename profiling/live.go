//go:build profiling_live

package profiling

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
)

const profileAddr = "127.0.0.1:7070"

func Start() Stopper {
	fmt.Println("live profiling at http://" + profileAddr + "/debug/pprof/")

	go func() {
		fmt.Println(http.ListenAndServe(profileAddr, nil))
	}()

	return NopStopper{}
}
