//go:build profiling_mem

package profiling

import (
	"fmt"

	"github.com/pkg/profile"
)

func Start() Stopper {
	fmt.Println("mem profiling enabled, writing to cwd")

	return profile.Start(
		profile.MemProfile,
		profile.ProfilePath("."),
	)
}
