//go:build profiling_cpu

package profiling

import (
	"fmt"

	"github.com/pkg/profile"
)

func Start() Stopper {
	fmt.Println("cpu profiling enabled, writing to cwd")

	return profile.Start(
		profile.CPUProfile,
		profile.ProfilePath("."),
	)
}
