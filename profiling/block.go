//go:build profiling_block

package profiling

import (
	"fmt"

	"github.com/pkg/profile"
)

func Start() Stopper {
	fmt.Println("block profiling enabled, writing to cwd")

	return profile.Start(
		profile.BlockProfile,
		profile.ProfilePath("."),
	)
}
