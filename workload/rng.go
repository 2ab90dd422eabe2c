// SPDX-License-Identifier: MIT

package workload

import (
	"fmt"
	"math/rand"
)

// pick returns a uniform index in [0, n-1].
func pick(rng *rand.Rand, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: [0,%d)", ErrEmptyRange, n)
	}

	return rng.Intn(n), nil
}
