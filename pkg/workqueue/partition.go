// Package workqueue splits an image into horizontal strips and hands them
// out to render workers through a single atomic cursor.
// Claim sits on the hot path of every worker, so the package does not log.
package workqueue

import (
	"fmt"

	"julia-render/internal/domain"
)

// Partition splits rows [0, height) into strips of stripSize rows.
// The last strip absorbs the remainder, so its YEnd is always height-1.
func Partition(height, stripSize int) ([]domain.Strip, error) {
	if stripSize <= 0 {
		return nil, fmt.Errorf("partition: %w: %d", domain.ErrInvalidStripSize, stripSize)
	}
	if height <= 0 {
		return nil, fmt.Errorf("partition: %w: height %d", domain.ErrInvalidDimensions, height)
	}

	count := (height + stripSize - 1) / stripSize
	strips := make([]domain.Strip, count)
	for i := range count {
		start := i * stripSize
		end := start + stripSize - 1
		if i == count-1 {
			end = height - 1
		}
		strips[i] = domain.Strip{YStart: start, YEnd: end}
	}
	return strips, nil
}
