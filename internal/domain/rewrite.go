package domain

import (
	m "skstress.dev/pkg/skstress/internal/model"
)

// rewriteOrder returns the order in which n positions are visited by the
// replacement probes of the given mode:
//
//   - basic visits front to back
//   - concurrent interleaves thirds round-robin, approximating several
//     editors typing at once
//   - insideOut alternates outward from the middle
//
// RewriteNone has no replacement probes and yields no order.
func rewriteOrder(n int, mode m.RewriteMode) []int {
	if n <= 0 || mode == m.RewriteNone {
		return nil
	}

	switch mode {
	case m.RewriteConcurrent:
		return concurrentOrder(n)
	case m.RewriteInsideOut:
		return insideOutOrder(n)
	default:
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}

		return order
	}
}

func concurrentOrder(n int) []int {
	const streams = 3

	chunk := (n + streams - 1) / streams
	order := make([]int, 0, n)

	for step := 0; step < chunk; step++ {
		for stream := 0; stream < streams; stream++ {
			i := stream*chunk + step
			if i < n {
				order = append(order, i)
			}
		}
	}

	return order
}

func insideOutOrder(n int) []int {
	order := make([]int, 0, n)
	left := (n - 1) / 2
	right := left + 1

	for left >= 0 || right < n {
		if left >= 0 {
			order = append(order, left)
			left--
		}

		if right < n {
			order = append(order, right)
			right++
		}
	}

	return order
}
