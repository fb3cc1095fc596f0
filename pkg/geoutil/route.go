package geoutil

import "github.com/paulmach/orb"

// TotalDistance sums the consecutive-pair distances of a route over a
// distance matrix. No return-to-start leg.
func TotalDistance(route []int, matrix [][]float64) float64 {
	total := 0.0
	for i := 0; i < len(route)-1; i++ {
		total += matrix[route[i]][route[i+1]]
	}
	return total
}

// TwoOpt improves a route by segment reversal until a full pass yields no
// strictly shorter tour. Routes longer than 30 points bail out after one
// pass to bound the quadratic search. The result is always a permutation
// of the input indices.
func TwoOpt(route []int, matrix [][]float64) []int {
	best := append([]int(nil), route...)
	improved := true
	for improved {
		improved = false
		for i := 1; i < len(best)-2; i++ {
			for j := i + 1; j < len(best); j++ {
				if j-i == 1 {
					continue
				}
				candidate := append([]int(nil), best...)
				reverseSegment(candidate, i, j)
				if TotalDistance(candidate, matrix) < TotalDistance(best, matrix) {
					best = candidate
					improved = true
				}
			}
		}
		if len(best) > 30 {
			break
		}
	}
	return best
}

// reverseSegment reverses the half-open range [i, j).
func reverseSegment(route []int, i, j int) {
	for l, r := i, j-1; l < r; l, r = l+1, r-1 {
		route[l], route[r] = route[r], route[l]
	}
}

// OrderRoute returns a visiting order over points: greedy nearest-neighbour
// from start, then 2-opt refinement among the selected points. The start
// itself is not part of the refinement.
func OrderRoute(start orb.Point, points []orb.Point) []int {
	if len(points) == 0 {
		return []int{}
	}

	remaining := make([]int, len(points))
	for i := range points {
		remaining[i] = i
	}
	order := make([]int, 0, len(points))
	current := start
	for len(remaining) > 0 {
		bestPos := 0
		bestDist := Haversine(current, points[remaining[0]])
		for pos, idx := range remaining[1:] {
			if d := Haversine(current, points[idx]); d < bestDist {
				bestDist = d
				bestPos = pos + 1
			}
		}
		next := remaining[bestPos]
		order = append(order, next)
		current = points[next]
		remaining = append(remaining[:bestPos], remaining[bestPos+1:]...)
	}

	n := len(order)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Haversine(points[order[i]], points[order[j]])
			matrix[i][j] = d
			matrix[j][i] = d
		}
	}

	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	refined := TwoOpt(positions, matrix)

	result := make([]int, n)
	for i, pos := range refined {
		result[i] = order[pos]
	}
	return result
}
