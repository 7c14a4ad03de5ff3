package detect

// dbscan groups points by density: a point with at least minPts neighbors
// within eps (the point itself counts) seeds a cluster, which then absorbs
// the neighborhoods of every core member it reaches. Returns clusters as
// member index lists in discovery order; unassigned points are noise and
// omitted. Deterministic for a fixed input order.
func dbscan(n, minPts int, eps float64, dist func(i, j int) float64) [][]int {
	const (
		unvisited = 0
		noise     = -1
	)
	labels := make([]int, n)

	regionQuery := func(p int) []int {
		neighbors := make([]int, 0, minPts)
		for q := 0; q < n; q++ {
			if dist(p, q) <= eps {
				neighbors = append(neighbors, q)
			}
		}
		return neighbors
	}

	var clusters [][]int
	for p := 0; p < n; p++ {
		if labels[p] != unvisited {
			continue
		}
		neighbors := regionQuery(p)
		if len(neighbors) < minPts {
			labels[p] = noise
			continue
		}

		id := len(clusters) + 1
		labels[p] = id
		members := []int{p}

		queue := append([]int(nil), neighbors...)
		for i := 0; i < len(queue); i++ {
			q := queue[i]
			if labels[q] == noise {
				// border point, joins the cluster but does not expand it
				labels[q] = id
				members = append(members, q)
				continue
			}
			if labels[q] != unvisited {
				continue
			}
			labels[q] = id
			members = append(members, q)
			if qNeighbors := regionQuery(q); len(qNeighbors) >= minPts {
				queue = append(queue, qNeighbors...)
			}
		}
		clusters = append(clusters, members)
	}
	return clusters
}
