package game

// End-of-game scoring: route points rebuilt from the table, four points per
// unused station, ticket values gained or lost on reachability over the
// player's own routes, and a ten-point bonus for the longest continuous
// path (ties share it).

const (
	stationRefund    = 4
	longestPathBonus = 10
)

type edge struct {
	to     int
	length int
	route  int
}

// Score computes final scores once at termination, overwriting each
// player's running score with the full recomputation, and returns the
// per-player longest-path lengths.
func Score(gs *GameState) []int {
	longest := make([]int, len(gs.Players))

	for i, player := range gs.Players {
		var owned []Route
		for _, r := range gs.Routes {
			if r.Owner == player.ID {
				owned = append(owned, r)
			}
		}

		routeScore := 0
		adj := make(map[int][]edge)
		for _, r := range owned {
			routeScore += PointsForLength(r.Length)
			adj[r.From] = append(adj[r.From], edge{to: r.To, length: r.Length, route: r.ID})
			adj[r.To] = append(adj[r.To], edge{to: r.From, length: r.Length, route: r.ID})
		}

		stationScore := player.Stations * stationRefund

		ticketScore := 0
		for _, ticket := range player.Tickets {
			if connected(adj, ticket.From, ticket.To) {
				ticketScore += ticket.Points
			} else {
				ticketScore -= ticket.Points
			}
		}

		longest[i] = longestPath(adj)
		player.Score = routeScore + stationScore + ticketScore
	}

	best := 0
	for _, l := range longest {
		if l > best {
			best = l
		}
	}
	if best > 0 {
		for i, l := range longest {
			if l == best {
				gs.Players[i].Score += longestPathBonus
			}
		}
	}

	return longest
}

// connected runs a BFS over the player's own routes. No station borrowing:
// only the player's edges count.
func connected(adj map[int][]edge, from, to int) bool {
	if from == to {
		return true
	}
	visited := map[int]bool{from: true}
	queue := []int{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, e := range adj[current] {
			if e.to == to {
				return true
			}
			if !visited[e.to] {
				visited[e.to] = true
				queue = append(queue, e.to)
			}
		}
	}
	return false
}

// longestPath finds the longest simple chain of routes: each edge used at
// most once, node revisits allowed. Roots are the degree-1 nodes when any
// exist, otherwise every node; the used-edge set is scoped to the walk and
// restored on backtrack.
func longestPath(adj map[int][]edge) int {
	if len(adj) == 0 {
		return 0
	}

	var roots []int
	for node, edges := range adj {
		if len(edges) == 1 {
			roots = append(roots, node)
		}
	}
	if len(roots) == 0 {
		for node := range adj {
			roots = append(roots, node)
		}
	}

	used := make(map[int]bool)
	best := 0
	for _, root := range roots {
		if l := walk(adj, root, 0, used); l > best {
			best = l
		}
	}
	return best
}

func walk(adj map[int][]edge, node, length int, used map[int]bool) int {
	best := length
	for _, e := range adj[node] {
		if used[e.route] {
			continue
		}
		used[e.route] = true
		if l := walk(adj, e.to, length+e.length, used); l > best {
			best = l
		}
		delete(used, e.route)
	}
	return best
}
