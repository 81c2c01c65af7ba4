package navmesh

import (
	"container/heap"
	"math"

	"matchsim/internal/geom"
)

// neighborOffsets are the 8-connected grid steps, diagonal cost sqrt(2).
var neighborOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

type cellKey struct{ col, row int }

type openEntry struct {
	key      cellKey
	priority float64
	index    int
}

type openHeap []*openEntry

func (h openHeap) Len() int            { return len(h) }
func (h openHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h openHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *openHeap) Push(x interface{}) { e := x.(*openEntry); e.index = len(*h); *h = append(*h, e) }
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// FindPath runs A* over the walkable grid from `from` to `to`, returning a
// sequence of cell-center waypoints (excluding the start, including the
// goal). Returns nil if either endpoint is unwalkable or unreachable.
func (n *Navmesh) FindPath(from, to geom.Vec3) []geom.Vec3 {
	startCol, startRow := n.cellOf(from.X, from.Z)
	goalCol, goalRow := n.cellOf(to.X, to.Z)
	start := cellKey{startCol, startRow}
	goal := cellKey{goalCol, goalRow}

	if !n.walkable[startRow*n.cols+startCol] || !n.walkable[goalRow*n.cols+goalCol] {
		return nil
	}
	if start == goal {
		return []geom.Vec3{to}
	}

	gScore := map[cellKey]float64{start: 0}
	cameFrom := map[cellKey]cellKey{}

	open := &openHeap{}
	heap.Init(open)
	heap.Push(open, &openEntry{key: start, priority: n.heuristic(start, goal)})

	visited := map[cellKey]bool{}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*openEntry).key
		if visited[cur] {
			continue
		}
		visited[cur] = true
		if cur == goal {
			return n.reconstruct(cameFrom, start, goal, to)
		}

		for _, off := range neighborOffsets {
			next := cellKey{cur.col + off[0], cur.row + off[1]}
			if next.col < 0 || next.col >= n.cols || next.row < 0 || next.row >= n.rows {
				continue
			}
			if !n.walkable[next.row*n.cols+next.col] {
				continue
			}
			step := 1.0
			if off[0] != 0 && off[1] != 0 {
				step = math.Sqrt2
			}
			tentative := gScore[cur] + step
			if existing, ok := gScore[next]; ok && tentative >= existing {
				continue
			}
			gScore[next] = tentative
			cameFrom[next] = cur
			heap.Push(open, &openEntry{key: next, priority: tentative + n.heuristic(next, goal)})
		}
	}
	return nil
}

func (n *Navmesh) heuristic(a, b cellKey) float64 {
	dx := float64(a.col - b.col)
	dz := float64(a.row - b.row)
	return math.Sqrt(dx*dx + dz*dz)
}

func (n *Navmesh) reconstruct(cameFrom map[cellKey]cellKey, start, goal cellKey, exactGoal geom.Vec3) []geom.Vec3 {
	path := []cellKey{goal}
	cur := goal
	for cur != start {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse into start->goal order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	out := make([]geom.Vec3, 0, len(path))
	for i, ck := range path {
		if i == 0 {
			continue // skip the start cell itself
		}
		if i == len(path)-1 {
			out = append(out, exactGoal)
			continue
		}
		out = append(out, n.cellCenter(ck.col, ck.row))
	}
	return out
}
