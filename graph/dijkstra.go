package graph

import (
	"container/heap"
	"math"

	"avoidance-planner/errs"
)

// pqItem is one entry of the Dijkstra priority queue. Ties are broken by
// the lower vertex index for determinism.
type pqItem struct {
	node  int
	dist  float64
	index int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].node < pq[j].node
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x interface{}) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// ShortestPath runs Dijkstra from vertex 0 (start) to vertex 1 (finish) on
// g and returns the ordered vertex-index path excluding start and
// including finish as its last element.
func ShortestPath(g *Graph, start, finish int) ([]int, error) {
	if len(g.Edges[start]) == 0 {
		return nil, errs.New(errs.StartIsolated, "start vertex has no visible neighbours")
	}

	n := len(g.Vertices)
	dist := make([]float64, n)
	prev := make([]int, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[start] = 0

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{node: start, dist: 0})

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*pqItem)
		if visited[cur.node] {
			continue
		}
		if cur.dist > dist[cur.node] {
			continue // stale entry from a since-improved relaxation
		}
		visited[cur.node] = true

		if cur.node == finish {
			break
		}

		for neighbor, weight := range g.Edges[cur.node] {
			if visited[neighbor] {
				continue
			}
			candidate := dist[cur.node] + weight
			if candidate < dist[neighbor] {
				dist[neighbor] = candidate
				prev[neighbor] = cur.node
				heap.Push(pq, &pqItem{node: neighbor, dist: candidate})
			}
		}
	}

	if !visited[finish] {
		return nil, errs.New(errs.NoPath, "no path connects start to finish")
	}

	path := []int{}
	for v := finish; v != start; v = prev[v] {
		if v == -1 {
			return nil, errs.New(errs.NoPath, "no path connects start to finish")
		}
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
