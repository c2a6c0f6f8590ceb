package decode

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	sent "github.com/speedcell4/biaffineparser/sentence"
)

// Heads decodes an arc score matrix into one head index per token.
//
// arc is at least n×n, entry (i, j) scoring token j as the head of token i.
// Rows and columns at n and beyond are padding and never considered. The
// returned slice has length n with index 0 (the root) fixed to 0.
//
// The greedy per-token argmax is used as-is when it already forms a valid
// tree. Otherwise the maximum spanning arborescence is computed with
// Chu-Liu/Edmonds, constrained to a single root attachment: the root slot
// goes to the token with the highest root-arc score among the greedy root
// attachments (or among all tokens when the greedy pass chose none). All
// argmax ties break toward the lowest index.
func Heads(arc *mat.Dense, n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("decode: sentence length %d", n)
	}

	rows, cols := arc.Dims()
	if rows < n || cols < n {
		return nil, fmt.Errorf("decode: arc matrix is %dx%d, sentence length %d", rows, cols, n)
	}

	heads := make([]int, n)
	for i := 1; i < n; i++ {
		best := -1
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}

			if best == -1 || arc.At(i, j) > arc.At(i, best) {
				best = j
			}
		}

		heads[i] = best
	}

	if sent.IsTree(heads) {
		return heads, nil
	}

	return repair(arc, heads, n), nil
}

// Labels picks, for each finalized arc, the argmax label id. labels[i] is
// the per-head label distribution matrix of dependent i, heads the output
// of Heads. Index 0 carries the first label id as a placeholder for the
// root.
func Labels(labels []*mat.Dense, heads []int) ([]int, error) {
	n := len(heads)
	if len(labels) < n {
		return nil, fmt.Errorf("decode: %d label matrices, sentence length %d", len(labels), n)
	}

	out := make([]int, n)
	for i := 1; i < n; i++ {
		rows, cols := labels[i].Dims()
		if heads[i] >= rows || cols < 1 {
			return nil, fmt.Errorf("decode: label matrix of token %d is %dx%d, head %d", i, rows, cols, heads[i])
		}

		best := 0
		for l := 1; l < cols; l++ {
			if labels[i].At(heads[i], l) > labels[i].At(heads[i], best) {
				best = l
			}
		}

		out[i] = best
	}

	return out, nil
}

// repair rebuilds an invalid greedy assignment as a root-constrained
// maximum spanning arborescence.
func repair(arc *mat.Dense, greedy []int, n int) []int {
	// pick the single root attachment
	root := -1
	for i := 1; i < n; i++ {
		if greedy[i] != 0 {
			continue
		}

		if root == -1 || arc.At(i, 0) > arc.At(root, 0) {
			root = i
		}
	}

	if root == -1 {
		for i := 1; i < n; i++ {
			if root == -1 || arc.At(i, 0) > arc.At(root, 0) {
				root = i
			}
		}
	}

	// weights[dep][head], the root edge only open for the chosen token
	w := make([][]float64, n)
	for i := 0; i < n; i++ {
		w[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			switch {
			case i == j, i == 0:
				w[i][j] = math.Inf(-1)
			case j == 0 && i != root:
				w[i][j] = math.Inf(-1)
			default:
				w[i][j] = arc.At(i, j)
			}
		}
	}

	return arborescence(w)
}

// arborescence computes the maximum spanning arborescence rooted at node 0
// by Chu-Liu/Edmonds with recursive cycle contraction. w[dep][head] is the
// edge score, -Inf marks a forbidden edge. Every non-root node must have at
// least one allowed head. Ties break toward the lowest head index.
func arborescence(w [][]float64) []int {
	n := len(w)

	parent := make([]int, n)
	for v := 1; v < n; v++ {
		best := -1
		for u := 0; u < n; u++ {
			if u == v || math.IsInf(w[v][u], -1) {
				continue
			}

			if best == -1 || w[v][u] > w[v][best] {
				best = u
			}
		}

		parent[v] = best
	}

	cycle := findCycle(parent)
	if cycle == nil {
		return parent
	}

	inCycle := make([]bool, n)
	for _, v := range cycle {
		inCycle[v] = true
	}

	// contracted node ids: outside nodes keep relative order, the cycle
	// becomes the last node
	toNew := make([]int, n)
	toOld := []int{}
	for v := 0; v < n; v++ {
		if inCycle[v] {
			continue
		}

		toNew[v] = len(toOld)
		toOld = append(toOld, v)
	}
	cnode := len(toOld)
	m := cnode + 1

	cw := make([][]float64, m)
	for i := range cw {
		cw[i] = make([]float64, m)
		for j := range cw[i] {
			cw[i][j] = math.Inf(-1)
		}
	}

	// bestLeave[v]: the cycle node acting as head when outside dep v picks
	// the contracted node. bestEnter[u]: the cycle node acting as dep when
	// the contracted node picks outside head u.
	bestLeave := make([]int, n)
	bestEnter := make([]int, n)
	for i := range bestLeave {
		bestLeave[i] = -1
		bestEnter[i] = -1
	}

	for v := 0; v < n; v++ {
		if inCycle[v] {
			continue
		}

		for u := 0; u < n; u++ {
			if math.IsInf(w[v][u], -1) || u == v {
				continue
			}

			if !inCycle[u] {
				cw[toNew[v]][toNew[u]] = w[v][u]
				continue
			}

			if bestLeave[v] == -1 || w[v][u] > w[v][bestLeave[v]] {
				bestLeave[v] = u
			}
			cw[toNew[v]][cnode] = w[v][bestLeave[v]]
		}
	}

	for _, v := range cycle {
		for u := 0; u < n; u++ {
			if inCycle[u] || math.IsInf(w[v][u], -1) {
				continue
			}

			// gain of rerouting v to u instead of its cycle head
			gain := w[v][u] - w[v][parent[v]]
			if bestEnter[u] == -1 || gain > w[bestEnter[u]][u]-w[bestEnter[u]][parent[bestEnter[u]]] {
				bestEnter[u] = v
			}
			cw[cnode][toNew[u]] = w[bestEnter[u]][u] - w[bestEnter[u]][parent[bestEnter[u]]]
		}
	}

	cparent := arborescence(cw)

	out := make([]int, n)
	for v := 0; v < n; v++ {
		if v == 0 {
			continue
		}

		if inCycle[v] {
			out[v] = parent[v]
			continue
		}

		p := cparent[toNew[v]]
		if p == cnode {
			out[v] = bestLeave[v]
		} else {
			out[v] = toOld[p]
		}
	}

	// break the cycle at the chosen entering edge
	enterHead := toOld[cparent[cnode]]
	out[bestEnter[enterHead]] = enterHead

	return out
}

// findCycle returns the nodes of one cycle in the parent graph, or nil.
// Node 0 has no parent and is never part of a cycle.
func findCycle(parent []int) []int {
	n := len(parent)

	// 0 unseen, 1 on current path, 2 done
	state := make([]int, n)
	state[0] = 2

	for start := 1; start < n; start++ {
		if state[start] != 0 {
			continue
		}

		v := start
		for state[v] == 0 {
			state[v] = 1
			v = parent[v]
		}

		if state[v] == 1 {
			// walk the cycle
			cycle := []int{v}
			for u := parent[v]; u != v; u = parent[u] {
				cycle = append(cycle, u)
			}

			return cycle
		}

		for u := start; state[u] == 1; u = parent[u] {
			state[u] = 2
		}
	}

	return nil
}
