package solve

import (
	"sort"

	"github.com/katalvlaran/sudoku/board"
)

// Chain engines built on the candidate link graph: single-digit
// X-Chains, full alternating inference chains, and 3D Medusa coloring.
//
// X-Chain and AIC both run an implication closure: assume a node
// false, follow a strong link (something else must be true), then weak
// links (its peers go false), and so on. Every node forced true by the
// assumption yields the disjunction "start or node", and a candidate
// incompatible with both sides of a disjunction falls.

// minChainDepth skips disjunctions short enough to be plain locked
// candidates or conjugate pairs.
const minChainDepth = 3

// findXChain reports the first single-digit chain elimination.
func findXChain(f *fabric) []Move {
	for d := uint8(1); d <= 9; d++ {
		var strong, weak [board.CellCount][]int
		present := [board.CellCount]bool{}
		for h := board.House(0); h < board.NumHouses; h++ {
			cc := f.houseCandCells(h, d)
			for i := 0; i < len(cc); i++ {
				present[cc[i]] = true
				for j := i + 1; j < len(cc); j++ {
					weak[cc[i]] = append(weak[cc[i]], cc[j])
					weak[cc[j]] = append(weak[cc[j]], cc[i])
				}
			}
			if len(cc) == 2 {
				strong[cc[0]] = append(strong[cc[0]], cc[1])
				strong[cc[1]] = append(strong[cc[1]], cc[0])
			}
		}

		for start := 0; start < board.CellCount; start++ {
			if !present[start] || len(strong[start]) == 0 {
				continue
			}
			forced := implicationClosure(board.CellCount, strong[:], weak[:], start)
			for other := 0; other < board.CellCount; other++ {
				if forced[other] < minChainDepth {
					continue
				}
				for cell := 0; cell < board.CellCount; cell++ {
					if f.values[cell] != 0 || !f.cands[cell].Has(d) || cell == start || cell == other {
						continue
					}
					if board.Sees(cell, start) && board.Sees(cell, other) {
						return []Move{elimination(XChain, cell, []uint8{d}, []int{start, other})}
					}
				}
			}
		}
	}
	return nil
}

// findAIC reports the first alternating inference chain elimination
// over the full candidate graph. A forced disjunction "start or other"
// removes any candidate weakly linked to both nodes; when the two
// nodes carry different digits, each digit also falls from the other
// node's cell if it sees it.
func findAIC(f *fabric) []Move {
	g := buildLinks(f)
	for start := 0; start < numNodes; start++ {
		if len(g.strong[start]) == 0 {
			continue
		}
		sc, sd := nodeCell(start), nodeDigit(start)
		forced := implicationClosure(numNodes, g.strong[:], g.weak[:], start)
		for other := 0; other < numNodes; other++ {
			if forced[other] < minChainDepth {
				continue
			}
			oc, od := nodeCell(other), nodeDigit(other)
			because := []int{sc, oc}

			if sd == od {
				for cell := 0; cell < board.CellCount; cell++ {
					if f.values[cell] != 0 || !f.cands[cell].Has(sd) || cell == sc || cell == oc {
						continue
					}
					if board.Sees(cell, sc) && board.Sees(cell, oc) {
						return []Move{elimination(AIC, cell, []uint8{sd}, because)}
					}
				}
				continue
			}
			if f.cands[sc].Has(od) && weaklyLinked(sc, od, other) {
				return []Move{elimination(AIC, sc, []uint8{od}, because)}
			}
			if f.cands[oc].Has(sd) && weaklyLinked(oc, sd, start) {
				return []Move{elimination(AIC, oc, []uint8{sd}, because)}
			}
		}
	}
	return nil
}

// implicationClosure assumes the start node false and alternates
// strong and weak inferences. It returns, per node, the link depth at
// which the node was forced TRUE (0 when never forced).
func implicationClosure(n int, strong, weak [][]int, start int) []int {
	const (
		unseen int8 = iota
		isTrue
		isFalse
	)
	state := make([]int8, n)
	depth := make([]int, n)
	forced := make([]int, n)
	state[start] = isFalse
	queue := []int{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if state[cur] == isFalse {
			for _, next := range strong[cur] {
				if state[next] != unseen {
					continue
				}
				state[next] = isTrue
				depth[next] = depth[cur] + 1
				forced[next] = depth[next]
				queue = append(queue, next)
			}
			continue
		}
		for _, next := range weak[cur] {
			if state[next] != unseen {
				continue
			}
			state[next] = isFalse
			depth[next] = depth[cur] + 1
			queue = append(queue, next)
		}
	}
	return forced
}

// findMedusa colors each strong-link component with two alternating
// colors. A color that repeats a digit in a house or doubles up in a
// cell is wholly false, promoting the other color to placements; an
// uncolored candidate incompatible with both colors is eliminated.
func findMedusa(f *fabric) []Move {
	g := buildLinks(f)
	visited := make([]bool, numNodes)

	for start := 0; start < numNodes; start++ {
		if visited[start] || len(g.strong[start]) == 0 {
			continue
		}
		color := map[int]int{start: 0}
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			for _, next := range g.strong[n] {
				if _, ok := color[next]; ok {
					continue
				}
				color[next] = 1 - color[n]
				visited[next] = true
				queue = append(queue, next)
			}
		}
		if len(color) < 4 {
			continue
		}
		if m := medusaMoves(f, color); m != nil {
			return m
		}
	}
	return nil
}

func medusaMoves(f *fabric, color map[int]int) []Move {
	nodes := make([][]int, 2)
	for n, c := range color {
		nodes[c] = append(nodes[c], n)
	}
	for c := range nodes {
		sort.Ints(nodes[c])
	}

	// Contradiction inside one color: the whole color is false.
	for c := 0; c <= 1; c++ {
		for i := 0; i < len(nodes[c]); i++ {
			for j := i + 1; j < len(nodes[c]); j++ {
				a, b := nodes[c][i], nodes[c][j]
				if nodeCell(a) == nodeCell(b) || weaklyLinked(nodeCell(a), nodeDigit(a), b) {
					winner := nodes[1-c][0]
					cells := make([]int, 0, len(color))
					for n := range color {
						cells = append(cells, nodeCell(n))
					}
					sort.Ints(cells)
					return []Move{placement(Medusa, nodeCell(winner), nodeDigit(winner), cells)}
				}
			}
		}
	}

	// Uncolored candidate clashing with both colors.
	for cell := 0; cell < board.CellCount; cell++ {
		if f.values[cell] != 0 {
			continue
		}
		for _, d := range f.cands[cell].Digits() {
			if _, ok := color[nodeOf(cell, d)]; ok {
				continue
			}
			var hit [2]bool
			for n, c := range color {
				if weaklyLinked(cell, d, n) {
					hit[c] = true
				}
			}
			if hit[0] && hit[1] {
				cells := make([]int, 0, len(color))
				for n := range color {
					cells = append(cells, nodeCell(n))
				}
				sort.Ints(cells)
				return []Move{elimination(Medusa, cell, []uint8{d}, cells)}
			}
		}
	}
	return nil
}
