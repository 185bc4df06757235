package spreduce

import "github.com/katalvlaran/seymour/ternary"

// bipartite node: row r is node r, column c is node (numRows + c).
func classifyResidual(res *Result) {
	rows := res.Residual.NumRows()
	cols := res.Residual.NumCols()
	dense := res.Residual.Dense()

	n := rows + cols
	adj := make([][]int, n)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if dense[i][j] != 0 {
				adj[i] = append(adj[i], rows+j)
				adj[rows+j] = append(adj[rows+j], i)
			}
		}
	}

	if cut, ok := findArticulation(adj); ok {
		first, second := splitAroundCut(adj, n, cut)
		sep := &Separation{}
		for _, node := range first {
			if node < rows {
				sep.RowsFirst = append(sep.RowsFirst, res.ResidualRows[node])
			} else {
				sep.ColsFirst = append(sep.ColsFirst, res.ResidualCols[node-rows])
			}
		}
		for _, node := range second {
			if node < rows {
				sep.RowsSecond = append(sep.RowsSecond, res.ResidualRows[node])
			} else {
				sep.ColsSecond = append(sep.ColsSecond, res.ResidualCols[node-rows])
			}
		}
		res.Outcome = OutcomeTwoSeparation
		res.Separation = sep

		return
	}

	cycle := findCycle(adj)
	var cycleRows, cycleCols []int
	for _, node := range cycle {
		if node < rows {
			cycleRows = append(cycleRows, res.ResidualRows[node])
		} else {
			cycleCols = append(cycleCols, res.ResidualCols[node-rows])
		}
	}
	sortInts(cycleRows)
	sortInts(cycleCols)

	res.Outcome = OutcomeWheel
	res.Violator = buildViolatorSubmatrix(cycleRows, cycleCols)
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// buildViolatorSubmatrix expresses the cycle's rows/columns (already in
// original-matrix indices) as a Submatrix sized to the smallest bound that
// fits them, since the caller only has original indices at this point, not
// the original matrix's own dimensions.
func buildViolatorSubmatrix(rowsOrig, colsOrig []int) *ternary.Submatrix {
	maxRow, maxCol := -1, -1
	for _, r := range rowsOrig {
		if r > maxRow {
			maxRow = r
		}
	}
	for _, c := range colsOrig {
		if c > maxCol {
			maxCol = c
		}
	}
	sub, err := ternary.NewSubmatrix(maxRow+1, maxCol+1, rowsOrig, colsOrig)
	if err != nil {
		return nil
	}

	return sub
}

// findArticulation returns a cut vertex of the graph described by adj, if
// one exists, via a standard DFS low-link sweep.
func findArticulation(adj [][]int) (int, bool) {
	n := len(adj)
	visited := make([]bool, n)
	disc := make([]int, n)
	low := make([]int, n)
	timer := 0
	cutFound := -1

	var dfs func(u, parent int)
	dfs = func(u, parent int) {
		visited[u] = true
		timer++
		disc[u] = timer
		low[u] = timer
		children := 0

		for _, v := range adj[u] {
			if v == parent {
				continue
			}
			if visited[v] {
				if disc[v] < low[u] {
					low[u] = disc[v]
				}

				continue
			}
			children++
			dfs(v, u)
			if low[v] < low[u] {
				low[u] = low[v]
			}
			if parent != -1 && low[v] >= disc[u] && cutFound == -1 {
				cutFound = u
			}
		}
		if parent == -1 && children > 1 && cutFound == -1 {
			cutFound = u
		}
	}

	for u := 0; u < n; u++ {
		if !visited[u] {
			dfs(u, -1)
		}
	}

	if cutFound == -1 {
		return 0, false
	}

	return cutFound, true
}

// splitAroundCut partitions every node other than cut into two groups by
// which connected component of adj-minus-cut they fall into: the first
// component found, and everything else.
func splitAroundCut(adj [][]int, n, cut int) ([]int, []int) {
	visited := make([]bool, n)
	visited[cut] = true

	var firstComponent []int
	started := false
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		if !started {
			started = true
			var stack []int
			stack = append(stack, start)
			visited[start] = true
			for len(stack) > 0 {
				u := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				firstComponent = append(firstComponent, u)
				for _, v := range adj[u] {
					if !visited[v] {
						visited[v] = true
						stack = append(stack, v)
					}
				}
			}
		}
	}

	firstSet := make(map[int]bool, len(firstComponent))
	for _, u := range firstComponent {
		firstSet[u] = true
	}

	var second []int
	for u := 0; u < n; u++ {
		if u != cut && !firstSet[u] {
			second = append(second, u)
		}
	}

	return firstComponent, second
}

// findCycle returns one closed walk in adj, found via DFS back edges,
// certifying a wheel minor once SP-reduction and the 2-separation check
// have both failed to simplify the residual further.
func findCycle(adj [][]int) []int {
	n := len(adj)
	visited := make([]bool, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	var cycle []int
	var dfs func(u, p int) bool
	dfs = func(u, p int) bool {
		visited[u] = true
		for _, v := range adj[u] {
			if v == p {
				continue
			}
			if visited[v] {
				// Found a back edge u -> v: walk u back up to v via parent
				// pointers to reconstruct the cycle.
				cycle = append(cycle, v)
				for x := u; x != v; x = parent[x] {
					cycle = append(cycle, x)
				}

				return true
			}
			parent[v] = u
			if dfs(v, u) {
				return true
			}
		}

		return false
	}

	for u := 0; u < n; u++ {
		if !visited[u] {
			if dfs(u, -1) {
				return cycle
			}
		}
	}

	return nil
}
