package assess

const (
	// MaxBranching caps the branching factor assumed by ComputeDepth.
	MaxBranching = 18
	// NodeBudget is the default bound on the estimated searched nodes.
	NodeBudget = 100000

	MinDepth = 2
	MaxDepth = 5
)

// ComputeDepth picks the search depth for a board of boardSize with
// occupied marks so that the estimated node count stays under NodeBudget.
// The result is always in [MinDepth, MaxDepth].
func ComputeDepth(boardSize, occupied int) int {
	return computeDepth(boardSize*boardSize-occupied, NodeBudget, MaxDepth)
}

func computeDepth(emptyCount, nodeBudget, maxDepth int) int {
	b := min(MaxBranching, max(emptyCount, 0))

	depth := 1
	nodes := b
	for nodes*b < nodeBudget && depth < MaxDepth+1 {
		depth++
		nodes *= b
	}

	return min(maxDepth, max(MinDepth, depth-1))
}
