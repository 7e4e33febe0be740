package learn_test

import (
	"testing"

	"github.com/asrivast28/ramble-go/ciquery"
	"github.com/asrivast28/ramble-go/counter"
)

// newTestOracle builds a 3-variable dataset over N rows where column 1 is an
// exact copy of column 0 (strongly dependent) and column 2 cycles with a
// period coprime to column 0's, so that over a common period their joint
// counts are exactly the product of the marginals (independent, G² = 0).
// This gives every algorithm family a
// clear, deterministic "keep 0, drop 2" decision to exercise against target 1.
func newTestOracle(t *testing.T) (*ciquery.Oracle, int) {
	t.Helper()
	const n = 120
	col0 := make([]int, n)
	col1 := make([]int, n)
	col2 := make([]int, n)
	for i := 0; i < n; i++ {
		col0[i] = i % 2
		col1[i] = col0[i]
		col2[i] = i % 3 % 2
	}
	tbl, err := counter.NewTable([][]int{col0, col1, col2})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return ciquery.NewOracle(tbl, ciquery.WithAlpha(0.05)), 3
}
