package cfg

import "github.com/l3aro/go-cflow/pkg/source"

// BuildBlocks partitions the statement sequence into contiguous basic
// blocks. The block for leader k spans [leaders[k], leaders[k+1]), the last
// one runs to the end of the sequence. Empty spans are dropped. Together
// the blocks cover every statement exactly once.
func BuildBlocks(stmts []source.Statement, leaders []int) []Block {
	labels := &labelSeq{prefix: "B"}

	var blocks []Block
	for k, start := range leaders {
		end := len(stmts)
		if k+1 < len(leaders) {
			end = leaders[k+1]
		}
		if start >= end {
			continue
		}
		blocks = append(blocks, Block{
			Label: labels.Next(),
			Stmts: stmts[start:end],
		})
	}
	return blocks
}
