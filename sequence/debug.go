package sequence

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the handle, its storage block and the entries as a tree,
// for debugging purposes.
func Dump[T any](s *Sequence[T]) string {
	header := fmt.Sprintf("\nSequence(len=%d, refs=%d)\n", s.Len(), s.RefCount())
	printer := tp.New()
	if s.blk == nil {
		printer.AddNode("no storage")
		return header + printer.String()
	}
	branch := printer.AddBranch(s.blk.String())
	for i, e := range s.Entries() {
		branch.AddMetaNode(i, fmt.Sprintf("%s = %v", e.Name, e.Value))
	}
	return header + printer.String()
}
