package wad

import (
	"fmt"
	"io"
)

// FprintTree writes the level's BSP tree in an indented format, right child first.
func FprintTree(w io.Writer, l *Level) error {
	if len(l.Nodes) == 0 {
		_, err := fmt.Fprintln(w, "- (no nodes)")
		return err
	}
	var printRecursive func(index int, subsector bool, prefix string, depth int) error
	printRecursive = func(index int, subsector bool, prefix string, depth int) error {
		if subsector {
			if index >= len(l.Subsectors) {
				return fmt.Errorf("%w: subsector %d of %d", ErrOutOfBounds, index, len(l.Subsectors))
			}
			s := l.Subsectors[index]
			_, err := fmt.Fprintf(w, "%s- subsector %d: %d segs from %d\n", prefix, index, s.NumSegs, s.FirstSeg)
			return err
		}
		if index >= len(l.Nodes) || depth > len(l.Nodes) {
			return fmt.Errorf("%w: node %d of %d", ErrOutOfBounds, index, len(l.Nodes))
		}
		n := &l.Nodes[index]
		if _, err := fmt.Fprintf(w, "%s- node %d: (%d,%d) step (%d,%d)\n", prefix, index, n.LineX, n.LineY, n.StepX, n.StepY); err != nil {
			return err
		}
		for side := 0; side < 2; side++ {
			child, isSub := n.Child(side)
			if err := printRecursive(child, isSub, prefix+"   ", depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	return printRecursive(l.RootNode(), false, "", 0)
}
