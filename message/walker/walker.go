// Package walker visits the parts of a MIME tree.
package walker

import (
	"github.com/zostay/go-eml/message"
)

// PartWalker is a function that can be processed for each part of a message.
// The depth is 0 for the root, and i is the index of the part within its
// parent.
type PartWalker func(depth, i int, part message.Part) error

// Walk performs a depth first search for all the parts of a message starting
// with the given part itself. It calls the PartWalker for each part. If the
// PartWalker returns an error, then processing stops immediately and the error
// is returned.
func (w PartWalker) Walk(root message.Part) error {
	type frame struct {
		depth int
		i     int
		part  message.Part
	}

	stack := []frame{{0, 0, root}}
	for len(stack) > 0 {
		end := len(stack) - 1
		f := stack[end]
		stack = stack[:end]

		if err := w(f.depth, f.i, f.part); err != nil {
			return err
		}

		if !f.part.IsMultipart() {
			continue
		}

		parts := f.part.GetParts()
		for i := len(parts) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.depth + 1, i, parts[i]})
		}
	}

	return nil
}

// WalkLeaves calls the PartWalker only for leaf parts.
func (w PartWalker) WalkLeaves(root message.Part) error {
	var lw PartWalker = func(depth, i int, part message.Part) error {
		if part.IsMultipart() {
			return nil
		}
		return w(depth, i, part)
	}
	return lw.Walk(root)
}

// WalkMultipart calls the PartWalker only for branch parts.
func (w PartWalker) WalkMultipart(root message.Part) error {
	var mw PartWalker = func(depth, i int, part message.Part) error {
		if !part.IsMultipart() {
			return nil
		}
		return w(depth, i, part)
	}
	return mw.Walk(root)
}
