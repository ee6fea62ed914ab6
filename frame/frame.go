// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package frame provides a tree of named coordinate frames.
// Each frame holds a local pose relative to its parent; world poses
// and frame-to-frame differences are derived by composition through
// the spatial and se3 packages.
package frame

import (
	"github.com/rigidgeo/rigid/se3"
	"github.com/rigidgeo/rigid/spatial"
)

// Frame represents a single coordinate frame in a tree.
// Frames have at most one immediate ancestor and an arbitrary
// number of immediate descendants.
type Frame struct {
	next *Frame
	prev *Frame
	sub  *Frame

	local spatial.Pose

	// Name for the frame.
	// It is not used by frame code.
	Name string
}

// New creates a frame with the given local pose.
func New(name string, local spatial.Pose) *Frame {
	return &Frame{local: local, Name: name}
}

// Local returns the pose of f relative to its parent, or relative
// to the world if f has no parent.
func (f *Frame) Local() spatial.Pose { return f.local }

// SetLocal replaces the local pose of f.
func (f *Frame) SetLocal(p spatial.Pose) { f.local = p }

// Insert inserts frame sub as immediate descendant of frame f.
// sub must be either a descendant of f or part of an unrelated
// tree - it must not be an ancestor of frame f.
func (f *Frame) Insert(sub *Frame) {
	sub.Remove()
	sub.next = f.sub
	sub.prev = f
	if f.sub != nil {
		f.sub.prev = sub
	}
	f.sub = sub
}

// Remove removes frame f from its immediate ancestor.
func (f *Frame) Remove() {
	// Note that Frame.prev is only nil when the frame has no
	// ancestors, since the prev field of the first immediate
	// descendant is set to refer to its immediate ancestor.
	if f.prev != nil {
		if f.prev.sub == f {
			f.prev.sub = f.next
		} else {
			f.prev.next = f.next
		}
		if f.next != nil {
			f.next.prev = f.prev
		}
		f.prev = nil
		f.next = nil
	}
}

// Parent returns the immediate ancestor of f, or nil.
func (f *Frame) Parent() *Frame {
	cur, p := f, f.prev
	for p != nil && p.sub != cur {
		cur, p = p, p.prev
	}
	return p
}

// ForEach calls fn for each descendant of frame f.
// Ancestors are processed first.
// The tree must not be changed until this method returns.
func (f *Frame) ForEach(fn func(*Frame)) {
	if f.sub == nil {
		return
	}
	que := []*Frame{f.sub}
	for len(que) > 0 {
		for fr := que[0]; fr != nil; fr = fr.next {
			fn(fr)
			if sub := fr.sub; sub != nil {
				que = append(que, sub)
			}
		}
		que = que[1:]
	}
}

// Until calls fn for each descendant of frame f.
// Ancestors are processed first. If fn returns false, Until
// returns immediately.
// The tree must not be changed until this method returns.
func (f *Frame) Until(fn func(*Frame) bool) {
	if f.sub == nil {
		return
	}
	que := []*Frame{f.sub}
	for len(que) > 0 {
		for fr := que[0]; fr != nil; fr = fr.next {
			if !fn(fr) {
				return
			}
			if sub := fr.sub; sub != nil {
				que = append(que, sub)
			}
		}
		que = que[1:]
	}
}

// World returns the pose of f relative to the root of its tree.
func (f *Frame) World() spatial.Pose {
	w := f.local
	for p := f.Parent(); p != nil; p = p.Parent() {
		w = spatial.Compose(p.local, w)
	}
	return w
}

// RelativePose returns the pose of b expressed in a's frame.
// The two frames may belong to different trees as long as both
// trees share the same world.
func RelativePose(a, b *Frame) spatial.Pose {
	return spatial.Between(a.World(), b.World())
}

// Delta returns the tangent that carries a's world pose to b's,
// the residual an optimizer would consume.
func Delta(a, b *Frame, eps float64) se3.Tangent[float64] {
	return spatial.Delta(a.World(), b.World(), eps)
}
