package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/g-m-twostay/go-bst/Render"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// session holds the tree the commands work on and how to talk to the user.
type session struct {
	tree     *Trees.BSTree[int, uint32]
	out      io.Writer
	opts     Render.Options
	fill     int
	ok, warn *color.Color
}

func newSession(cctx *cli.Context) *session {
	keys := cctx.IntSlice("keys")
	s := &session{
		tree: Trees.From[int, uint32](keys),
		out:  cctx.App.Writer,
		opts: Render.Options{Width: cctx.Int("width"), NoColor: cctx.Bool("no-color")},
		fill: cctx.Int("fill"),
		ok:   color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
	}
	if s.opts.Width <= 0 {
		if f, isFile := s.out.(*os.File); isFile {
			s.opts.Width = Render.TermWidth(f)
		}
	}
	if s.opts.NoColor {
		s.ok.DisableColor()
		s.warn.DisableColor()
	}
	log.WithFields(logrus.Fields{"keys": len(keys), "depth": s.tree.Depth()}).Debug("tree built")
	return s
}

func (s *session) say(c *color.Color, format string, a ...any) {
	c.Fprintf(s.out, format+"\n", a...)
}

func (s *session) add(v int) {
	if !s.tree.Insert(v) {
		s.say(s.warn, "No room for node %d - nothing added.", v)
		return
	}
	s.say(s.ok, "Node %d added.", v)
}

// maxDrawDepth bounds the trees that get drawn: the level array of a tree of
// depth D has 2^D-1 slots.
const maxDrawDepth = 16

// drawable says why the tree isn't drawn when it's too deep.
func (s *session) drawable() bool {
	if d := s.tree.Depth(); d > maxDrawDepth {
		s.say(s.warn, "Tree is too deep to draw (depth %d > %d) - in order: %s", d, maxDrawDepth, s.tree.String())
		return false
	}
	return true
}

func (s *session) show() error {
	if !s.drawable() {
		return nil
	}
	return Render.Levels(s.out, s.tree.Levels(), s.opts)
}

func (s *session) hierarchy() error {
	if !s.drawable() {
		return nil
	}
	_, e := io.WriteString(s.out, Render.Hierarchy(s.tree.Levels()))
	return e
}

func (s *session) info() {
	fmt.Fprintf(s.out, "Size: %d, depth: %d.\nIn order: %s\n", s.tree.Size(), s.tree.Depth(), s.tree.String())
}

// remove checks for an empty tree first so that "not found" is only said of a
// tree that has nodes.
func (s *session) remove(v int) error {
	if s.tree.Empty() {
		s.say(s.warn, "Tree is empty - nothing to delete.")
		return nil
	}
	ok, e := s.tree.Delete(v)
	if e != nil {
		return fmt.Errorf("deleting %d: %w", v, e)
	}
	if !ok {
		s.say(s.warn, "No node %d - nothing deleted.", v)
	} else {
		s.say(s.ok, "Node %d deleted.", v)
	}
	return nil
}

func (s *session) paths() error {
	mn, mx, e := s.tree.MinMaxLeafPaths()
	switch {
	case errors.Is(e, Trees.ErrSingleLeaf):
		s.say(s.warn, "Only one leaf - no path.")
		return nil
	case errors.Is(e, Trees.ErrEmptyTree):
		s.say(s.warn, "Tree is empty - no path.")
		return nil
	case e != nil:
		return fmt.Errorf("finding leaf paths: %w", e)
	}
	if e = Render.Path(s.out, "Min path", mn, s.opts); e != nil {
		return e
	}
	return Render.Path(s.out, "Max path", mx, s.opts)
}

// complete tells whether nodes were added by comparing the sizes before and
// after.
func (s *session) complete() error {
	n := s.tree.Size()
	if e := s.tree.CompleteWith(s.fill); errors.Is(e, Trees.ErrEmptyTree) {
		s.say(s.warn, "Tree is empty - nothing to complete.")
		return nil
	} else if e != nil {
		return fmt.Errorf("completing: %w", e)
	}
	if s.tree.Size() > n {
		s.say(s.ok, "Tree completed with %d.", s.fill)
	} else {
		s.say(s.warn, "Tree is already full - nothing added.")
	}
	return nil
}

func (s *session) dot() error {
	return s.tree.WriteDot(s.out)
}
