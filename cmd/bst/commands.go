package main

import (
	"github.com/urfave/cli/v2"
)

var cmdRepl = &cli.Command{
	Name:   "repl",
	Usage:  "edit the tree interactively from a numbered menu (default)",
	Action: runRepl,
}

var cmdShow = &cli.Command{
	Name:  "show",
	Usage: "draw the tree level by level",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "hierarchy",
			Usage: "draw the tree as an indented hierarchy instead",
		},
		&cli.BoolFlag{
			Name:  "info",
			Usage: "also print size, depth and the in-order dump",
		},
	},
	Action: func(cctx *cli.Context) error {
		s := newSession(cctx)
		if cctx.Bool("info") {
			s.info()
		}
		if cctx.Bool("hierarchy") {
			return s.hierarchy()
		}
		return s.show()
	},
}

var cmdDelete = &cli.Command{
	Name:  "delete",
	Usage: "delete keys from the tree, then draw it",
	Flags: []cli.Flag{
		&cli.IntSliceFlag{
			Name:     "key",
			Usage:    "key to delete; repeat or separate with commas for more",
			Required: true,
		},
	},
	Action: func(cctx *cli.Context) error {
		s := newSession(cctx)
		for _, v := range cctx.IntSlice("key") {
			if err := s.remove(v); err != nil {
				return err
			}
		}
		return s.show()
	},
}

var cmdPaths = &cli.Command{
	Name:  "paths",
	Usage: "print the shortest and the longest paths between 2 leaves",
	Action: func(cctx *cli.Context) error {
		return newSession(cctx).paths()
	},
}

var cmdComplete = &cli.Command{
	Name:  "complete",
	Usage: "fill the tree up to a full tree without changing its depth, then draw it",
	Action: func(cctx *cli.Context) error {
		s := newSession(cctx)
		if err := s.complete(); err != nil {
			return err
		}
		return s.show()
	},
}

var cmdDot = &cli.Command{
	Name:  "dot",
	Usage: "print the tree in Graphviz DOT format",
	Action: func(cctx *cli.Context) error {
		return newSession(cctx).dot()
	},
}
