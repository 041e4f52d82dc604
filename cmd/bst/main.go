package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.New()

func main() {
	if err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var treeFlags = []cli.Flag{
	&cli.IntSliceFlag{
		Name:    "keys",
		Aliases: []string{"k"},
		Usage:   "keys inserted, in order, before running the command",
		EnvVars: []string{"BST_KEYS"},
	},
	&cli.IntFlag{
		Name:    "fill",
		Usage:   "value of the leaves added when completing the tree",
		Value:   Trees.Filler,
		EnvVars: []string{"BST_FILL"},
	},
	&cli.IntFlag{
		Name:    "width",
		Usage:   "columns used to draw the tree; 0 uses the terminal width",
		EnvVars: []string{"BST_WIDTH"},
	},
	&cli.BoolFlag{
		Name:    "no-color",
		Usage:   "disable colored output",
		EnvVars: []string{"BST_NO_COLOR", "NO_COLOR"},
	},
	&cli.BoolFlag{
		Name:    "debug",
		Usage:   "log tree operations",
		EnvVars: []string{"BST_DEBUG"},
	},
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "bst",
		Usage:     "binary search tree playground: leaf to leaf paths and completion",
		Version:   versioninfo.Short(),
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags:     treeFlags,
		Before:    setupLogging,
		Action:    runRepl,
		Commands: []*cli.Command{
			cmdRepl,
			cmdShow,
			cmdDelete,
			cmdPaths,
			cmdComplete,
			cmdDot,
		},
	}
}

func setupLogging(cctx *cli.Context) error {
	level := logrus.InfoLevel
	if cctx.Bool("debug") {
		level = logrus.DebugLevel
	}
	for _, l := range []*logrus.Logger{log, Trees.Log} {
		l.SetOutput(cctx.App.ErrWriter)
		l.SetLevel(level)
		l.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
			DisableColors:    cctx.Bool("no-color"),
		})
	}
	return nil
}
