package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

func (s *session) menu() {
	fmt.Fprintf(s.out, `
1. Add a node.
2. Show the tree.
3. Delete a node.
4. Find the min and max paths between leaves.
5. Complete the tree with %d.
6. Show the tree as a hierarchy.
7. Print the tree in DOT format.
0. Quit.

`, s.fill)
}

// readInt prompts until a line holding an integer is read. Returns io.EOF
// when the input ends.
func (s *session) readInt(sc *bufio.Scanner, prompt string) (int, error) {
	for {
		fmt.Fprintln(s.out, prompt)
		if !sc.Scan() {
			if e := sc.Err(); e != nil {
				return 0, e
			}
			return 0, io.EOF
		}
		if v, e := strconv.Atoi(strings.TrimSpace(sc.Text())); e == nil {
			return v, nil
		}
	}
}

func runRepl(cctx *cli.Context) error {
	s := newSession(cctx)
	sc := bufio.NewScanner(cctx.App.Reader)
	for {
		s.menu()
		if err := s.show(); err != nil {
			return err
		}
		cmd, err := s.readInt(sc, "Command number (0 - 7):")
		if err != nil {
			return ignoreEOF(err)
		}
		switch cmd {
		case 0:
			return nil
		case 1:
			v, err := s.readInt(sc, "Value of the new node:")
			if err != nil {
				return ignoreEOF(err)
			}
			s.add(v)
		case 2:
			err = s.show()
		case 3:
			if s.tree.Empty() {
				s.say(s.warn, "Tree is empty - nothing to delete.")
				continue
			}
			var v int
			if v, err = s.readInt(sc, "Value of the node to delete:"); err != nil {
				return ignoreEOF(err)
			}
			err = s.remove(v)
		case 4:
			err = s.paths()
		case 5:
			err = s.complete()
		case 6:
			err = s.hierarchy()
		case 7:
			err = s.dot()
		default:
			s.say(s.warn, "No such command.")
		}
		if err != nil {
			return err
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
