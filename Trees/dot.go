package Trees

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDot outputs the structure of the tree in Graphviz DOT format, level
// by level. A node with a single child gets an empty placeholder on the
// other side so that left and right stay apart in the drawing.
func (u *BSTree[T, S]) WriteDot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("strict digraph {\n")
	bw.WriteString("\tnode [fontname=Arial,fontsize=12,shape=circle];\n")
	u.levelOrder(func(i S, _ int) bool {
		n := u.ifs[i]
		fmt.Fprintf(bw, "\t\"%d\" [label=\"%v\"];\n", i, *u.getV(i))
		if n.l == 0 && n.r == 0 {
			return true
		}
		for k, c := range [2]S{n.l, n.r} {
			if c != 0 {
				fmt.Fprintf(bw, "\t\"%d\" -> \"%d\";\n", i, c)
			} else {
				fmt.Fprintf(bw, "\t\"%d%c\" [label=\"\",shape=point,style=invis];\n", i, "lr"[k])
				fmt.Fprintf(bw, "\t\"%d\" -> \"%d%c\" [style=invis];\n", i, i, "lr"[k])
			}
		}
		return true
	})
	bw.WriteString("}\n")
	return bw.Flush()
}
