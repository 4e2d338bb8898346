package strscan

import (
	"fmt"
	"io"
	"strings"
)

// History2Dot outputs the history of a scanner in Graphviz DOT format
// (for debugging purposes). Every history entry becomes a node, labelled with
// its position and match; the current state is highlighted.
//
func History2Dot(s *Scanner, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	top := s.hist.len() - 1
	for i, pos := range s.hist.positions {
		m := s.hist.matches[i]
		label := fmt.Sprintf("#%d @%d", i, pos)
		if m != nil {
			label += fmt.Sprintf("\\n[%d:%d] “%s”", m.Start(), m.End(), dotEscape(strstart(m.Text())))
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", i, label, nodeDotStyles(m != nil, i == top))
		if i > 0 {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", i-1, i)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(matched bool, highlight bool) string {
	s := ",style=filled,shape=box"
	if matched {
		s += ",fillcolor=\"#a3d7e4\""
	} else {
		s += ",fillcolor=white"
	}
	if highlight {
		s += ",color=\"#ff6600\",penwidth=2"
	}
	return s
}

func strstart(s string) string {
	if len(s) > 10 {
		return s[:10] + "…"
	}
	return s
}

func dotEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return strings.ReplaceAll(s, "\n", `\n`)
}
