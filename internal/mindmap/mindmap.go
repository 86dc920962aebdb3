// Package mindmap renders a kit.MindmapNode tree as a numbered plain
// text outline, Mermaid diagram markup, or a connector-drawn tree for
// terminal display. All renders are depth-first, parent before children.
package mindmap

import (
	"fmt"
	"strings"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
)

// maxDepth bounds recursion against malformed model output. The data
// model is a tree, but the input ultimately comes off the wire.
const maxDepth = 12

// Tier names the style bucket for a node depth. Depths past the third
// level all render as detail.
func Tier(depth int) string {
	switch depth {
	case 0:
		return "root"
	case 1:
		return "branch"
	case 2:
		return "sub-branch"
	default:
		return "detail"
	}
}

// Outline renders the dotted-number plain text form: the root label
// uppercased on its own line, then each descendant as "1.2.3. Label"
// indented three spaces per level below the root's children.
func Outline(root kit.MindmapNode) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(root.Label))
	b.WriteString("\n\n")
	for i, child := range root.Children {
		outlineNode(&b, child, fmt.Sprintf("%d", i+1), 1)
	}
	return b.String()
}

func outlineNode(b *strings.Builder, node kit.MindmapNode, number string, depth int) {
	if depth > maxDepth {
		return
	}
	b.WriteString(strings.Repeat("   ", depth-1))
	b.WriteString(number)
	b.WriteString(". ")
	b.WriteString(node.Label)
	b.WriteString("\n")
	for i, child := range node.Children {
		outlineNode(b, child, fmt.Sprintf("%s.%d", number, i+1), depth+1)
	}
}

// Mermaid renders graph markup: one declaration per node, one edge per
// parent/child pair, and a style class per depth tier. Identifiers are
// the label stripped to alphanumerics with a depth prefix so repeated
// labels at different levels stay distinct.
func Mermaid(root kit.MindmapNode) string {
	var nodes, edges strings.Builder
	classes := map[int][]string{}
	walkMermaid(&nodes, &edges, classes, root, "", 0)

	var b strings.Builder
	b.WriteString("graph TD\n")
	b.WriteString(nodes.String())
	b.WriteString(edges.String())
	b.WriteString("  classDef root fill:#4f46e5,color:#fff,font-weight:bold\n")
	b.WriteString("  classDef branch fill:#eef2ff,color:#4338ca\n")
	b.WriteString("  classDef subbranch fill:#f8fafc,color:#1e293b\n")
	b.WriteString("  classDef detail fill:#fff,color:#475569\n")
	for depth := 0; depth <= maxDepth; depth++ {
		ids := classes[depth]
		if len(ids) == 0 {
			continue
		}
		class := strings.ReplaceAll(Tier(depth), "-", "")
		b.WriteString(fmt.Sprintf("  class %s %s\n", strings.Join(ids, ","), class))
	}
	return b.String()
}

func walkMermaid(nodes, edges *strings.Builder, classes map[int][]string, node kit.MindmapNode, parentID string, depth int) {
	if depth > maxDepth {
		return
	}
	id := nodeID(node.Label, depth)
	nodes.WriteString(fmt.Sprintf("  %s[%q]\n", id, node.Label))
	if parentID != "" {
		edges.WriteString(fmt.Sprintf("  %s --> %s\n", parentID, id))
	}
	classes[depth] = append(classes[depth], id)
	for _, child := range node.Children {
		walkMermaid(nodes, edges, classes, child, id, depth+1)
	}
}

func nodeID(label string, depth int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "d%d", depth)
	for _, r := range label {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 2 {
		b.WriteString("node")
	}
	return b.String()
}

// Tree renders a connector-drawn view for terminals. Interior siblings
// get a tee connector, the last sibling gets a corner, and nesting is
// carried by vertical rules.
func Tree(root kit.MindmapNode) string {
	var b strings.Builder
	b.WriteString(root.Label)
	b.WriteString("\n")
	for i, child := range root.Children {
		treeNode(&b, child, "", i == len(root.Children)-1, 1)
	}
	return b.String()
}

func treeNode(b *strings.Builder, node kit.MindmapNode, prefix string, last bool, depth int) {
	if depth > maxDepth {
		return
	}
	connector := "├─ "
	childPrefix := prefix + "│  "
	if last {
		connector = "└─ "
		childPrefix = prefix + "   "
	}
	b.WriteString(prefix)
	b.WriteString(connector)
	b.WriteString(node.Label)
	b.WriteString("\n")
	for i, child := range node.Children {
		treeNode(b, child, childPrefix, i == len(node.Children)-1, depth+1)
	}
}
