// Package treewalk provides read-only helpers over an externally
// built parse tree: statement decoration, boolean-statement kind,
// redirection decoding, comment collection, job backgrounding, and
// pipeline membership. The tree itself is opaque -- this package only
// ever calls the small interface below, it never constructs or
// mutates nodes.
package treewalk

import (
	"github.com/fish-tools/fishtok/lexer"
	"github.com/fish-tools/fishtok/token"
)

// NodeType is a grammar production tag. Callers define their own
// concrete values; this package only ever compares them for equality.
type NodeType int

// Node is the minimal parse-tree node surface these helpers need.
type Node interface {
	Type() NodeType
	Tag() int
	ChildCount() int
	GetChild(i int) Node
	HasSource() bool
	GetSource(src []rune) string
	HasComments() bool
}

// Tree supplies the whole-tree operations (parent lookup, full scan)
// that a handful of these helpers need beyond a single node's own
// children.
type Tree interface {
	Size() int
	NodeAt(i int) Node
	ParentOf(n Node) Node
}

// NextListEntry walks the spine of a homogeneous list production
// (List := Entry List | ε) starting at listNode, returning the Entry
// at its head and the List tail to resume from on the next call.
// Interior empty productions (e.g. blank lines in a job list) are
// tolerated by continuing the walk instead of stopping.
func NextListEntry(listNode Node, entryType, listType NodeType) (entry Node, tail Node) {
	cursor := listNode
	for cursor != nil {
		var next Node
		for i := 0; i < cursor.ChildCount(); i++ {
			child := cursor.GetChild(i)
			switch child.Type() {
			case entryType:
				entry = child
			case listType:
				next = child
			}
		}
		if entry != nil {
			return entry, next
		}
		cursor = next
	}
	return nil, nil
}

// StatementDecoration returns the decoration tag of stmt's
// decorated-statement parent, or decorationNone if stmt has no such
// parent (e.g. it is the job's only statement with no decoration
// keyword at all).
func StatementDecoration(tree Tree, stmt Node, decoratedStatementType NodeType, decorationNone int) int {
	parent := tree.ParentOf(stmt)
	if parent != nil && parent.Type() == decoratedStatementType {
		return parent.Tag()
	}
	return decorationNone
}

// BooleanStatementKind returns stmt's own tag, interpreted by the
// caller as a boolean-statement kind ("and"/"or"/"not").
func BooleanStatementKind(stmt Node) int {
	return stmt.Tag()
}

// DecodedRedirection is the result of decoding a redirection node: the
// lexical kind and fd of its primitive sigil, plus the raw text of its
// target (a path or an fd-duplication operand like "1").
type DecodedRedirection struct {
	Kind   token.Kind
	FD     int
	Target string
	OK     bool
}

// DecodeRedirection extracts a redirection node's primitive sigil
// source (child 0, e.g. "2>") and delegates to the lexical redirection
// oracle, plus the target source (child 1, e.g. "&1" or a path).
func DecodeRedirection(redirection Node, src []rune) DecodedRedirection {
	var out DecodedRedirection
	if redirection.ChildCount() < 2 {
		return out
	}
	prim := redirection.GetChild(0)
	if prim.HasSource() {
		kind, fd, ok := lexer.RedirectionType(prim.GetSource(src))
		out.Kind, out.FD, out.OK = kind, fd, ok
	}
	target := redirection.GetChild(1)
	if target.HasSource() {
		out.Target = target.GetSource(src)
	}
	return out
}

// CommandForPlainStatement returns a plain-statement node's command
// word (child 0), or "" if it has no source (e.g. a placeholder error
// node produced during error recovery).
func CommandForPlainStatement(stmt Node, src []rune) (string, bool) {
	if stmt.ChildCount() < 1 {
		return "", false
	}
	cmd := stmt.GetChild(0)
	if cmd.HasSource() {
		return cmd.GetSource(src), true
	}
	return "", false
}

// CommentNodesForNode returns every comment-typed node in tree whose
// parent is exactly parent. It requires a full tree scan, which it
// skips (returning nil) when parent.HasComments() reports false.
func CommentNodesForNode(tree Tree, parent Node, commentType NodeType) []Node {
	if !parent.HasComments() {
		return nil
	}
	var result []Node
	for i := 0; i < tree.Size(); i++ {
		candidate := tree.NodeAt(i)
		if candidate.Type() == commentType && tree.ParentOf(candidate) == parent {
			result = append(result, candidate)
		}
	}
	return result
}

// JobIsBackground reads a job's trailing optional-background child
// (conventionally child index 2) and reports whether its tag marks
// the job as backgrounded.
func JobIsBackground(job Node, backgroundChildIndex int, backgroundTag int) bool {
	if job.ChildCount() <= backgroundChildIndex {
		return false
	}
	return job.GetChild(backgroundChildIndex).Tag() == backgroundTag
}

// StatementIsInPipeline reports whether st is in a pipeline: directly,
// by having a job-continuation parent, or -- when includeFirst is set
// -- by being the head statement of a job whose continuation produces
// at least one more statement.
func StatementIsInPipeline(tree Tree, st Node, includeFirst bool, jobContinuationType, jobType, statementType NodeType) bool {
	if st == nil {
		return false
	}

	if parent := tree.ParentOf(st); parent != nil && parent.Type() == jobContinuationType {
		return true
	}

	if includeFirst {
		jobParent := tree.ParentOf(st)
		if jobParent != nil && jobParent.Type() == jobType && jobParent.ChildCount() > 1 {
			continuation := jobParent.GetChild(1)
			if continuation != nil && continuation.Type() == jobContinuationType {
				for i := 0; i < continuation.ChildCount(); i++ {
					if continuation.GetChild(i).Type() == statementType {
						return true
					}
				}
			}
		}
	}

	return false
}
