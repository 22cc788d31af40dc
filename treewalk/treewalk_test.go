package treewalk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeNode is a minimal, hand-built Node for exercising the helpers
// without pulling in a real grammar/parser.
type fakeNode struct {
	typ         NodeType
	tag         int
	children    []Node
	source      string
	hasSource   bool
	hasComments bool
}

func (n *fakeNode) Type() NodeType         { return n.typ }
func (n *fakeNode) Tag() int               { return n.tag }
func (n *fakeNode) ChildCount() int        { return len(n.children) }
func (n *fakeNode) GetChild(i int) Node    { return n.children[i] }
func (n *fakeNode) HasSource() bool        { return n.hasSource }
func (n *fakeNode) HasComments() bool      { return n.hasComments }
func (n *fakeNode) GetSource(src []rune) string {
	return n.source
}

// fakeTree is a flat slice-backed Tree with an explicit parent map,
// standing in for a real parse-node arena.
type fakeTree struct {
	nodes   []Node
	parents map[Node]Node
}

func (t *fakeTree) Size() int          { return len(t.nodes) }
func (t *fakeTree) NodeAt(i int) Node  { return t.nodes[i] }
func (t *fakeTree) ParentOf(n Node) Node {
	return t.parents[n]
}

const (
	typeList NodeType = iota
	typeEntry
	typePlainStatement
	typeDecoratedStatement
	typeBooleanStatement
	typeRedirection
	typeTokRedirection
	typeTokString
	typeComment
	typeJob
	typeOptionalBackground
	typeJobContinuation
	typeStatement
)

func TestNextListEntryWalksSpine(t *testing.T) {
	entry2 := &fakeNode{typ: typeEntry, tag: 2}
	tail := &fakeNode{typ: typeList, children: nil}
	list1 := &fakeNode{typ: typeList, children: []Node{entry2, tail}}
	entry1 := &fakeNode{typ: typeEntry, tag: 1}
	root := &fakeNode{typ: typeList, children: []Node{entry1, list1}}

	entry, next := NextListEntry(root, typeEntry, typeList)
	if entry != entry1 {
		t.Fatalf("first entry = %v, want entry1", entry)
	}
	if next != list1 {
		t.Fatalf("tail = %v, want list1", next)
	}

	entry, next = NextListEntry(next, typeEntry, typeList)
	if entry != entry2 {
		t.Fatalf("second entry = %v, want entry2", entry)
	}
	if next != tail {
		t.Fatalf("tail = %v, want tail", next)
	}
}

func TestNextListEntryToleratesEmptyProductions(t *testing.T) {
	// A blank interior list node with no Entry child, just a List tail.
	tail := &fakeNode{typ: typeList, children: nil}
	blank := &fakeNode{typ: typeList, children: []Node{tail}}
	entry := &fakeNode{typ: typeEntry, tag: 9}
	wrapped := &fakeNode{typ: typeList, children: []Node{entry, blank}}

	got, next := NextListEntry(wrapped, typeEntry, typeList)
	if got != entry {
		t.Fatalf("entry = %v, want entry", got)
	}
	if next != blank {
		t.Fatalf("tail = %v, want blank", next)
	}

	// Continuing from the blank node walks through it and then through
	// the empty tail, finding no entry and running off the end of the list.
	got, next = NextListEntry(next, typeEntry, typeList)
	if got != nil {
		t.Fatalf("entry = %v, want nil (blank production)", got)
	}
	if next != nil {
		t.Fatalf("tail = %v, want nil (end of list)", next)
	}
}

func TestStatementDecoration(t *testing.T) {
	plain := &fakeNode{typ: typePlainStatement}
	decorated := &fakeNode{typ: typeDecoratedStatement, tag: 7, children: []Node{plain}}
	tree := &fakeTree{nodes: []Node{plain, decorated}, parents: map[Node]Node{plain: decorated}}

	got := StatementDecoration(tree, plain, typeDecoratedStatement, 0)
	if got != 7 {
		t.Errorf("decoration = %d, want 7", got)
	}

	undecorated := &fakeNode{typ: typePlainStatement}
	tree2 := &fakeTree{nodes: []Node{undecorated}, parents: map[Node]Node{}}
	got = StatementDecoration(tree2, undecorated, typeDecoratedStatement, 0)
	if got != 0 {
		t.Errorf("decoration = %d, want 0 (none)", got)
	}
}

func TestCommandForPlainStatement(t *testing.T) {
	cmd := &fakeNode{typ: typeTokString, hasSource: true, source: "echo"}
	stmt := &fakeNode{typ: typePlainStatement, children: []Node{cmd}}

	got, ok := CommandForPlainStatement(stmt, nil)
	if !ok || got != "echo" {
		t.Fatalf("CommandForPlainStatement = (%q, %v), want (\"echo\", true)", got, ok)
	}
}

func TestCommandForPlainStatementNoSource(t *testing.T) {
	cmd := &fakeNode{typ: typeTokString, hasSource: false}
	stmt := &fakeNode{typ: typePlainStatement, children: []Node{cmd}}

	_, ok := CommandForPlainStatement(stmt, nil)
	if ok {
		t.Fatal("CommandForPlainStatement reported ok for a sourceless node")
	}
}

func TestCommentNodesForNode(t *testing.T) {
	parent := &fakeNode{typ: typePlainStatement, hasComments: true}
	other := &fakeNode{typ: typePlainStatement, hasComments: true}
	c1 := &fakeNode{typ: typeComment}
	c2 := &fakeNode{typ: typeComment}
	c3 := &fakeNode{typ: typeComment}

	tree := &fakeTree{
		nodes: []Node{parent, other, c1, c2, c3},
		parents: map[Node]Node{
			c1: parent,
			c2: other,
			c3: parent,
		},
	}

	got := CommentNodesForNode(tree, parent, typeComment)
	want := []Node{c1, c3}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b Node) bool { return a == b })); diff != "" {
		t.Fatalf("comment nodes mismatch (-want +got):\n%s", diff)
	}
}

func TestCommentNodesForNodeSkipsScanWhenNoneAdvertised(t *testing.T) {
	parent := &fakeNode{typ: typePlainStatement, hasComments: false}
	tree := &fakeTree{nodes: []Node{parent}, parents: map[Node]Node{}}

	got := CommentNodesForNode(tree, parent, typeComment)
	if got != nil {
		t.Fatalf("got %v, want nil when HasComments is false", got)
	}
}

func TestJobIsBackground(t *testing.T) {
	bg := &fakeNode{typ: typeOptionalBackground, tag: 1}
	job := &fakeNode{typ: typeJob, children: []Node{nil, nil, bg}}

	if !JobIsBackground(job, 2, 1) {
		t.Error("JobIsBackground = false, want true")
	}

	fg := &fakeNode{typ: typeOptionalBackground, tag: 0}
	job2 := &fakeNode{typ: typeJob, children: []Node{nil, nil, fg}}
	if JobIsBackground(job2, 2, 1) {
		t.Error("JobIsBackground = true, want false")
	}
}

func TestStatementIsInPipelineDirectParent(t *testing.T) {
	stmt := &fakeNode{typ: typeStatement}
	continuation := &fakeNode{typ: typeJobContinuation, children: []Node{stmt}}
	tree := &fakeTree{nodes: []Node{stmt, continuation}, parents: map[Node]Node{stmt: continuation}}

	if !StatementIsInPipeline(tree, stmt, false, typeJobContinuation, typeJob, typeStatement) {
		t.Error("expected statement with a job-continuation parent to be in a pipeline")
	}
}

func TestStatementIsInPipelineHeadWithIncludeFirst(t *testing.T) {
	stmt := &fakeNode{typ: typeStatement}
	nextStmt := &fakeNode{typ: typeStatement}
	pipeSigil := &fakeNode{typ: typeTokString}
	continuation := &fakeNode{typ: typeJobContinuation, children: []Node{pipeSigil, nextStmt}}
	jobHead := &fakeNode{typ: typeTokString}
	job := &fakeNode{typ: typeJob, children: []Node{jobHead, continuation}}

	tree := &fakeTree{nodes: []Node{stmt, job, continuation, nextStmt}, parents: map[Node]Node{stmt: job}}

	if StatementIsInPipeline(tree, stmt, false, typeJobContinuation, typeJob, typeStatement) {
		t.Error("head statement without includeFirst should not report as in a pipeline")
	}
	if !StatementIsInPipeline(tree, stmt, true, typeJobContinuation, typeJob, typeStatement) {
		t.Error("head statement with includeFirst and a non-trivial continuation should be in a pipeline")
	}
}

func TestStatementIsInPipelineNilStatement(t *testing.T) {
	tree := &fakeTree{nodes: nil, parents: map[Node]Node{}}
	if StatementIsInPipeline(tree, nil, true, typeJobContinuation, typeJob, typeStatement) {
		t.Error("nil statement must never be in a pipeline")
	}
}
