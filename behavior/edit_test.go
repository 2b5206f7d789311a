package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequenceWithTwo() *Node {
	return &Node{
		Type: TypeSequence,
		Children: []*Node{
			{Type: TypeWait, Seconds: 1.0},
			{Type: TypeAction, Name: "Fire"},
		},
	}
}

func TestNodeAt(t *testing.T) {
	root := sequenceWithTwo()

	assert.Same(t, root, NodeAt(root, nil))
	assert.Same(t, root.Children[1], NodeAt(root, Path{1}))
	assert.Nil(t, NodeAt(root, Path{5}))
	assert.Nil(t, NodeAt(root, Path{0, 0}))
}

func TestNodeAtWhileSlots(t *testing.T) {
	root := NewDefault(TypeWhile)
	AddWhileCondition(root, nil)

	assert.Same(t, root.Condition, NodeAt(root, Path{0}))
	assert.Same(t, root.Child, NodeAt(root, Path{1}))
	assert.Nil(t, NodeAt(root, Path{2}))
	assert.Nil(t, NodeAt(root, Path{5}))
}

func TestRetypeControlToControlKeepsChildren(t *testing.T) {
	root := sequenceWithTwo()
	Retype(root, nil, TypeFallback)

	assert.Equal(t, TypeFallback, root.Type)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "Fire", root.Children[1].Name)
}

func TestRetypeControlToLeafDropsChildren(t *testing.T) {
	root := sequenceWithTwo()
	Retype(root, nil, TypeWait)

	assert.Equal(t, TypeWait, root.Type)
	assert.Nil(t, root.Children)
	assert.Equal(t, 1.0, root.Seconds)
}

func TestRetypeSameTypeIsNoOp(t *testing.T) {
	root := sequenceWithTwo()
	Retype(root, nil, TypeSequence)
	require.Len(t, root.Children, 2)
}

func TestRetypeToIfThenFillsRequiredSlots(t *testing.T) {
	root := sequenceWithTwo()
	Retype(root, Path{0}, TypeIfThen)

	node := root.Children[0]
	assert.Equal(t, TypeIfThen, node.Type)
	require.NotNil(t, node.Condition)
	require.NotNil(t, node.Then)
	assert.Nil(t, node.Else)
}

func TestDeleteControlChild(t *testing.T) {
	root := sequenceWithTwo()
	Delete(root, Path{0})

	require.Len(t, root.Children, 1)
	assert.Equal(t, "Fire", root.Children[0].Name)
}

func TestDeleteOutOfRangeIsNoOp(t *testing.T) {
	root := sequenceWithTwo()
	Delete(root, Path{7})
	Delete(root, nil)
	require.Len(t, root.Children, 2)
}

func TestDeleteWhileSlots(t *testing.T) {
	root := NewDefault(TypeWhile)
	AddWhileCondition(root, nil)
	require.NotNil(t, root.Condition)

	Delete(root, Path{0})
	assert.Nil(t, root.Condition)

	// The required child slot may never be deleted.
	Delete(root, Path{1})
	assert.NotNil(t, root.Child)
}

func TestDeleteIfThenSlots(t *testing.T) {
	root := NewDefault(TypeIfThen)
	AddIfElseChild(root, nil)
	require.NotNil(t, root.Else)

	Delete(root, Path{2})
	assert.Nil(t, root.Else)

	Delete(root, Path{0})
	Delete(root, Path{1})
	assert.NotNil(t, root.Condition)
	assert.NotNil(t, root.Then)
}

func TestMoveSwapsSiblings(t *testing.T) {
	root := sequenceWithTwo()
	Move(root, Path{0}, +1)

	assert.Equal(t, "Fire", root.Children[0].Name)
	assert.Equal(t, TypeWait, root.Children[1].Type)
}

func TestMoveAtBoundaryIsNoOp(t *testing.T) {
	root := sequenceWithTwo()
	Move(root, Path{0}, -1)
	Move(root, Path{1}, +1)

	assert.Equal(t, TypeWait, root.Children[0].Type)
	assert.Equal(t, "Fire", root.Children[1].Name)
}

func TestAddChild(t *testing.T) {
	root := sequenceWithTwo()
	AddChild(root, nil)

	require.Len(t, root.Children, 3)
	added := root.Children[2]
	assert.Equal(t, TypeAction, added.Type)
	assert.Equal(t, "New Action", added.Name)

	// Leaves do not accept children.
	AddChild(root, Path{0})
	assert.Nil(t, root.Children[0].Children)
}

func TestDefaultTree(t *testing.T) {
	root := DefaultTree()
	assert.Equal(t, TypeForever, root.Type)
	require.Len(t, root.Children, 1)
	require.Len(t, root.Children[0].Behaviors, 1)
	assert.Equal(t, ActionMoveDown, root.Children[0].Behaviors[0].Type)
}
