// Package behavior defines the recursive behavior-tree grammar for mobs:
// a closed set of control and leaf node variants decoded from documents,
// plus path-addressed structural edit operations.
package behavior

// NodeType is the declared variant of a behavior node.
type NodeType string

const (
	// Control nodes hold an ordered list of children.

	// TypeForever loops its child forever.
	TypeForever NodeType = "Forever"
	// TypeSequence runs children in order, failing when one fails.
	TypeSequence NodeType = "Sequence"
	// TypeFallback runs children until one succeeds.
	TypeFallback NodeType = "Fallback"

	// TypeWhile repeats its child, optionally gated by a condition.
	TypeWhile NodeType = "While"
	// TypeIfThen branches on a condition with an optional else child.
	TypeIfThen NodeType = "IfThen"

	// TypeWait pauses for a number of seconds.
	TypeWait NodeType = "Wait"
	// TypeAction runs a named list of behavior instructions.
	TypeAction NodeType = "Action"
	// TypeTrigger fires a trigger by type string (reserved).
	TypeTrigger NodeType = "Trigger"
)

// IsControl reports whether the variant holds an ordered children list.
func (t NodeType) IsControl() bool {
	switch t {
	case TypeForever, TypeSequence, TypeFallback:
		return true
	}
	return false
}

// Known reports whether t is one of the defined variants.
func (t NodeType) Known() bool {
	switch t {
	case TypeForever, TypeSequence, TypeFallback, TypeWhile, TypeIfThen,
		TypeWait, TypeAction, TypeTrigger:
		return true
	}
	return false
}

// Node is one behavior-tree node. Only the fields belonging to the
// declared Type are populated; Retype keeps that invariant when the
// variant changes.
type Node struct {
	Type NodeType

	// Control variants.
	Children []*Node

	// While: Condition is optional, Child is required.
	// IfThen: Condition and Then are required, Else is optional.
	Condition *Node
	Child     *Node
	Then      *Node
	Else      *Node

	// Wait.
	Seconds float64

	// Action.
	Name      string
	Behaviors []Action

	// Trigger.
	TriggerType string
}

// NewDefault returns a node of the given type populated with the default
// content required by that variant.
func NewDefault(t NodeType) *Node {
	n := &Node{Type: t}
	n.fillDefaults()
	return n
}

// fillDefaults populates the required fields of the node's variant.
func (n *Node) fillDefaults() {
	switch n.Type {
	case TypeForever, TypeSequence, TypeFallback:
		n.Children = []*Node{}
	case TypeWait:
		n.Seconds = 1.0
	case TypeAction:
		n.Name = "New Action"
		n.Behaviors = []Action{}
	case TypeTrigger:
		n.TriggerType = ""
	case TypeWhile:
		n.Child = &Node{Type: TypeAction, Name: "Child", Behaviors: []Action{}}
	case TypeIfThen:
		n.Condition = &Node{Type: TypeWait, Seconds: 1.0}
		n.Then = &Node{Type: TypeAction, Name: "Then", Behaviors: []Action{}}
	}
}

// clearFields drops every variant-specific field.
func (n *Node) clearFields() {
	n.Children = nil
	n.Condition = nil
	n.Child = nil
	n.Then = nil
	n.Else = nil
	n.Seconds = 0
	n.Name = ""
	n.Behaviors = nil
	n.TriggerType = ""
}

// Tree is a pre-built behavior tree cached per registry entry.
type Tree struct {
	Root *Node
}

// Build wraps a decoded root node as a cached tree.
func Build(root *Node) *Tree {
	return &Tree{Root: root}
}

// DefaultTree returns the starter tree used when a mob gains behavior:
// a Forever loop around a single movement action.
func DefaultTree() *Node {
	return &Node{
		Type: TypeForever,
		Children: []*Node{
			{
				Type:      TypeAction,
				Name:      "Movement",
				Behaviors: []Action{{Type: ActionMoveDown}},
			},
		},
	}
}
