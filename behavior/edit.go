package behavior

// Structural edit operations over a behavior tree. A tree location is an
// index path from the root; every operation resolves its target through
// NodeAt and no-ops on out-of-range indices or protected slots instead
// of panicking.
//
// Child index mapping per variant:
//   - control nodes: index into Children
//   - While:  0 = condition, 1 = child
//   - IfThen: 0 = condition, 1 = then, 2 = else

// Path addresses one node as child indices from the root.
type Path []int

// NodeAt resolves the node at path, or nil when the path does not lead
// to a node.
func NodeAt(root *Node, path Path) *Node {
	current := root
	for _, index := range path {
		if current == nil {
			return nil
		}
		current = childAt(current, index)
	}
	return current
}

func childAt(n *Node, index int) *Node {
	switch {
	case n.Type.IsControl():
		if index < 0 || index >= len(n.Children) {
			return nil
		}
		return n.Children[index]
	case n.Type == TypeWhile:
		switch index {
		case 0:
			return n.Condition
		case 1:
			return n.Child
		}
	case n.Type == TypeIfThen:
		switch index {
		case 0:
			return n.Condition
		case 1:
			return n.Then
		case 2:
			return n.Else
		}
	}
	return nil
}

// Retype changes the node's variant. Children survive a control-to-
// control change; every other transition drops the fields foreign to the
// new variant and fills the new variant's required fields with defaults.
// Retyping to the current variant is a no-op.
func Retype(root *Node, path Path, newType NodeType) {
	node := NodeAt(root, path)
	if node == nil || !newType.Known() || node.Type == newType {
		return
	}

	keepChildren := node.Type.IsControl() && newType.IsControl()
	children := node.Children

	node.clearFields()
	node.Type = newType
	if keepChildren {
		node.Children = children
		return
	}
	node.fillDefaults()
}

// Delete removes the child at path from its parent. Control children are
// removed by index; for While only the condition (index 0) may be
// cleared, for IfThen only the else child (index 2). Anything else,
// including the root itself, is a no-op.
func Delete(root *Node, path Path) {
	if len(path) == 0 {
		return
	}
	parent := NodeAt(root, path[:len(path)-1])
	if parent == nil {
		return
	}
	index := path[len(path)-1]

	switch {
	case parent.Type.IsControl():
		if index >= 0 && index < len(parent.Children) {
			parent.Children = append(parent.Children[:index], parent.Children[index+1:]...)
		}
	case parent.Type == TypeWhile:
		if index == 0 {
			parent.Condition = nil
		}
	case parent.Type == TypeIfThen:
		if index == 2 {
			parent.Else = nil
		}
	}
}

// Move swaps the node at path with its neighbor at offset direction
// (-1 = up, +1 = down) within the same control parent. Boundary moves
// are no-ops.
func Move(root *Node, path Path, direction int) {
	if len(path) == 0 {
		return
	}
	parent := NodeAt(root, path[:len(path)-1])
	if parent == nil || !parent.Type.IsControl() {
		return
	}
	index := path[len(path)-1]
	target := index + direction
	if index < 0 || index >= len(parent.Children) || target < 0 || target >= len(parent.Children) {
		return
	}
	parent.Children[index], parent.Children[target] = parent.Children[target], parent.Children[index]
}

// AddChild appends a default Action leaf to the control node at path.
func AddChild(root *Node, path Path) {
	node := NodeAt(root, path)
	if node == nil || !node.Type.IsControl() {
		return
	}
	node.Children = append(node.Children, NewDefault(TypeAction))
}

// AddWhileCondition fills the While node's condition slot with a default
// Wait condition.
func AddWhileCondition(root *Node, path Path) {
	node := NodeAt(root, path)
	if node == nil || node.Type != TypeWhile {
		return
	}
	node.Condition = &Node{Type: TypeWait, Seconds: 1.0}
}

// AddWhileChild fills the While node's required child slot.
func AddWhileChild(root *Node, path Path) {
	node := NodeAt(root, path)
	if node == nil || node.Type != TypeWhile {
		return
	}
	node.Child = &Node{Type: TypeAction, Name: "Child", Behaviors: []Action{}}
}

// AddIfThenCondition fills the IfThen node's condition slot.
func AddIfThenCondition(root *Node, path Path) {
	node := NodeAt(root, path)
	if node == nil || node.Type != TypeIfThen {
		return
	}
	node.Condition = &Node{Type: TypeWait, Seconds: 1.0}
}

// AddIfThenChild fills the IfThen node's then slot.
func AddIfThenChild(root *Node, path Path) {
	node := NodeAt(root, path)
	if node == nil || node.Type != TypeIfThen {
		return
	}
	node.Then = &Node{Type: TypeAction, Name: "Then", Behaviors: []Action{}}
}

// AddIfElseChild fills the IfThen node's optional else slot.
func AddIfElseChild(root *Node, path Path) {
	node := NodeAt(root, path)
	if node == nil || node.Type != TypeIfThen {
		return
	}
	node.Else = &Node{Type: TypeAction, Name: "Else", Behaviors: []Action{}}
}
