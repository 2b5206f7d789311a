package behavior

import (
	"fmt"

	"github.com/openwave/mobcore/document"
)

// UnmarshalDocument decodes a behavior node table, dispatching on its
// "type" tag. Each variant accepts exactly its own fields.
func (n *Node) UnmarshalDocument(data any) error {
	tbl, ok := data.(document.Table)
	if !ok {
		return fmt.Errorf("behavior node must be a table, got %T", data)
	}
	typ, err := tagOf(tbl, "type")
	if err != nil {
		return err
	}

	nodeType := NodeType(typ)
	if !nodeType.Known() {
		return fmt.Errorf("unknown behavior node type %q", typ)
	}

	switch nodeType {
	case TypeForever, TypeSequence, TypeFallback:
		var v struct {
			Type     string  `toml:"type"`
			Children []*Node `toml:"children"`
		}
		if err := document.Decode(tbl, &v); err != nil {
			return err
		}
		n.Children = v.Children
	case TypeWhile:
		var v struct {
			Type      string `toml:"type"`
			Condition *Node  `toml:"condition"`
			Child     *Node  `toml:"child"`
		}
		if err := document.Decode(tbl, &v); err != nil {
			return err
		}
		if v.Child == nil {
			return fmt.Errorf("While node requires a child")
		}
		n.Condition = v.Condition
		n.Child = v.Child
	case TypeIfThen:
		var v struct {
			Type      string `toml:"type"`
			Condition *Node  `toml:"condition"`
			Then      *Node  `toml:"then_child"`
			Else      *Node  `toml:"else_child"`
		}
		if err := document.Decode(tbl, &v); err != nil {
			return err
		}
		if v.Condition == nil || v.Then == nil {
			return fmt.Errorf("IfThen node requires condition and then_child")
		}
		n.Condition = v.Condition
		n.Then = v.Then
		n.Else = v.Else
	case TypeWait:
		var v struct {
			Type    string  `toml:"type"`
			Seconds float64 `toml:"seconds"`
		}
		if err := document.Decode(tbl, &v); err != nil {
			return err
		}
		n.Seconds = v.Seconds
	case TypeAction:
		var v struct {
			Type      string   `toml:"type"`
			Name      string   `toml:"name"`
			Behaviors []Action `toml:"behaviors"`
		}
		if err := document.Decode(tbl, &v); err != nil {
			return err
		}
		n.Name = v.Name
		n.Behaviors = v.Behaviors
	case TypeTrigger:
		var v struct {
			Type        string `toml:"type"`
			TriggerType string `toml:"trigger_type"`
		}
		if err := document.Decode(tbl, &v); err != nil {
			return err
		}
		n.TriggerType = v.TriggerType
	}

	n.Type = nodeType
	return nil
}

// UnmarshalDocument decodes a behavior instruction table, dispatching on
// its "action" tag.
func (a *Action) UnmarshalDocument(data any) error {
	tbl, ok := data.(document.Table)
	if !ok {
		return fmt.Errorf("behavior action must be a table, got %T", data)
	}
	typ, err := tagOf(tbl, "action")
	if err != nil {
		return err
	}

	actionType := ActionType(typ)
	switch actionType {
	case ActionMoveDown, ActionMoveUp, ActionMoveLeft, ActionMoveRight,
		ActionBrakeHorizontal, ActionBrakeAngular,
		ActionFindPlayerTarget, ActionMoveToTarget, ActionRotateToTarget,
		ActionMoveForward, ActionLoseTarget:
		var v struct {
			Action string `toml:"action"`
		}
		if err := document.Decode(tbl, &v); err != nil {
			return err
		}
	case ActionMoveTo:
		var v struct {
			Action string  `toml:"action"`
			X      float64 `toml:"x"`
			Y      float64 `toml:"y"`
		}
		if err := document.Decode(tbl, &v); err != nil {
			return err
		}
		a.X = v.X
		a.Y = v.Y
	case ActionSpawnMob, ActionSpawnProjectile:
		var v struct {
			Action string   `toml:"action"`
			Keys   []string `toml:"keys"`
		}
		if err := document.Decode(tbl, &v); err != nil {
			return err
		}
		a.Keys = v.Keys
	case ActionDoForTime:
		var v struct {
			Action  string  `toml:"action"`
			Seconds float64 `toml:"seconds"`
		}
		if err := document.Decode(tbl, &v); err != nil {
			return err
		}
		a.Seconds = v.Seconds
	case ActionTransmitMobBehavior:
		var v struct {
			Action    string   `toml:"action"`
			MobType   string   `toml:"mob_type"`
			Behaviors []Action `toml:"behaviors"`
		}
		if err := document.Decode(tbl, &v); err != nil {
			return err
		}
		a.MobType = v.MobType
		a.Behaviors = v.Behaviors
	case ActionRotateJointsClockwise:
		var v struct {
			Action string   `toml:"action"`
			Keys   []string `toml:"keys"`
		}
		if err := document.Decode(tbl, &v); err != nil {
			return err
		}
		a.Keys = v.Keys
	default:
		return fmt.Errorf("unknown behavior action %q", typ)
	}

	a.Type = actionType
	return nil
}

func tagOf(tbl document.Table, key string) (string, error) {
	raw, ok := tbl[key]
	if !ok {
		return "", fmt.Errorf("missing %q tag", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%q tag must be a string, got %T", key, raw)
	}
	return s, nil
}
