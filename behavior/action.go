package behavior

// ActionType is the declared variant of one behavior instruction.
type ActionType string

const (
	// Movement.
	ActionMoveDown        ActionType = "MoveDown"
	ActionMoveUp          ActionType = "MoveUp"
	ActionMoveLeft        ActionType = "MoveLeft"
	ActionMoveRight       ActionType = "MoveRight"
	ActionBrakeHorizontal ActionType = "BrakeHorizontal"
	ActionBrakeAngular    ActionType = "BrakeAngular"
	ActionMoveTo          ActionType = "MoveTo"

	// Targeting.
	ActionFindPlayerTarget ActionType = "FindPlayerTarget"
	ActionMoveToTarget     ActionType = "MoveToTarget"
	ActionRotateToTarget   ActionType = "RotateToTarget"
	ActionMoveForward      ActionType = "MoveForward"
	ActionLoseTarget       ActionType = "LoseTarget"

	// Spawning.
	ActionSpawnMob        ActionType = "SpawnMob"
	ActionSpawnProjectile ActionType = "SpawnProjectile"

	// Timing.
	ActionDoForTime ActionType = "DoForTime"

	// Communication.
	ActionTransmitMobBehavior ActionType = "TransmitMobBehavior"

	// Joints.
	ActionRotateJointsClockwise ActionType = "RotateJointsClockwise"
)

// Action is a single behavior instruction inside an Action node. Only
// the fields belonging to the declared Type carry meaning.
type Action struct {
	Type ActionType

	// MoveTo.
	X float64
	Y float64

	// DoForTime.
	Seconds float64

	// SpawnMob, SpawnProjectile (optional spawner keys) and
	// RotateJointsClockwise (joint keys).
	Keys []string

	// TransmitMobBehavior.
	MobType   string
	Behaviors []Action
}
