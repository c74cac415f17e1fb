package sim

// Direction is a cardinal facing. The world is y-up, so DirUp faces away
// from the camera (the "back" sprites) and DirDown faces it.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// movementOrder is the priority used when several intents are held at once.
var movementOrder = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the direction on the same axis pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// PlayerState is the animation/behavior state of the player.
type PlayerState int

const (
	IdleBack PlayerState = iota
	IdleRight
	IdleLeft
	IdleFront
	WalkBack
	WalkRight
	WalkLeft
	WalkFront
	AttackBack
	AttackRight
	AttackLeft
	AttackFront
	Die
)

var playerStateNames = [...]string{
	IdleBack:    "IDLE_BACK",
	IdleRight:   "IDLE_RIGHT",
	IdleLeft:    "IDLE_LEFT",
	IdleFront:   "IDLE_FRONT",
	WalkBack:    "WALK_BACK",
	WalkRight:   "WALK_RIGHT",
	WalkLeft:    "WALK_LEFT",
	WalkFront:   "WALK_FRONT",
	AttackBack:  "ATTACK_BACK",
	AttackRight: "ATTACK_RIGHT",
	AttackLeft:  "ATTACK_LEFT",
	AttackFront: "ATTACK_FRONT",
	Die:         "DIE",
}

func (s PlayerState) String() string {
	if s < 0 || int(s) >= len(playerStateNames) {
		return "UNKNOWN"
	}
	return playerStateNames[s]
}

// IsAttack reports whether s is one of the four attack states.
func (s PlayerState) IsAttack() bool {
	return s >= AttackBack && s <= AttackFront
}

// IsWalk reports whether s is one of the four walk states.
func (s PlayerState) IsWalk() bool {
	return s >= WalkBack && s <= WalkFront
}

// Facing returns the direction the state is drawn facing. Die faces front.
func (s PlayerState) Facing() Direction {
	switch s {
	case IdleBack, WalkBack, AttackBack:
		return DirUp
	case IdleRight, WalkRight, AttackRight:
		return DirRight
	case IdleLeft, WalkLeft, AttackLeft:
		return DirLeft
	default:
		return DirDown
	}
}

// stateFor maps a direction onto the idle, walk or attack family whose first
// member is base. The families share the back/right/left/front layout.
func stateFor(base PlayerState, d Direction) PlayerState {
	switch d {
	case DirUp:
		return base
	case DirRight:
		return base + 1
	case DirLeft:
		return base + 2
	default:
		return base + 3
	}
}

func idleState(d Direction) PlayerState { return stateFor(IdleBack, d) }
func walkState(d Direction) PlayerState { return stateFor(WalkBack, d) }
func attackState(d Direction) PlayerState { return stateFor(AttackBack, d) }
