package lifecycle

// State is the lifecycle state of a Manager
type State int

// States in the order a Manager moves through them
const (
	Uninitialized State = iota
	WindowCreated
	GraphicsReady
	UIReady
	AudioReady
	AssetsLoaded
	Running
	ShuttingDown
	Terminated
)

var stateNames = [...]string{
	Uninitialized: "uninitialized",
	WindowCreated: "window created",
	GraphicsReady: "graphics ready",
	UIReady:       "ui ready",
	AudioReady:    "audio ready",
	AssetsLoaded:  "assets loaded",
	Running:       "running",
	ShuttingDown:  "shutting down",
	Terminated:    "terminated",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Stage is one acquisition step of startup
type Stage int

// Stages in acquisition order. Release happens in the reverse order.
const (
	StageWindow Stage = iota
	StageGraphics
	StageUI
	StageAudioDevice
	StageAudioContext
	StageAssets
)

var stageNames = [...]string{
	StageWindow:       "window",
	StageGraphics:     "graphics",
	StageUI:           "ui",
	StageAudioDevice:  "audio device",
	StageAudioContext: "audio context",
	StageAssets:       "assets",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// reached is the state entered once the stage is acquired
func (s Stage) reached() State {
	switch s {
	case StageWindow:
		return WindowCreated
	case StageGraphics:
		return GraphicsReady
	case StageUI:
		return UIReady
	case StageAudioContext:
		return AudioReady
	case StageAssets:
		return AssetsLoaded
	default:
		return -1
	}
}
