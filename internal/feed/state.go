package feed

// State is the connection manager's lifecycle state.
type State int32

const (
	StateIdle State = iota
	StateResolving
	StateHandshaking
	StateOpen
	StateStreaming
	StateStale
	StateReconnecting
	StateClosed
)

var stateNames = [...]string{
	StateIdle:         "idle",
	StateResolving:    "resolving",
	StateHandshaking:  "handshaking",
	StateOpen:         "open",
	StateStreaming:    "streaming",
	StateStale:        "stale",
	StateReconnecting: "reconnecting",
	StateClosed:       "closed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// MarshalText renders the state name in JSON output.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
