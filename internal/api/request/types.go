package request

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Name     string `json:"name,omitempty"`
	Mode     string `json:"mode,omitempty"`
	AI       *bool  `json:"ai,omitempty"`
	Strategy string `json:"strategy,omitempty"`
}

// TouchRequest is the request body for clicking a square. Rows outside the
// board address the capture pools.
type TouchRequest struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

// NewGameRequest is the request body for switching a game's mode
type NewGameRequest struct {
	Mode string `json:"mode"`
	AI   *bool  `json:"ai,omitempty"`
}
