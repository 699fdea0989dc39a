package journal

// SharedConfig is the singleton profile shared by both users.
// The anniversary is set once at seed time and is immutable afterwards.
type SharedConfig struct {
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Anniversary Date   `json:"anniversary"`
}

// HighScore is the numeric singleton tracked by the dashboard widget.
type HighScore struct {
	Record int `json:"record"`
}
