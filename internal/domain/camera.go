package domain

// CameraStatus is the client-facing shape of a camera status query.
// Pan, tilt and zoom are fixed placeholders: the vendor status endpoint does
// not report live PTZ position, so the gateway always answers 0/0/1.
type CameraStatus struct {
	Status string `json:"status"`
	Name   string `json:"name"`
	UID    string `json:"uid"`
	Pan    int    `json:"pan"`
	Tilt   int    `json:"tilt"`
	Zoom   int    `json:"zoom"`
}

// Preset is a saved camera position as reported by the vendor.
type Preset struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CommandResult is the client-facing outcome of a PTZ or preset command.
type CommandResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
