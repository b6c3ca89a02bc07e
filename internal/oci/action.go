package oci

// ActionResult is the business-state outcome of a lifecycle-mutating tool.
// It is always returned as a value, never as an error: technical failures
// take the error path and are converted to payloads by the server
// middleware.
type ActionResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	CurrentState string `json:"current_state,omitempty"`

	// Set when the resource was already in the requested state and no
	// mutating call was issued.
	AlreadyRunning bool `json:"already_running,omitempty"`
	AlreadyStopped bool `json:"already_stopped,omitempty"`

	InstanceID string `json:"instance_id,omitempty"`
	DbNodeID   string `json:"db_node_id,omitempty"`
	StopType   string `json:"stop_type,omitempty"`
}

// NodeActionResult is one entry of a DB-system-wide fan-out.
type NodeActionResult struct {
	DbNodeID     string `json:"db_node_id"`
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	CurrentState string `json:"current_state,omitempty"`
}

// FanoutResult is the outcome of a start/stop applied to every node of a
// DB system.
type FanoutResult struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Results []NodeActionResult `json:"results,omitempty"`
}
