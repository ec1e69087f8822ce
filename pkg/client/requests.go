package client

// Request bodies mirror the gateway's route-local expectations. Fields
// tagged omitempty map to optional CLI flags.

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	Action   string `json:"action"`
	Time     string `json:"time,omitempty"`
	Priority string `json:"priority,omitempty"`
	Project  string `json:"project,omitempty"`
	Status   string `json:"status,omitempty"`
}

// UpdateTaskRequest is the body of PUT /tasks/{id}.
type UpdateTaskRequest struct {
	Action   string `json:"action,omitempty"`
	Time     string `json:"time,omitempty"`
	Priority string `json:"priority,omitempty"`
	Status   string `json:"status,omitempty"`
	Assignee string `json:"assignee,omitempty"`
	Progress *int   `json:"progress,omitempty"`
}

// CreateMemoryRequest is the body of POST /memories.
type CreateMemoryRequest struct {
	Moment     string `json:"moment"`
	Meaning    string `json:"meaning"`
	Reason     string `json:"reason,omitempty"`
	Importance string `json:"importance,omitempty"`
	Term       string `json:"term,omitempty"`
	Type       string `json:"type,omitempty"`
}

// CreateIdeaRequest is the body of POST /ideas.
type CreateIdeaRequest struct {
	Idea       string `json:"idea"`
	Share      string `json:"share,omitempty"`
	Importance string `json:"importance,omitempty"`
}

// CreateAgentRequest is the body of POST /agents.
type CreateAgentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
}

// CreateChunkRequest is the body of POST /chunks.
type CreateChunkRequest struct {
	ID           string `json:"id"`
	Level        string `json:"level,omitempty"`
	Dependencies string `json:"dependencies,omitempty"`
}

// CreateTrainingRequest is the body of POST /training.
type CreateTrainingRequest struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
	Type       string `json:"type,omitempty"`
	Tags       string `json:"tags,omitempty"`
	Quality    *int   `json:"quality,omitempty"`
}

// CreateErrorRequest is the body of POST /errors.
type CreateErrorRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Severity    string `json:"severity,omitempty"`
}

// CreateProjectRequest is the body of POST /projects.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PlanQueueItemRequest is the body of POST /queue/plan.
type PlanQueueItemRequest struct {
	TaskName        string `json:"task_name"`
	TaskDescription string `json:"task_description"`
	Priority        string `json:"priority,omitempty"`
	Project         string `json:"project,omitempty"`
}

// CheckAPIKeyRequest is the body of POST /api/check.
type CheckAPIKeyRequest struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key,omitempty"`
}
