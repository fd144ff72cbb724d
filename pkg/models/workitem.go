package models

// CreateEpicRequest contains fields for creating an epic
type CreateEpicRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Priority    int    `json:"priority,omitempty"`
}

// CreateTaskRequest contains fields for creating a task under an epic
type CreateTaskRequest struct {
	Description string `json:"description"`
	Action      string `json:"action,omitempty"`
	SortOrder   int    `json:"sort_order,omitempty"`
}

// CreateTestCaseRequest contains fields for creating a test case
type CreateTestCaseRequest struct {
	Description string `json:"description"`
}

// UpdateStatusRequest carries a bare status transition
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Result string `json:"result,omitempty"`
}
