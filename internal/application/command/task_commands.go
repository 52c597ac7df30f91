package command

type CreateTaskCommand struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TaskType    string `json:"task_type"`
}

type EditTaskCommand struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TaskType    string `json:"task_type"`
}

// RepositionTaskCommand carries the raw instants from a calendar
// drag/resize; they are parsed server-side and rejected when malformed.
type RepositionTaskCommand struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
