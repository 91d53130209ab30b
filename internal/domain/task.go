package domain

// Task represents a category time is tracked against.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Color         string `json:"color"`
	Icon          string `json:"icon"`
	AccumulatedMs int64  `json:"accumulatedMs"`
}

// NewTask creates a new Task with the given name and color.
func NewTask(name, color string) Task {
	return Task{
		Name:  name,
		Color: color,
		Icon:  "tasks",
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Name != "" && t.AccumulatedMs >= 0
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}

// DefaultTasks returns the task set created on first run.
func DefaultTasks() []*Task {
	return []*Task{
		{ID: 1, Name: "Sleep", Color: "#2196F3", Icon: "bed"},
		{ID: 2, Name: "Office", Color: "#4CAF50", Icon: "briefcase"},
		{ID: 3, Name: "Play", Color: "#FF9800", Icon: "gamepad"},
		{ID: 4, Name: "Study", Color: "#9C27B0", Icon: "book"},
		{ID: 5, Name: "Cook", Color: "#F44336", Icon: "utensils"},
	}
}
