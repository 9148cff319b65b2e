package models

// Task represents a task item stored in the core table. GoalID is a
// back-reference, not ownership; the partition owner owns the task.
type Task struct {
	PK        string   `dynamodbav:"PK" json:"-"`
	SK        string   `dynamodbav:"SK" json:"-"`
	Type      string   `dynamodbav:"type" json:"-"`
	TaskID    string   `dynamodbav:"taskId" json:"taskId"`
	GoalID    string   `dynamodbav:"goalId" json:"goalId"`
	Title     string   `dynamodbav:"title" json:"title"`
	DueAt     int64    `dynamodbav:"dueAt,omitempty" json:"dueAt,omitempty"` // epoch seconds
	Status    string   `dynamodbav:"status" json:"status"`
	Tags      []string `dynamodbav:"tags,omitempty" json:"tags"`
	CreatedAt string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt string   `dynamodbav:"updatedAt" json:"updatedAt"`
}

// Normalize applies defaults for optional fields absent in storage.
func (t *Task) Normalize() {
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.TaskID == "" {
		t.TaskID = TaskIDFromSK(t.SK)
	}
}
