package models

// Goal represents a goal item stored in the core table
type Goal struct {
	PK          string   `dynamodbav:"PK" json:"-"`
	SK          string   `dynamodbav:"SK" json:"-"`
	Type        string   `dynamodbav:"type" json:"-"`
	GoalID      string   `dynamodbav:"goalId" json:"goalId"`
	OwnerID     string   `dynamodbav:"ownerId" json:"ownerId"`
	Title       string   `dynamodbav:"title" json:"title"`
	Description *string  `dynamodbav:"description,omitempty" json:"description"`
	Tags        []string `dynamodbav:"tags,omitempty" json:"tags"`
	Deadline    *string  `dynamodbav:"deadline,omitempty" json:"deadline"` // date-only, e.g. "2025-12-31"
	Status      string   `dynamodbav:"status" json:"status"`
	CreatedAt   string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt   string   `dynamodbav:"updatedAt" json:"updatedAt"`
}

// Normalize applies defaults for optional fields absent in storage.
func (g *Goal) Normalize() {
	if g.Tags == nil {
		g.Tags = []string{}
	}
	if g.GoalID == "" {
		g.GoalID = GoalIDFromSK(g.SK)
	}
}
