package models

// Quest represents a quest item stored in the core table
type Quest struct {
	PK               string   `dynamodbav:"PK" json:"-"`
	SK               string   `dynamodbav:"SK" json:"-"`
	Type             string   `dynamodbav:"type" json:"-"`
	QuestID          string   `dynamodbav:"questId" json:"questId"`
	Title            string   `dynamodbav:"title" json:"title"`
	Difficulty       string   `dynamodbav:"difficulty,omitempty" json:"difficulty,omitempty"`
	RewardXP         int      `dynamodbav:"rewardXp" json:"rewardXp"`
	LinkedGoalIDs    []string `dynamodbav:"linkedGoalIds,omitempty" json:"linkedGoalIds"`
	LinkedTaskIDs    []string `dynamodbav:"linkedTaskIds,omitempty" json:"linkedTaskIds"`
	DependsOnQuestIDs []string `dynamodbav:"dependsOnQuestIds,omitempty" json:"dependsOnQuestIds"`
	StartAt          *string  `dynamodbav:"startAt,omitempty" json:"startAt,omitempty"`
	EndAt            *string  `dynamodbav:"endAt,omitempty" json:"endAt,omitempty"`
	CreatedAt        string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt        string   `dynamodbav:"updatedAt" json:"updatedAt"`
}

// Normalize applies defaults for optional fields absent in storage.
func (q *Quest) Normalize() {
	if q.LinkedGoalIDs == nil {
		q.LinkedGoalIDs = []string{}
	}
	if q.LinkedTaskIDs == nil {
		q.LinkedTaskIDs = []string{}
	}
	if q.DependsOnQuestIDs == nil {
		q.DependsOnQuestIDs = []string{}
	}
	if q.QuestID == "" {
		q.QuestID = QuestIDFromSK(q.SK)
	}
}
