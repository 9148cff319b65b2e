package models

// CoreTable is the single DynamoDB table holding profiles, goals, tasks,
// quests, badge awards and reaction summaries.
const CoreTable = "StriveCore"

// Message tables. Two physically distinct key-spaces with the same item schema.
const (
	RoomMessagesTable  = "StriveRoomMessages"
	GuildMessagesTable = "StriveGuildMessages"
)

// ✅ Entity type discriminators (stored in the `type` attribute)
const (
	TypeProfile  = "PROFILE"
	TypeGoal     = "GOAL"
	TypeTask     = "TASK"
	TypeQuest    = "QUEST"
	TypeBadge    = "BADGE"
	TypeMessage  = "MESSAGE"
	TypeReaction = "REACTION_SUMMARY"
)

// ✅ Goal statuses
const (
	GoalStatusActive    = "active"
	GoalStatusPaused    = "paused"
	GoalStatusCompleted = "completed"
	GoalStatusArchived  = "archived"
)

// ✅ Task statuses
const (
	TaskStatusActive     = "active"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// ✅ Room types
const (
	RoomTypeGuild   = "guild"
	RoomTypeGeneral = "general"
)

// MaxQueryLimit is the hard ceiling on list results regardless of the
// caller-requested limit.
const MaxQueryLimit = 100
