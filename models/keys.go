package models

import (
	"fmt"
	"strings"
)

// Key attribute names shared by every table.
const (
	AttrPK = "PK"
	AttrSK = "SK"
)

// Sort-key prefixes inside a user partition. Every entity family keeps its
// own prefix so a begins_with query isolates it.
const (
	PrefixGoal     = "GOAL#"
	PrefixTask     = "TASK#"
	PrefixQuest    = "QUEST#"
	PrefixBadge    = "BADGE#"
	PrefixMessage  = "MSG#"
	PrefixReaction = "SUMMARY#REACT#"
)

// ProfileSK is the fixed sort key of the single profile item per user.
const ProfileSK = "PROFILE"

// UserPK builds the partition key for a user's core partition.
func UserPK(userID string) string {
	return "USER#" + userID
}

// MessagePK builds the partition key for a message's reaction summaries.
func MessagePK(messageID string) string {
	return "MSG#" + messageID
}

// RoomPK namespaces a plain room identifier into the room-message key-space.
// Guild identifiers never pass through here; they are stored verbatim.
func RoomPK(roomID string) string {
	return "ROOM#" + roomID
}

// IsGuildRoom reports whether a room id addresses the guild message table.
func IsGuildRoom(roomID string) bool {
	return strings.HasPrefix(roomID, "GUILD#")
}

func GoalSK(goalID string) string {
	return PrefixGoal + goalID
}

func TaskSK(taskID string) string {
	return PrefixTask + taskID
}

func QuestSK(questID string) string {
	return PrefixQuest + questID
}

func BadgeSK(badgeID string) string {
	return PrefixBadge + badgeID
}

// ReactionSK builds the sort key of one per-emoji counter row.
func ReactionSK(shortcode string) string {
	return PrefixReaction + shortcode
}

// MessageSK is the write-once sort key of a message: the zero-padded
// millisecond timestamp keeps lexicographic order equal to chronological
// order, and the message id breaks same-millisecond ties.
func MessageSK(tsMillis int64, messageID string) string {
	return fmt.Sprintf("%s%013d#%s", PrefixMessage, tsMillis, messageID)
}

// GoalIDFromSK recovers the goal id from its sort key.
func GoalIDFromSK(sk string) string {
	return strings.TrimPrefix(sk, PrefixGoal)
}

// TaskIDFromSK recovers the task id from its sort key.
func TaskIDFromSK(sk string) string {
	return strings.TrimPrefix(sk, PrefixTask)
}

// QuestIDFromSK recovers the quest id from its sort key.
func QuestIDFromSK(sk string) string {
	return strings.TrimPrefix(sk, PrefixQuest)
}

// BadgeIDFromSK recovers the badge id from its sort key.
func BadgeIDFromSK(sk string) string {
	return strings.TrimPrefix(sk, PrefixBadge)
}

// ShortcodeFromSK recovers the emoji shortcode from a counter row's sort key.
func ShortcodeFromSK(sk string) string {
	return strings.TrimPrefix(sk, PrefixReaction)
}
