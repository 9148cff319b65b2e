package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyRoundTrips(t *testing.T) {
	assert.Equal(t, "g1", GoalIDFromSK(GoalSK("g1")))
	assert.Equal(t, "t1", TaskIDFromSK(TaskSK("t1")))
	assert.Equal(t, "q1", QuestIDFromSK(QuestSK("q1")))
	assert.Equal(t, "b1", BadgeIDFromSK(BadgeSK("b1")))
	assert.Equal(t, "fire", ShortcodeFromSK(ReactionSK("fire")))
}

func TestMessageSKOrdering(t *testing.T) {
	// Zero-padding guarantees the lexicographic order of sort keys matches
	// the numeric order of timestamps, even across digit-count boundaries.
	small := MessageSK(999, "m")
	big := MessageSK(1000, "m")
	assert.Less(t, small, big)

	assert.Equal(t, "MSG#0000000000999#m", small)
}

func TestReactionSKDoesNotCollideWithMessages(t *testing.T) {
	// Counter rows live under the message's PK; their prefix must never be
	// matched by a begins_with(MSG#) message query.
	assert.False(t, strings.HasPrefix(PrefixReaction, PrefixMessage))
}

func TestGuildRoomDetection(t *testing.T) {
	assert.True(t, IsGuildRoom("GUILD#g1"))
	assert.False(t, IsGuildRoom("team-7"))
	assert.False(t, IsGuildRoom("guild#g1"), "prefix match is case sensitive")

	assert.Equal(t, "ROOM#team-7", RoomPK("team-7"))
}

func TestUserAndMessagePartitions(t *testing.T) {
	assert.Equal(t, "USER#U1", UserPK("U1"))
	assert.Equal(t, "MSG#m1", MessagePK("m1"))
}
