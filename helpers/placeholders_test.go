package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplacePlaceholders(t *testing.T) {
	got := ReplacePlaceholders("$1 started following your event $2", "Alice", "Go Meetup")
	assert.Equal(t, "Alice started following your event Go Meetup", got)
}

func TestReplacePlaceholdersOutOfRange(t *testing.T) {
	got := ReplacePlaceholders("$1 and $3", "Alice")
	assert.Equal(t, "Alice and ", got)
}

func TestReplacePlaceholdersNoPlaceholders(t *testing.T) {
	got := ReplacePlaceholders("plain text", "unused")
	assert.Equal(t, "plain text", got)
}
