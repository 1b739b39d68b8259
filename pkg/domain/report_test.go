package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStripKeys(t *testing.T) {
	keys := DefaultStripKeys()
	assert.Equal(t, []string{"references", "historyManager"}, keys)

	// Callers may mutate the returned slice freely.
	keys[0] = "changed"
	assert.Equal(t, KeyReferences, DefaultStripKeys()[0])
}

func TestReport_Complete(t *testing.T) {
	r := &Report{Removed: []string{KeyReferences, KeyHistoryManager}}
	assert.True(t, r.Complete())

	r.Missing = []string{KeyHistoryManager}
	assert.False(t, r.Complete())
}
