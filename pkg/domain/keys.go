package domain

const (
	// KeyReferences holds the project's reference material. It is not part of the public snapshot.
	KeyReferences = "references"
	// KeyHistoryManager holds internal undo/redo state.
	KeyHistoryManager = "historyManager"
)

// DefaultStripKeys returns the top-level keys removed from every snapshot, in removal order.
func DefaultStripKeys() []string {
	return []string{KeyReferences, KeyHistoryManager}
}
