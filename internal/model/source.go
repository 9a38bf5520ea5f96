package model

// Source records how an entity entered the system.
type Source string

const (
	SourceManual     Source = "manual"
	SourceChat       Source = "chat"
	SourceRecurrence Source = "recurrence"
)
