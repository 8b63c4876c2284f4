package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventMemberSelected   EventType = "MemberSelected"
	EventSelectionCleared EventType = "SelectionCleared"
	EventCloseRequested   EventType = "CloseRequested"
	EventConfigLoaded     EventType = "ConfigLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// MemberSelectedEvent is emitted when the user picks a row
type MemberSelectedEvent struct {
	Member Member
}

func (e MemberSelectedEvent) Type() EventType { return EventMemberSelected }

// SelectionClearedEvent is emitted when the user clears the selection
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// CloseRequestedEvent is emitted when the user dismisses the list.
// Member is the selection at the time of closing, if any.
type CloseRequestedEvent struct {
	Member   Member
	Selected bool
}

func (e CloseRequestedEvent) Type() EventType { return EventCloseRequested }

// ConfigLoadedEvent is emitted after configuration has been read
type ConfigLoadedEvent struct {
	Path    string
	Members int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }
