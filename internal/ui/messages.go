package ui

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// ReadyMarker is appended to the first frames when Options.ReadyMarker is set
const ReadyMarker = "__READY__"
