package entity

type GridState int

const (
	GridEmpty GridState = iota
	GridLoading
	GridPopulated
	GridError
	GridNoResults
)

func (s GridState) String() string {
	switch s {
	case GridEmpty:
		return "empty"
	case GridLoading:
		return "loading"
	case GridPopulated:
		return "populated"
	case GridError:
		return "error"
	case GridNoResults:
		return "no-results"
	default:
		return "unknown"
	}
}

type DetailState int

const (
	DetailClosed DetailState = iota
	DetailLoading
	DetailReady
	DetailFailed
)

// DetailView is what the detail "modal" shows. Deal is set only when Ready.
type DetailView struct {
	State    DetailState
	DealID   string
	Deal     *DealDetail
	Message  string
	Closable bool
}
