package domain

// ReservedLayout is the layout name that cannot be liked.
const ReservedLayout = "qwerty"

// UnknownAuthor is the display name used when an owner has no recorded name.
const UnknownAuthor = "unknown"

// Community is the persisted bookkeeping that surrounds layouts.
type Community struct {
	// Likes maps a layout name to the ids of users who liked it, in like order.
	Likes map[string][]uint64
	// Authors maps a user id to every display name seen for it, oldest first.
	Authors map[uint64][]string
	// Links maps a layout name to an external URL.
	Links map[string]string
	// CorpusPrefs maps a user id to their preferred corpus.
	CorpusPrefs map[uint64]string
}

// NewCommunity returns an empty Community with every table allocated.
func NewCommunity() *Community {
	return &Community{
		Likes:       make(map[string][]uint64),
		Authors:     make(map[uint64][]string),
		Links:       make(map[string]string),
		CorpusPrefs: make(map[uint64]string),
	}
}
