package domain

import "go.trai.ch/zerr"

// Category sentinels. Concrete failures wrap one of these as their cause so
// callers can branch with errors.Is.
var (
	// ErrValidation is returned when user-supplied input is rejected.
	ErrValidation = zerr.New("validation failed")

	// ErrLookup is returned when a named layout, corpus or author does not exist.
	ErrLookup = zerr.New("not found")

	// ErrOwnership is returned when the caller may not mutate a layout.
	ErrOwnership = zerr.New("permission denied")

	// ErrDegenerate is returned when a computation has nothing to count.
	ErrDegenerate = zerr.New("degenerate input")

	// ErrCorrupt is returned when persisted data or a resource cannot be decoded.
	ErrCorrupt = zerr.New("corrupt data")

	// ErrMaintenance is returned when a mutation is attempted during maintenance.
	ErrMaintenance = zerr.New("under maintenance")
)

var (
	// ErrLayoutExists is returned when adding a layout under a taken name.
	ErrLayoutExists = zerr.Wrap(ErrValidation, "layout already exists")

	// ErrLayoutNotFound is returned when a layout name is not registered.
	ErrLayoutNotFound = zerr.Wrap(ErrLookup, "layout does not exist")

	// ErrNotOwner is returned when a non-owner tries to mutate a layout.
	ErrNotOwner = zerr.Wrap(ErrOwnership, "layout is owned by another user")

	// ErrNotPrivileged is returned when an operation is reserved to privileged users.
	ErrNotPrivileged = zerr.Wrap(ErrOwnership, "this operation requires a privileged user")

	// ErrInvalidName is returned when a layout name breaks the naming rules.
	ErrInvalidName = zerr.Wrap(ErrValidation, "invalid layout name")

	// ErrBoardUndefined is returned when row offsets match no known board shape.
	ErrBoardUndefined = zerr.Wrap(ErrValidation, "board shape undefined")

	// ErrTooFewRows is returned when a matrix has less than three rows.
	ErrTooFewRows = zerr.Wrap(ErrValidation, "expected at least 3 rows")

	// ErrTooManyRows is returned when a matrix has more rows than its board supports.
	ErrTooManyRows = zerr.Wrap(ErrValidation, "too many rows for board")

	// ErrRowTooWide is returned when a row exceeds the addressable column range.
	ErrRowTooWide = zerr.Wrap(ErrValidation, "row has too many keys")

	// ErrDuplicateKey is returned when a character appears twice in a matrix.
	ErrDuplicateKey = zerr.Wrap(ErrValidation, "character is defined twice")

	// ErrEmptyCorpus is returned when statistics are requested over an empty corpus.
	ErrEmptyCorpus = zerr.Wrap(ErrDegenerate, "corpus is empty")

	// ErrCorpusNotFound is returned when a corpus has no grams on disk.
	ErrCorpusNotFound = zerr.Wrap(ErrLookup, "corpus does not exist")

	// ErrAuthorNotFound is returned when no author matches a query.
	ErrAuthorNotFound = zerr.Wrap(ErrLookup, "author does not exist")

	// ErrAlreadyLiked is returned when a user likes the same layout twice.
	ErrAlreadyLiked = zerr.Wrap(ErrValidation, "layout already liked")

	// ErrNotLiked is returned when a user unlikes a layout they never liked.
	ErrNotLiked = zerr.Wrap(ErrValidation, "layout not liked")

	// ErrReservedLayout is returned when liking a layout that cannot be liked.
	ErrReservedLayout = zerr.Wrap(ErrValidation, "layout cannot be liked")

	// ErrPackedMalformed is returned when a packed position, layout or stat cannot be decoded.
	ErrPackedMalformed = zerr.Wrap(ErrCorrupt, "malformed packed string")

	// ErrUnknownFinger is returned when a finger abbreviation is not recognized.
	ErrUnknownFinger = zerr.Wrap(ErrCorrupt, "unknown finger")

	// ErrUnknownMetric is returned when a metric name is not recognized.
	ErrUnknownMetric = zerr.Wrap(ErrCorrupt, "unknown metric")

	// ErrComboMalformed is returned when a metric table key is not three finger names.
	ErrComboMalformed = zerr.Wrap(ErrCorrupt, "malformed finger combination")

	// ErrGramMalformed is returned when a corpus key has the wrong number of characters.
	ErrGramMalformed = zerr.Wrap(ErrCorrupt, "malformed gram")
)

var (
	// ErrStoreCreateFailed is returned when the data directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create data directory")

	// ErrStoreReadFailed is returned when a data file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read data file")

	// ErrStoreUnmarshalFailed is returned when a data file cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal data file")

	// ErrStoreMarshalFailed is returned when data cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal data")

	// ErrStoreWriteFailed is returned when a data file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write data file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCorpusReadFailed is returned when a corpus file cannot be read.
	ErrCorpusReadFailed = zerr.New("failed to read corpus")
)
