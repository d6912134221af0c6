package inventory

type Inventory interface {
	Add(b Book) (bool, error)
	FindByISBN(isbn string) (Book, bool)
	SearchTitle(query string) []Book
	Issue(isbn string) (Outcome, error)
	Return(isbn string) (Outcome, error)
	List() []Book
	Count() int
	Save() error
	Load() LoadResult
}

// Outcome is the result of an issue or return request.
type Outcome int

const (
	OutcomeDone Outcome = iota
	OutcomeNotFound
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDone:
		return "done"
	case OutcomeNotFound:
		return "not found"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// LoadResult says where the in-memory collection came from after Load.
// Only LoadOK means the snapshot was read; every other value leaves the
// collection empty.
type LoadResult int

const (
	LoadOK LoadResult = iota
	LoadMissing
	LoadCorrupt
	LoadUnreadable
)

func (r LoadResult) String() string {
	switch r {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadCorrupt:
		return "corrupt"
	case LoadUnreadable:
		return "unreadable"
	default:
		return "unknown"
	}
}

// Logger receives the conditions the inventory reports instead of failing:
// degraded loads, rejected adds and failed saves. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

type Option func(*JSONInventory)

func WithLogger(logger Logger) Option {
	return func(inv *JSONInventory) {
		if logger != nil {
			inv.log = logger
		}
	}
}
