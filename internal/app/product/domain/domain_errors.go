package domain

// ErrorKind tags the coarse failures the catalog reports to clients.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindLookupFailed
	KindListFailed
	KindCreateFailed
	KindUpdateFailed
	KindDeleteFailed
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindLookupFailed:
		return "LOOKUP_FAILED"
	case KindListFailed:
		return "LIST_FAILED"
	case KindCreateFailed:
		return "CREATE_FAILED"
	case KindUpdateFailed:
		return "UPDATE_FAILED"
	case KindDeleteFailed:
		return "DELETE_FAILED"
	default:
		return "INTERNAL"
	}
}

// Error is a fixed-message failure. It never wraps the underlying cause,
// so nothing from the store can leak through it.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Catalog errors
var (
	// ErrNotFound indicates that no product has the given identifier.
	ErrNotFound = &Error{Kind: KindNotFound, Message: "product not found"}

	ErrLookupFailed = &Error{Kind: KindLookupFailed, Message: "product lookup failed"}
	ErrListFailed   = &Error{Kind: KindListFailed, Message: "product listing failed"}
	ErrCreateFailed = &Error{Kind: KindCreateFailed, Message: "product create failed"}
	ErrUpdateFailed = &Error{Kind: KindUpdateFailed, Message: "product update failed"}
	ErrDeleteFailed = &Error{Kind: KindDeleteFailed, Message: "product delete failed"}
)
