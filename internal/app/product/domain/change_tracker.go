package domain

import "sort"

// ChangeTracker records which attributes a patch touched, so stores can
// write only those columns or document keys.
type ChangeTracker struct {
	dirty map[string]struct{}
}

// NewChangeTracker creates an empty tracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirty: make(map[string]struct{})}
}

// MarkDirty marks a field as modified.
func (ct *ChangeTracker) MarkDirty(field string) {
	ct.dirty[field] = struct{}{}
}

// Dirty reports whether field was modified.
func (ct *ChangeTracker) Dirty(field string) bool {
	_, ok := ct.dirty[field]
	return ok
}

// HasChanges returns true if any field was modified.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirty) > 0
}

// DirtyFields returns the modified field names in sorted order.
func (ct *ChangeTracker) DirtyFields() []string {
	fields := make([]string, 0, len(ct.dirty))
	for field := range ct.dirty {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Clear forgets all modifications, typically after a successful write.
func (ct *ChangeTracker) Clear() {
	ct.dirty = make(map[string]struct{})
}
