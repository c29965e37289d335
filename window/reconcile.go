package window

import "fmt"

// ApplyAdditions returns a new index with every addition spliced in at its
// recorded position. It walks the old entries once, carrying the height added
// so far and shifting each untouched entry by it. idx is not modified.
func ApplyAdditions(idx *Index, additions []Change) (*Index, error) {
	n := idx.Len()
	total := n + len(additions)
	entries := make([]Entry, 0, total)

	shift, next := 0, 0
	for pos := 0; pos < total; pos++ {
		if next < len(additions) && additions[next].Index == pos {
			add := additions[next]
			base := idx.ScrollHeight()
			if pos-next < n {
				base = idx.entries[pos-next].OffsetTop
			}
			height := max(add.Height, 0)
			entries = append(entries, Entry{OffsetTop: base + shift, Height: height, Item: add.Item})
			shift += height
			next++
			continue
		}
		if pos-next >= n {
			break
		}
		entry := idx.entries[pos-next]
		entry.OffsetTop += shift
		entries = append(entries, entry)
	}

	if next != len(additions) || len(entries) != total {
		return nil, fmt.Errorf("%w: addition %d of %d does not fit an index of %d entries", ErrInvalidChange, next, len(additions), n)
	}
	return &Index{entries: entries}, nil
}

// ApplyDeletions returns a new index without the deleted entries. Every entry
// after a deletion moves up by the height removed so far. idx is not modified.
func ApplyDeletions(idx *Index, deletions []Change) (*Index, error) {
	n := idx.Len()
	entries := make([]Entry, 0, max(n-len(deletions), 0))

	removed, next := 0, 0
	for i := 0; i < n; i++ {
		entry := idx.entries[i]
		if next < len(deletions) && deletions[next].Index == i {
			if entry.Item.ID() != deletions[next].Item.ID() {
				return nil, fmt.Errorf("%w: deletion at %d is %q, index holds %q", ErrInvalidChange, i, deletions[next].Item.ID(), entry.Item.ID())
			}
			removed += entry.Height
			next++
			continue
		}
		entry.OffsetTop -= removed
		entries = append(entries, entry)
	}

	if next != len(deletions) {
		return nil, fmt.Errorf("%w: deletion %d of %d is out of range for %d entries", ErrInvalidChange, next, len(deletions), n)
	}
	return &Index{entries: entries}, nil
}

// Reconcile applies deletions and then additions to a copy of idx and checks
// that the result lists newItems in order. Both directions may be present in
// one call as long as the surviving items keep their relative order.
func Reconcile(idx *Index, changes Changes, newItems []Item) (*Index, error) {
	next, err := ApplyDeletions(idx, changes.Deletions)
	if err != nil {
		return nil, err
	}
	next, err = ApplyAdditions(next, changes.Additions)
	if err != nil {
		return nil, err
	}

	if next.Len() != len(newItems) {
		return nil, fmt.Errorf("%w: reconciled %d entries for %d items", ErrInvalidChange, next.Len(), len(newItems))
	}
	for i, item := range newItems {
		if next.entries[i].Item.ID() != item.ID() {
			return nil, fmt.Errorf("%w: position %d holds %q, want %q", ErrReordered, i, next.entries[i].Item.ID(), item.ID())
		}
	}
	return next, nil
}
