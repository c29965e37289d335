package window

import "fmt"

// Change is one inserted or removed item. Index is the item's position in the
// list where it is present: the new list for additions, the old list for
// deletions.
type Change struct {
	Index int
	Item  Item
	// Height is the measured height of an added item. It is zero until the
	// item has been mounted and measured.
	Height int
}

// Changes is the membership difference between two item lists.
type Changes struct {
	Additions []Change
	Deletions []Change
}

// Empty reports whether there is nothing to reconcile.
func (c Changes) Empty() bool {
	return len(c.Additions) == 0 && len(c.Deletions) == 0
}

// Diff compares two item lists by identity. Items present only in newItems
// are additions, items present only in oldItems are deletions. Both lists are
// ordered by ascending index.
func Diff(oldItems, newItems []Item) (Changes, error) {
	oldIDs, err := checkUnique(oldItems)
	if err != nil {
		return Changes{}, err
	}
	newIDs, err := checkUnique(newItems)
	if err != nil {
		return Changes{}, err
	}

	var changes Changes
	for i, item := range newItems {
		if _, ok := oldIDs[item.ID()]; !ok {
			changes.Additions = append(changes.Additions, Change{Index: i, Item: item})
		}
	}
	for i, item := range oldItems {
		if _, ok := newIDs[item.ID()]; !ok {
			changes.Deletions = append(changes.Deletions, Change{Index: i, Item: item})
		}
	}
	return changes, nil
}

// CheckOrder reports ErrReordered if the items present in both lists do not
// keep their relative order. changes must be the diff of the two lists.
func CheckOrder(oldItems, newItems []Item, changes Changes) error {
	deleted := make(map[string]struct{}, len(changes.Deletions))
	for _, d := range changes.Deletions {
		deleted[d.Item.ID()] = struct{}{}
	}
	added := make(map[string]struct{}, len(changes.Additions))
	for _, a := range changes.Additions {
		added[a.Item.ID()] = struct{}{}
	}

	j := 0
	for _, item := range oldItems {
		if _, ok := deleted[item.ID()]; ok {
			continue
		}
		for j < len(newItems) {
			if _, ok := added[newItems[j].ID()]; !ok {
				break
			}
			j++
		}
		if j == len(newItems) {
			return fmt.Errorf("%w: %q is missing from the new list", ErrInvalidChange, item.ID())
		}
		if newItems[j].ID() != item.ID() {
			return fmt.Errorf("%w: %q moved before %q", ErrReordered, newItems[j].ID(), item.ID())
		}
		j++
	}
	return nil
}
