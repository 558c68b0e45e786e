package changelog

import "strings"

// orderedChangesets maps lowercased headers to changesets while keeping the
// order in which distinct headers were first seen.
type orderedChangesets struct {
	index map[string]int
	items []Changeset
}

func newOrderedChangesets() *orderedChangesets {
	return &orderedChangesets{index: make(map[string]int)}
}

// add registers a changeset or appends its contents to the changeset first
// seen under the same header, ignoring case. The first header text is kept.
func (o *orderedChangesets) add(cs Changeset) {
	key := strings.ToLower(cs.Header)
	if i, ok := o.index[key]; ok {
		o.items[i].Contents = append(o.items[i].Contents, cs.Contents...)
		return
	}

	o.index[key] = len(o.items)
	o.items = append(o.items, Changeset{
		Header:   cs.Header,
		Contents: append([]string(nil), cs.Contents...),
	})
}

// Merge combines changeset lists in argument order. Changesets whose headers
// match case-insensitively are merged into the first occurrence; contents of
// later occurrences are appended. The input slices are not modified.
func Merge(lists ...[]Changeset) []Changeset {
	merged := newOrderedChangesets()
	for _, list := range lists {
		for _, cs := range list {
			merged.add(cs)
		}
	}
	return merged.items
}

// MergeFiles parses the given fragment files in order and merges their
// changesets. Every file is validated before anything is merged.
func MergeFiles(paths ...string) ([]Changeset, error) {
	lists := make([][]Changeset, 0, len(paths))
	for _, path := range paths {
		changesets, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		lists = append(lists, changesets)
	}
	return Merge(lists...), nil
}
