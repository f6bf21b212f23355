package export

import (
	"github.com/OopsException/ghost-followers/pkg/username"
)

const (
	keyStringListData         = "string_list_data"
	keyValue                  = "value"
	keyRelationshipsFollowing = "relationships_following"
	keyTitle                  = "title"
)

// Followers returns the usernames of a decoded followers document.
//
// The document must be a list. For every object entry, the first object
// inside its string_list_data that has a "value" key holds the username;
// scanning of that entry stops there even when the value is unusable.
// Entries without a usable value contribute nothing.
func Followers(doc any) ([]string, error) {
	entries, ok := doc.([]any)
	if !ok {
		return nil, &ShapeError{Document: DocFollowers, Reason: ReasonNotList}
	}

	users := username.NewSet(len(entries))
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		items, ok := entry[keyStringListData].([]any)
		if !ok {
			continue
		}
		if v, ok := firstValue(items); ok {
			users.Add(v)
		}
	}
	return users.Slice(), nil
}

// firstValue returns the "value" of the first object in items carrying that
// key. The boolean is false when no such object exists or its value is not
// a string.
func firstValue(items []any) (string, bool) {
	for _, it := range items {
		item, ok := it.(map[string]any)
		if !ok {
			continue
		}
		raw, ok := item[keyValue]
		if !ok {
			continue
		}
		s, ok := raw.(string)
		return s, ok
	}
	return "", false
}

// Following returns the usernames of a decoded following document.
//
// The document must be an object whose relationships_following field is a
// list. Each object entry contributes its "title" when that is a non-blank
// string.
func Following(doc any) ([]string, error) {
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, &ShapeError{Document: DocFollowing, Reason: ReasonNotObject}
	}
	entries, ok := root[keyRelationshipsFollowing].([]any)
	if !ok {
		return nil, &ShapeError{Document: DocFollowing, Reason: ReasonMissingFollowing}
	}

	users := username.NewSet(len(entries))
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if title, ok := entry[keyTitle].(string); ok {
			users.Add(title)
		}
	}
	return users.Slice(), nil
}
