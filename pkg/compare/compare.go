// Package compare computes which followed accounts do not follow back.
package compare

import (
	"encoding/json"

	"github.com/OopsException/ghost-followers/pkg/export"
	"github.com/OopsException/ghost-followers/pkg/username"
)

// NotFollowingBack returns the canonical usernames present in following but
// absent from followers, in order of first appearance in following.
//
// Neither input needs to be normalized or deduplicated beforehand. Values
// that normalize to the empty string are ignored on both sides. The result
// is never nil.
func NotFollowingBack(followers, following []string) []string {
	followed := username.NewSet(len(followers))
	for _, u := range followers {
		followed.Add(u)
	}

	seen := username.NewSet(len(following))
	out := make([]string, 0)
	for _, u := range following {
		nu := username.Normalize(u)
		if !seen.Add(nu) {
			continue
		}
		if !followed.Contains(nu) {
			out = append(out, nu)
		}
	}
	return out
}

// Result is the outcome of one comparison. It is immutable: accessors
// return copies.
type Result struct {
	followers        []string
	following        []string
	notFollowingBack []string
}

// New builds a Result from extracted username lists.
func New(followers, following []string) *Result {
	return &Result{
		followers:        username.Dedupe(followers),
		following:        username.Dedupe(following),
		notFollowingBack: NotFollowingBack(followers, following),
	}
}

// Documents extracts both decoded export documents and compares them.
// A top-level shape mismatch in either document is returned as is.
func Documents(followersDoc, followingDoc any) (*Result, error) {
	followers, err := export.Followers(followersDoc)
	if err != nil {
		return nil, err
	}
	following, err := export.Following(followingDoc)
	if err != nil {
		return nil, err
	}
	return New(followers, following), nil
}

// Followers returns the canonical followers list.
func (r *Result) Followers() []string { return clone(r.followers) }

// Following returns the canonical following list.
func (r *Result) Following() []string { return clone(r.following) }

// NotFollowingBack returns the followed accounts missing from followers.
func (r *Result) NotFollowingBack() []string { return clone(r.notFollowingBack) }

// Counts returns the lengths of the three lists.
func (r *Result) Counts() (followers, following, notFollowingBack int) {
	return len(r.followers), len(r.following), len(r.notFollowingBack)
}

type resultJSON struct {
	Followers        []string `json:"followers"`
	Following        []string `json:"following"`
	NotFollowingBack []string `json:"not_following_back"`
}

// MarshalJSON encodes the three lists under snake_case keys.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Followers:        r.followers,
		Following:        r.following,
		NotFollowingBack: r.notFollowingBack,
	})
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
