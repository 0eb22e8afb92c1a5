// Package policy holds the single visibility decision shared by the list
// and direct-fetch paths, so the two can never drift apart.
package policy

import (
	"socialspace/model"
)

type Decision int

const (
	// Show: the caller may see the post.
	Show Decision = iota
	// Hide: the post is omitted from listings.
	Hide
	// Forbid: a direct fetch is denied outright.
	Forbid
)

func (d Decision) String() string {
	switch d {
	case Show:
		return "show"
	case Hide:
		return "hide"
	default:
		return "forbid"
	}
}

// Decide evaluates whether callerID may see a post authored by author.
// author is nil when the author record could not be resolved; an unknown
// author is never treated as public. Ownership always wins over privacy.
func Decide(post model.Post, author *model.User, callerID string) Decision {
	if author == nil {
		return Forbid
	}
	if callerID == author.ID {
		return Show
	}
	if !author.IsPrivate {
		return Show
	}
	return Hide
}
