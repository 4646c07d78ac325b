package report

import "github.com/cardtable-labs/bga-cli/internal/model"

// IsTrickTaker reports whether any tag carries the trick-taking category.
// A game with no tags is simply not a trick-taker.
func IsTrickTaker(tags []model.Tag) bool {
	for _, t := range tags {
		if t.Category == model.TagTrickTaking {
			return true
		}
	}
	return false
}
