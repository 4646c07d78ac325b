// Package model defines the game catalog records shared by the
// acquisition and report stages.
package model

import (
	"encoding/json"

	"github.com/rotisserie/eris"
)

// TagTrickTaking is the upstream tag category marking trick-taking games.
const TagTrickTaking = 220

// Tag is one (category, value) pair attached to a game. The upstream
// catalog encodes tags as 2-element JSON arrays; the value half is kept
// raw because its type varies by category.
type Tag struct {
	Category int
	Value    json.RawMessage
}

// UnmarshalJSON decodes the upstream [category, value] array form.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return eris.Wrap(err, "model: decode tag")
	}
	if len(parts) != 2 {
		return eris.Errorf("model: tag has %d elements, want 2", len(parts))
	}
	if err := json.Unmarshal(parts[0], &t.Category); err != nil {
		return eris.Wrap(err, "model: decode tag category")
	}
	t.Value = parts[1]
	return nil
}

// Game is one catalog entry as published in the page's embedded blob.
// Unknown upstream keys are ignored; a null status decodes to "".
type Game struct {
	Name          string `json:"display_name_en"`
	PlayerNumbers []int  `json:"player_numbers"`
	Tags          []Tag  `json:"tags"`
	Status        string `json:"status"`
}

// Row is the final CSV projection of a classified game.
type Row struct {
	Name    string
	Status  string
	Players string
}
