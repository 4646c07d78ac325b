package bga

import (
	"encoding/json"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/cardtable-labs/bga-cli/internal/model"
)

// marker names the inline script variable carrying the catalog blob.
const marker = "globalUserInfos"

var markerRe = regexp.MustCompile(`(?s)globalUserInfos\s*=\s*(\{.*?\});`)

// ErrMarkerNotFound means no inline script carried the globalUserInfos
// assignment the extractor scans for.
var ErrMarkerNotFound = eris.New("bga: globalUserInfos marker not found")

// GameList is the extracted catalog: the raw game_list JSON for snapshots
// plus the decoded records for the report stage.
type GameList struct {
	Raw   json.RawMessage
	Games []model.Game
}

// ExtractGameList scans the page's script elements for the globalUserInfos
// assignment and decodes its game_list member. Returns ErrMarkerNotFound
// when no script carries the assignment.
func ExtractGameList(page io.Reader) (*GameList, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, eris.Wrap(err, "bga: parse page")
	}

	var blob string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if !strings.Contains(text, marker) {
			return true
		}
		m := markerRe.FindStringSubmatch(text)
		if m == nil {
			return true
		}
		blob = m[1]
		return false
	})
	if blob == "" {
		return nil, ErrMarkerNotFound
	}

	var infos struct {
		GameList json.RawMessage `json:"game_list"`
	}
	if err := json.Unmarshal([]byte(blob), &infos); err != nil {
		return nil, eris.Wrap(err, "bga: decode globalUserInfos")
	}

	var games []model.Game
	if err := json.Unmarshal(infos.GameList, &games); err != nil {
		return nil, eris.Wrap(err, "bga: decode game_list")
	}

	return &GameList{Raw: infos.GameList, Games: games}, nil
}
