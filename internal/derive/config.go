package derive

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/giftledger/pkg/errors"
)

// Load reads an operator-maintained YAML coding-table file and overlays it on
// the built-in defaults. Only the keys present in the file change: a partial
// file that remaps one brand leaves the web sentinel and the other tables
// alone.
//
// File shape:
//
//	web_user_id: Webpage
//	card_codes:
//	  VISA: {standard: MC, web: WM}
//	tribute_codes:
//	  In Memory: MEMR
func Load(path string) (*Rules, error) {
	rules := Default()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var overlay Rules
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	if overlay.WebUserID != "" {
		rules.WebUserID = overlay.WebUserID
	}
	for brand, cc := range overlay.CardCodes {
		rules.CardCodes[brand] = cc
	}
	for label, code := range overlay.TributeCodes {
		rules.TributeCodes[label] = code
	}

	return rules, nil
}
