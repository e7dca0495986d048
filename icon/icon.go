// Package icon renders UI symbols in the variant selected by icons.variant.
package icon

import (
	"github.com/spf13/viper"
	"github.com/whisperdoll/aria-client/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns every supported icons.variant value.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Playing
	Track
	Shuffle
	Repeat
)

type iconDef struct {
	emoji, nerd, plain, squares string
}

var icons = map[Icon]iconDef{
	Success:  {emoji: "✅", nerd: "\uf00c", plain: "✓", squares: "🟩"},
	Fail:     {emoji: "❌", nerd: "\uf00d", plain: "✗", squares: "🟥"},
	Progress: {emoji: "⏳", nerd: "\uf252", plain: "…", squares: "🟦"},
	Playing:  {emoji: "▶️", nerd: "\uf04b", plain: ">", squares: "🟧"},
	Track:    {emoji: "🎵", nerd: "\uf001", plain: "-", squares: "⬜"},
	Shuffle:  {emoji: "🔀", nerd: "\uf074", plain: "~", squares: "🟪"},
	Repeat:   {emoji: "🔁", nerd: "\uf01e", plain: "@", squares: "🟨"},
}

func (d iconDef) get(variant string) string {
	switch variant {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns i rendered in the configured variant, or "" for an unknown variant.
func Get(i Icon) string {
	return icons[i].get(viper.GetString(key.IconsVariant))
}

