package constants

// AppName is used for config paths and the logger prefix.
const AppName = "trackerd"

// DefaultDBPath is the default location of the sqlite store.
const DefaultDBPath = "~/.config/trackerd/trackerd.db"

// DateFormat is the canonical day format used for persisted record days
// and CLI date flags.
const DateFormat = "2006-01-02"

// Emojis is the glyph palette offered by the tracker creation form.
var Emojis = []string{
	"🙂", "😻", "🌺", "🐶", "❤️", "😱",
	"😇", "😡", "🥶", "🤔", "🙌", "🍔",
	"🥦", "🏓", "🥇", "🎸", "🏝", "😪",
}

// Colors is the tracker color palette, hex RRGGBB.
var Colors = []string{
	"FD4C49", "FF881E", "007BFA", "6E44FE", "33CF69", "E66DD4",
	"F9D4D4", "34A7FE", "46E69D", "35347C", "FF674D", "FF99CC",
	"F6C48B", "7994F5", "832CF1", "AD56DA", "8D72E3", "2FD058",
}
