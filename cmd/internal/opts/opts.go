package opts

import "github.com/spf13/pflag"

// Options is anything that registers its own flags.
type Options interface {
	AddToFlagSet(*pflag.FlagSet)
}

var _ Options = (*Global)(nil)

// Global holds the flags shared by every command.
type Global struct {
	NoColor bool
	Format  string
}

// AddToFlagSet adds the global flags using the current
// values as defaults.
func (g *Global) AddToFlagSet(set *pflag.FlagSet) {
	set.BoolVar(&g.NoColor, "nocolor", g.NoColor, "turn off colors")
	set.StringVar(&g.Format, "format", g.Format, "format used to list students (debug|table)")
}
