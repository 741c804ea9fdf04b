// Package flagx lets several configuration layers share os.Args: each layer
// picks out only the flags it understands before handing them to its own
// flag.FlagSet.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// Spec lists the flags a layer owns. Bool flags never consume the following
// argument as their value; use "-k=false" to switch one off explicitly.
type Spec struct {
	Value []string
	Bool  []string
}

// FilterArgs keeps only the flags named in allowedFlags (plus their values).
// Both "-c conf.json" and "-c=conf.json" forms are recognised; a following
// argument that starts with "-" is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	return Spec{Value: allowedFlags}.Filter(args)
}

// Filter returns the args that s owns, in order.
func (s Spec) Filter(args []string) []string {
	kinds := make(map[string]bool, len(s.Value)+len(s.Bool))
	for _, f := range s.Value {
		kinds[f] = true
	}
	for _, f := range s.Bool {
		kinds[f] = false
	}

	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := kinds[name]; ok {
				out = append(out, arg)
			}
			continue
		}

		takesValue, ok := kinds[arg]
		if !ok {
			continue
		}
		out = append(out, arg)
		if takesValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

// ConfigPath returns the JSON config file named by -c or -config in os.Args,
// or "" if neither is present. The last occurrence wins.
func ConfigPath() string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c", "-config"}))

	return path
}
