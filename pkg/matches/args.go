package matches

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Annotation keys DeclareArgs stores on a command.
const (
	ArgsAnnotation         = "subdispatch_args"
	RequiredArgsAnnotation = "subdispatch_required_args"
)

// DeclareArgs names the positional arguments of cmd. The first
// len(required) positionals must be given; the optional ones may follow.
// It also installs the matching cobra.RangeArgs validator.
func DeclareArgs(cmd *cobra.Command, required, optional []string) {
	all := make([]string, 0, len(required)+len(optional))
	all = append(all, required...)
	all = append(all, optional...)

	if cmd.Annotations == nil {
		cmd.Annotations = make(map[string]string)
	}
	cmd.Annotations[ArgsAnnotation] = strings.Join(all, ",")
	cmd.Annotations[RequiredArgsAnnotation] = strconv.Itoa(len(required))
	cmd.Args = cobra.RangeArgs(len(required), len(all))
}

// DeclaredArgs returns the positional names declared on cmd and how many
// of them are required.
func DeclaredArgs(cmd *cobra.Command) (names []string, required int) {
	raw := cmd.Annotations[ArgsAnnotation]
	if raw == "" {
		return nil, 0
	}
	names = strings.Split(raw, ",")
	required, err := strconv.Atoi(cmd.Annotations[RequiredArgsAnnotation])
	if err != nil || required > len(names) {
		required = 0
	}
	return names, required
}

// Guaranteed reports whether the argument or flag name always has a value
// once cmd is selected: a required positional, a flag marked required, or a
// flag with a non-empty default.
func Guaranteed(cmd *cobra.Command, name string) bool {
	names, required := DeclaredArgs(cmd)
	for i, n := range names {
		if n == name {
			return i < required
		}
	}

	f := lookupFlag(cmd, name)
	if f == nil {
		return false
	}
	if req, ok := f.Annotations[cobra.BashCompOneRequiredFlag]; ok && len(req) > 0 && req[0] == "true" {
		return true
	}
	return f.DefValue != ""
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	if f := cmd.PersistentFlags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}
