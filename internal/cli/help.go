package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Matches section headers like "Usage:" or "Available Commands:"
	helpSectionRe = regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`)
	// Matches command listings: "  add   description text"
	helpCommandRe = regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`)
	// Matches flag lines: "  -d, --days int   description"
	helpFlagRe = regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`)
)

// styledHelpFunc wraps Cobra's default help output in the CLI color scheme.
func styledHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		origOut := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		_ = cmd.Usage()
		cmd.SetOut(origOut)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		for i, line := range lines {
			lines[i] = styleHelpLine(line)
		}
		cmd.Print(strings.Join(lines, "\n") + "\n")
	}
}

// styleHelpLine applies the color scheme to one line of help output.
func styleHelpLine(line string) string {
	trimmed := strings.TrimSpace(line)

	if helpSectionRe.MatchString(trimmed) {
		return Info(line)
	}
	if strings.HasPrefix(trimmed, `Use "`) {
		return Silent(line)
	}
	if m := helpFlagRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	if m := helpCommandRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	return Text(line)
}
