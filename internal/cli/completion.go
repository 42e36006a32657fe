package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All generators read flagRegistry, so a new flag only needs an entry there.
type FlagCompletion struct {
	Long      string   // long flag name without "--"
	Short     string   // short flag without "-"
	Help      string   // description text
	Values    []string // suggested values (nil = no suggestions)
	ValueName string   // label for the value; empty for boolean flags
	IsFile    bool     // the flag takes a file path
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "iterations", Short: "n", Help: "Number of iterations", Values: []string{"1000", "1000000", "100000000"}, ValueName: "count"},
	{Short: "a", Help: "Index multiplier", ValueName: "integer"},
	{Short: "b", Help: "Denominator offset", ValueName: "integer"},
	{Long: "scale", Help: "Factor applied to the result", ValueName: "number"},
	{Long: "strict", Help: "Reject zero denominators and overflow"},
	{Long: "verbose", Short: "v", Help: "Show execution configuration"},
	{Long: "details", Short: "d", Help: "Show performance details"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"30s", "1m", "5m", "10m"}, ValueName: "duration"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "metrics-file", Help: "Prometheus textfile path", IsFile: true, ValueName: "file"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "tui", Help: "Interactive dashboard"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "debug", Help: "Enable debug logging"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell ("bash", "zsh",
// "fish", "powershell" or "ps") to out.
func GenerateCompletion(out io.Writer, shell string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion()
	case "zsh":
		script = zshCompletion()
	case "fish":
		script = fishCompletion()
	case "powershell", "ps":
		script = powerShellCompletion()
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

// names returns the dashed spellings of f, short first.
func (f FlagCompletion) names() []string {
	var names []string
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	return names
}

func bashCompletion() string {
	var opts []string
	var cases strings.Builder
	var filePatterns []string
	for _, f := range flagRegistry {
		opts = append(opts, f.names()...)
		switch {
		case f.IsFile:
			filePatterns = append(filePatterns, f.names()...)
		case len(f.Values) > 0:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(f.names(), "|"), strings.Join(f.Values, " "))
		}
	}
	if len(filePatterns) > 0 {
		fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(filePatterns, "|"))
	}

	return fmt.Sprintf(`# Bash completion script for seriescalc
# Add this to your ~/.bashrc or ~/.bash_completion

_seriescalc_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _seriescalc_completions seriescalc
`, strings.Join(opts, " "), cases.String())
}

// zshArgEntry formats a single flag as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	if f.Long != "" {
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Short, f.Help, valueSuffix)
}

func zshCompletion() string {
	args := make([]string, 0, len(flagRegistry))
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}
	return fmt.Sprintf(`#compdef seriescalc

# Zsh completion script for seriescalc
# Add this to your ~/.zshrc or place in $fpath

_seriescalc() {
    _arguments -s \
%s
}

_seriescalc "$@"
`, strings.Join(args, " \\\n"))
}

// fishCompleteLine formats a single flag as a fish complete command.
func fishCompleteLine(f FlagCompletion) string {
	parts := []string{"complete -c seriescalc"}
	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	if f.Long != "" {
		parts = append(parts, "-l "+f.Long)
	}
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))
	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}

func fishCompletion() string {
	lines := []string{
		"# Fish completion script for seriescalc",
		"# Add this to ~/.config/fish/completions/seriescalc.fish",
		"",
		"complete -c seriescalc -f",
	}
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f))
	}
	return strings.Join(lines, "\n") + "\n"
}

func powerShellCompletion() string {
	var options, switches []string
	for _, f := range flagRegistry {
		for _, name := range f.names() {
			options = append(options, fmt.Sprintf("        @{Name = '%s'; Description = '%s' }", name, f.Help))
		}
		if len(f.Values) == 0 || f.Long == "" {
			continue
		}
		quoted := make([]string, len(f.Values))
		for i, v := range f.Values {
			quoted[i] = "'" + v + "'"
		}
		switches = append(switches, fmt.Sprintf(`        '--%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, strings.Join(quoted, ", ")))
	}

	return fmt.Sprintf(`# PowerShell completion script for seriescalc
# Add this to your $PROFILE

Register-ArgumentCompleter -CommandName 'seriescalc' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    switch ($prevElement) {
%s
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, strings.Join(options, "\n"), strings.Join(switches, "\n"))
}
