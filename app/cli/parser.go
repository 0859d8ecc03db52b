package cli

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUsage marks every error produced while parsing the command line.
var ErrUsage = errors.New("usage error")

// FlagDef defines the structure for an expected flag.
type FlagDef struct {
	Name        string // Long name (e.g., "add")
	ShortName   string // Short name (e.g., "a"), empty if none
	Description string // Help text for the flag
	HasValue    bool   // Whether the flag expects a value (true for --flag=v, false for --flag)
	ValueName   string // Placeholder shown in help, e.g. "language"
}

// CommandArgs holds structured information parsed from command-line arguments.
type CommandArgs struct {
	RawArgs          []string          // Keep the original args for messages
	Variables        []string          // Positional arguments
	Flags            map[string]string // Value flags keyed by long name (e.g., --add Go -> map["add"]="Go")
	BoolFlags        map[string]bool   // Boolean flags keyed by long name (e.g., -l -> map["list"]=true)
	HelpRequested    bool              // If a help flag (--help, -h) was detected
	VersionRequested bool              // If a version flag (--version) was detected
	Errors           []error           // Any parsing errors encountered, each wrapping ErrUsage
}

// Has reports whether the named flag was given, with or without a value.
func (a CommandArgs) Has(name string) bool {
	if _, ok := a.Flags[name]; ok {
		return true
	}
	return a.BoolFlags[name]
}

// Err joins the parsing errors, or returns nil if there were none.
func (a CommandArgs) Err() error {
	return errors.Join(a.Errors...)
}

// ParseCommandLineArgs processes the raw command-line arguments against the known flag definitions.
func ParseCommandLineArgs(rawArgs []string, defs []FlagDef) CommandArgs {
	parsed := CommandArgs{
		RawArgs:   rawArgs,
		Variables: make([]string, 0),
		Flags:     make(map[string]string),
		BoolFlags: make(map[string]bool),
		Errors:    make([]error, 0),
	}

	byLong := make(map[string]FlagDef, len(defs))
	byShort := make(map[string]FlagDef, len(defs))
	for _, d := range defs {
		byLong[d.Name] = d
		if d.ShortName != "" {
			byShort[d.ShortName] = d
		}
	}

	fail := func(format string, a ...any) {
		parsed.Errors = append(parsed.Errors, fmt.Errorf("%w: "+format, append([]any{ErrUsage}, a...)...))
	}

	setValue := func(def FlagDef, shown, value string) {
		if _, exists := parsed.Flags[def.Name]; exists {
			fail("flag provided more than once: %s", shown)
		}
		parsed.Flags[def.Name] = value
	}
	setBool := func(def FlagDef, shown string) {
		if parsed.BoolFlags[def.Name] {
			fail("boolean flag provided more than once: %s", shown)
		}
		parsed.BoolFlags[def.Name] = true
	}

	// nextValue returns the argument after i if it can serve as a flag value.
	nextValue := func(i int) (string, bool) {
		if i+1 < len(rawArgs) && !strings.HasPrefix(rawArgs[i+1], "-") {
			return rawArgs[i+1], true
		}
		return "", false
	}

	for i := 0; i < len(rawArgs); i++ {
		arg := rawArgs[i]

		switch {
		case arg == "--":
			// Everything after a bare -- is positional.
			parsed.Variables = append(parsed.Variables, rawArgs[i+1:]...)
			i = len(rawArgs)

		case strings.HasPrefix(arg, "--"):
			flagPart := strings.TrimPrefix(arg, "--")
			flagName, flagValue, hasExplicitValue := strings.Cut(flagPart, "=")

			def, known := byLong[flagName]
			if !known {
				fail("unknown flag: --%s", flagName)
				continue
			}
			shown := "--" + flagName

			if !def.HasValue {
				if hasExplicitValue {
					fail("flag %s does not take a value", shown)
					continue
				}
				setBool(def, shown)
				continue
			}

			if !hasExplicitValue {
				v, ok := nextValue(i)
				if !ok {
					fail("flag %s requires a value", shown)
					continue
				}
				flagValue = v
				i++ // Consume the value argument
			}
			setValue(def, shown, flagValue)

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flagChars := []rune(strings.TrimPrefix(arg, "-"))
			valueConsumed := false

			for j, flagChar := range flagChars {
				shown := "-" + string(flagChar)
				def, known := byShort[string(flagChar)]
				if !known {
					fail("unknown flag: %s", shown)
					continue
				}
				if !def.HasValue {
					setBool(def, shown)
					continue
				}
				// Only the last flag of a cluster may take a value.
				if j != len(flagChars)-1 {
					fail("flag %s requires a value and must come last in %s", shown, arg)
					continue
				}
				v, ok := nextValue(i)
				if !ok {
					fail("flag %s requires a value", shown)
					continue
				}
				setValue(def, shown, v)
				valueConsumed = true
			}

			if valueConsumed {
				i++
			}

		default:
			parsed.Variables = append(parsed.Variables, arg)
		}
	}

	parsed.HelpRequested = parsed.BoolFlags["help"]
	parsed.VersionRequested = parsed.BoolFlags["version"]
	return parsed
}
