package main

import (
	"os"
	"strings"

	"github.com/HardenedIot/console/internal/cli"
)

func isProjectRef(s string) bool {
	s = strings.TrimSpace(s)
	team, project, ok := strings.Cut(s, "/")
	if !ok {
		return false
	}
	return team != "" && project != "" && !strings.Contains(project, "/")
}

func rewriteProjectRefArgs(argv []string) []string {
	// Convenience: `hiot <team-id>/<project-id>` works like
	// `hiot projects show <project-id>`, mirroring the console's URL paths.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite
	// argv before parsing.
	//
	// Users often pass persistent flags first (e.g. `hiot --backend ... acme/lock`),
	// so we must find the first positional token, not just argv[1].
	if len(argv) < 2 {
		return argv
	}

	// Minimal persistent-flag awareness. Unrecognized flags are skipped
	// without consuming a value, so they cannot swallow the project ref.
	valueFlags := map[string]bool{
		"--backend":  true,
		"--data-dir": true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	rewrite := func(at int) []string {
		_, project, _ := strings.Cut(strings.TrimSpace(argv[at]), "/")
		out := make([]string, 0, len(argv)+2)
		out = append(out, argv[:at]...)
		out = append(out, "projects", "show", project)
		out = append(out, argv[at+1:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Stop flag parsing; next token (if any) is the first positional.
			if i+1 < len(argv) && isProjectRef(argv[i+1]) {
				return rewrite(i + 1)
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			// --flag=value form
			if strings.Contains(a, "=") {
				continue
			}
			if boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
				continue
			}
			continue
		}

		// First positional token.
		if isProjectRef(a) {
			return rewrite(i)
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteProjectRefArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
