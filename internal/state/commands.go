package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var userHomeDirFn = os.UserHomeDir

// runCommand executes a command-mode line:
//
//	cd <path>      navigate (~ expands to the home directory)
//	mkdir <name>   create a directory in the current directory
//	touch <name>   create an empty file in the current directory
//	hidden         toggle dotfile hiding
//	q, quit        quit
func (r *StateReducer) runCommand(state *AppState, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	name := fields[0]
	arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), name))

	switch name {
	case "cd":
		target, err := expandHome(arg)
		if err != nil {
			r.notifyError(state, err)
			return
		}
		if target == "" {
			r.notifyError(state, fmt.Errorf("cd: missing path"))
			return
		}
		r.navigateTo(state, target)
	case "mkdir":
		if arg == "" {
			r.notifyError(state, fmt.Errorf("mkdir: missing name"))
			return
		}
		if r.mutator != nil {
			r.mutator.Create(state.CurrentPath, strings.TrimRight(arg, `/`+string(filepath.Separator))+string(filepath.Separator))
		}
	case "touch":
		if arg == "" {
			r.notifyError(state, fmt.Errorf("touch: missing name"))
			return
		}
		if r.mutator != nil {
			r.mutator.Create(state.CurrentPath, arg)
		}
	case "hidden":
		r.toggleHidden(state)
	case "q", "quit":
		state.QuitRequested = true
	default:
		r.notifyError(state, fmt.Errorf("unknown command: %s", name))
	}
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := userHomeDirFn()
	if err != nil {
		return "", fmt.Errorf("cd: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
