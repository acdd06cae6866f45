// Package hook parses the fixed command-line contract Taskwarrior uses when
// it invokes hook scripts, and provides the stdin/stdout plumbing a hook
// needs to receive and return task records.
//
// A hook script is called with five positional arguments: the rc file path,
// the data location, the hook script's own path, the command line the user
// typed, and the tool's version string.
package hook

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// APIVersion identifies the hook API a script was installed under. The set
// is closed; an unrecognized marker is an error, never a guess.
type APIVersion int

const (
	V1 APIVersion = iota + 1
	V2
)

func (v APIVersion) String() string {
	switch v {
	case V1:
		return "v1"
	case V2:
		return "v2"
	}
	return fmt.Sprintf("APIVersion(%d)", int(v))
}

// Command is the lifecycle event a hook script is registered for, encoded in
// its filename ("on-add", "on-modify", ...).
type Command int

const (
	Launch Command = iota
	Add
	Modify
	Exit
)

var commandTokens = [...]string{
	Launch: "launch",
	Add:    "add",
	Modify: "modify",
	Exit:   "exit",
}

var commandByToken = map[string]Command{
	"launch": Launch,
	"add":    Add,
	"modify": Modify,
	"exit":   Exit,
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandTokens) {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandTokens[c]
}

// Invocation is the decoded argument vector of one hook call. It is built
// once per process and read-only afterward.
type Invocation struct {
	// RCFile is the path of the taskrc in effect.
	RCFile string
	// DataDir is the tool's data location.
	DataDir string
	// HookFile is the path of the running hook script itself.
	HookFile string
	// API is the hook API version encoded in the hook path.
	API APIVersion
	// Command is the lifecycle event, from the hook filename.
	Command Command
	// CommandLine is the command line the user typed, verbatim. It is
	// never tokenized here.
	CommandLine string
	// Version is the tool's own version string, e.g. "3.4.2".
	Version string
}

// ErrTooFewArguments is returned when the argument vector has fewer than the
// five tokens the hook contract promises.
var ErrTooFewArguments = errors.New("hook: want 5 arguments (rc file, data dir, hook file, command line, version)")

// UnknownHookFilenameError reports a hook path whose filename does not follow
// the on-<command> convention.
type UnknownHookFilenameError struct {
	Path string
}

func (e *UnknownHookFilenameError) Error() string {
	return fmt.Sprintf("hook: unrecognized hook filename %q", e.Path)
}

// UnknownAPIVersionError reports a hook path whose directory does not carry a
// known API marker.
type UnknownAPIVersionError struct {
	Dir string
}

func (e *UnknownAPIVersionError) Error() string {
	return fmt.Sprintf("hook: unknown hook API directory %q", e.Dir)
}

// apiByDir maps the hooks directory name to the API it serves. Current hooks
// live in "hooks"; the legacy v1 tree used "hooks-v1".
var apiByDir = map[string]APIVersion{
	"hooks":    V2,
	"hooks-v1": V1,
}

// ParseArgs decodes the argument vector after the program name. With more
// than five tokens the surplus belongs to the command line: tokens between
// the hook path and the trailing version string are joined with single
// spaces, which is how the tool hands over a command line the shell already
// split.
func ParseArgs(args []string) (Invocation, error) {
	if len(args) < 5 {
		return Invocation{}, ErrTooFewArguments
	}

	hookFile := args[2]
	api, command, err := parseHookPath(hookFile)
	if err != nil {
		return Invocation{}, err
	}

	return Invocation{
		RCFile:      args[0],
		DataDir:     args[1],
		HookFile:    hookFile,
		API:         api,
		Command:     command,
		CommandLine: strings.Join(args[3:len(args)-1], " "),
		Version:     args[len(args)-1],
	}, nil
}

// parseHookPath extracts the API marker from the hook's directory and the
// command token from its filename. The filename must be on-<command> with an
// arbitrary extension; "on-add.tsk" and "on-add" both name the add event.
func parseHookPath(path string) (APIVersion, Command, error) {
	name := filepath.Base(path)
	rest, ok := strings.CutPrefix(name, "on-")
	if !ok {
		return 0, 0, &UnknownHookFilenameError{Path: path}
	}
	token, _, _ := strings.Cut(rest, ".")
	command, ok := commandByToken[token]
	if !ok {
		return 0, 0, &UnknownHookFilenameError{Path: path}
	}

	dir := filepath.Base(filepath.Dir(path))
	api, ok := apiByDir[dir]
	if !ok {
		return 0, 0, &UnknownAPIVersionError{Dir: dir}
	}
	return api, command, nil
}
