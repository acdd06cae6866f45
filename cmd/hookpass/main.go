// hookpass is a pass-through Taskwarrior hook: it accepts whatever the tool
// feeds it and hands it straight back, unchanged. Installing it (symlinked as
// on-add.hookpass or on-modify.hookpass under the hooks directory) is a quick
// way to verify that hook wiring, and this library's codecs, are lossless on
// real task data.
package main

import (
	"log"
	"os"

	"github.com/taskwire/taskwire/pkg/hook"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hookpass: ")

	inv, err := hook.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("bad invocation: %v", err)
	}

	switch inv.Command {
	case hook.Add:
		t, err := hook.ReadTask(os.Stdin)
		if err != nil {
			log.Fatalf("reading task: %v", err)
		}
		if err := hook.WriteTask(os.Stdout, t); err != nil {
			log.Fatalf("writing task: %v", err)
		}
	case hook.Modify:
		_, edited, err := hook.ReadTaskPair(os.Stdin)
		if err != nil {
			log.Fatalf("reading task pair: %v", err)
		}
		if err := hook.WriteTask(os.Stdout, edited); err != nil {
			log.Fatalf("writing task: %v", err)
		}
	case hook.Launch, hook.Exit:
		// Nothing on stdin and nothing expected back.
	}
}
