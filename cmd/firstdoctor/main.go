// Command firstdoctor is an interactive browser for leaf workspaces that
// FIRST preserved on disk (FIRST_KEEP_ARTIFACTS) after a failing crash
// target. It lets an operator list preserved leaves, inspect the outcome
// recorded for each, and print the reproduction command for one of them
// so the environment variables need not be retyped by hand; it does not
// run that command itself.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/peterh/liner"

	"github.com/danshapiro/first/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "firstdoctor: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("firstdoctor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	baseDirFlag := fs.String("base-dir", "", "override the temp directory workspaces are scanned under")
	configPath := fs.String("config", "", "path to a first.jsonc config file (default: ./first.jsonc)")
	labelGlob := fs.String("label", "*", "only list leaves whose recorded crash label matches this glob")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: firstdoctor [--base-dir DIR] [--config PATH] [--label GLOB]")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getwd: %w", err)
	}

	var cfg config.Config
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadDefault(cwd)
	}
	if err != nil {
		return err
	}

	parent := cfg.BaseDir
	if *baseDirFlag != "" {
		parent = *baseDirFlag
	}
	if parent == "" {
		parent = os.TempDir()
	}
	baseDir := filepath.Join(parent, "first")

	leaves, err := discoverLeaves(baseDir, *labelGlob)
	if err != nil {
		return fmt.Errorf("scan %s: %w", baseDir, err)
	}

	return repl(leaves)
}

func repl(leaves []leafEntry) error {
	if len(leaves) == 0 {
		fmt.Println("firstdoctor: no preserved leaf workspaces found")
		return nil
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	printLeaves(leaves)
	fmt.Println("Type a number to inspect a leaf, 'r <n>' to print its reproduction command, or 'q' to quit.")

	for {
		input, err := line.Prompt("firstdoctor> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return nil
			}
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch {
		case input == "q" || input == "quit" || input == "exit":
			return nil
		case input == "l" || input == "list":
			printLeaves(leaves)
		case strings.HasPrefix(input, "r "):
			printRepro(leaves, strings.TrimSpace(input[2:]))
		default:
			printDetail(leaves, input)
		}
	}
}

func printLeaves(leaves []leafEntry) {
	for i, l := range leaves {
		status := "(no record)"
		if l.hasRecord {
			status = string(l.record.Status)
		}
		fmt.Printf("%3d. %-9s %s\n", i+1, status, l.dir)
	}
}

func resolveIndex(leaves []leafEntry, arg string) (leafEntry, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(leaves) {
		fmt.Printf("firstdoctor: %q is not a valid leaf number\n", arg)
		return leafEntry{}, false
	}
	return leaves[n-1], true
}

func printDetail(leaves []leafEntry, arg string) {
	l, ok := resolveIndex(leaves, arg)
	if !ok {
		return
	}
	fmt.Printf("workspace: %s\n", l.dir)
	if !l.hasRecord {
		fmt.Println("(no first-state.json recorded for this leaf)")
		return
	}
	r := l.record
	fmt.Printf("test:        %s\n", r.TestName)
	fmt.Printf("status:      %s\n", r.Status)
	fmt.Printf("crash target: %d\n", r.CrashTarget)
	if r.CrashPointID != 0 {
		fmt.Printf("crash point: %d (%s)\n", r.CrashPointID, r.CrashLabel)
	}
	if r.FailureReason != "" {
		fmt.Printf("failure:     %s\n", r.FailureReason)
	}
	fmt.Printf("orchestrator pid: %d (%s)\n", r.OrchestratorPID, pidStatus(r.OrchestratorPID))
}

func printRepro(leaves []leafEntry, arg string) {
	l, ok := resolveIndex(leaves, arg)
	if !ok {
		return
	}
	if !l.hasRecord {
		fmt.Println("(no recorded test name, cannot build a reproduction command)")
		return
	}
	fmt.Println(reproCommand(l.dir, l.record))
}
