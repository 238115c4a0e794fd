// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --server, --storage, --print/-p, --llm, --json, --suggest, --verbose, --version

package main

import "flag"

type cliArgs struct {
	server      string
	storage     string
	storagePath string
	logLevel    string
	verbose     bool

	print   bool
	llm     bool
	json    bool
	suggest bool

	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.server, "server", "", "Chat server URL (default http://localhost:5000)")
	flag.StringVar(&args.storage, "storage", "", "Storage backend: file, sqlite or memory")
	flag.StringVar(&args.storagePath, "storage-path", "", "Storage file location")
	flag.StringVar(&args.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")

	flag.BoolVar(&args.print, "print", false, "Non-interactive: ask the question given as arguments or on stdin")
	flag.BoolVar(&args.print, "p", false, "Shorthand for --print")
	flag.BoolVar(&args.llm, "llm", false, "Ask the LLM directly instead of matching Q&A pairs")
	flag.BoolVar(&args.json, "json", false, "Print the server response as JSON")
	flag.BoolVar(&args.suggest, "suggest", false, "Print autocomplete suggestions for the given prefix")

	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
