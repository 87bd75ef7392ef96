// Command secretrecover recovers secrets from threshold share records and
// generates such records.
//
//	secretrecover recover [flags] FILE...
//	secretrecover split --secret N [flags]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

const name = "secretrecover"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches to a command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	command, args := args[0], args[1:]

	var (
		flags = pflag.NewFlagSet(name+" "+command, pflag.ContinueOnError)
		err   error
		code  int
	)
	flags.SetOutput(stderr)

	switch command {
	case "recover":
		addRecoverFlags(flags)
		conf, files, perr := parseRecoverFlags(flags, args)
		if perr != nil {
			err = perr
			break
		}
		code = runRecover(ctx, conf, files, stdout, stderr)

	case "split":
		addSplitFlags(flags)
		conf, perr := parseSplitFlags(flags, args)
		if perr != nil {
			err = perr
			break
		}
		code = runSplit(conf, stdout, stderr)

	case "help", "-h", "--help":
		usage(stdout)
		return 0

	default:
		fmt.Fprintf(stderr, "unknown command %q\n", command)
		usage(stderr)
		return 2
	}

	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}

	if err != nil {
		fmt.Fprintf(stderr, "%s %s: %v\n", name, command, err)
		return 2
	}

	return code
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage:\n")
	fmt.Fprintf(w, "  %s recover [flags] FILE...   recover the secret of each share record\n", name)
	fmt.Fprintf(w, "  %s split --secret N [flags]  write a share record for N\n", name)
	fmt.Fprintf(w, "\nrun '%s <command> --help' for command flags\n", name)
}
