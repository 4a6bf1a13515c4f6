// Command hash-password prints the ADMIN_PASSWORD_HASH for a password, optionally generating
// a fresh SESSION_SECRET to key it with.
package main

import (
	"fmt"
	"io"
	"os"
	"photo-portfolio/internal/auth"
	"photo-portfolio/internal/config"

	"github.com/spf13/pflag"
)

const generatedSecretBytes = 32

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	flags := pflag.NewFlagSet("hash-password", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	generate := flags.BoolP("generate-secret", "g", false, "Generate a new session secret when none is given")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: hash-password [--generate-secret] <password> [secret]")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if flags.NArg() < 1 || flags.NArg() > 2 || flags.Arg(0) == "" {
		flags.Usage()
		return 2
	}

	password := flags.Arg(0)
	secret := flags.Arg(1)
	if secret == "" {
		secret = getenv(config.EnvSessionSecret)
	}

	if secret == "" {
		if !*generate {
			fmt.Fprintf(stderr, "no secret given: pass one as the second argument, set %s, or use --generate-secret\n", config.EnvSessionSecret)
			return 1
		}

		generated, err := auth.GenerateSecret(generatedSecretBytes)
		if err != nil {
			fmt.Fprintf(stderr, "failed to generate secret: %v\n", err)
			return 1
		}
		secret = generated
	}

	fmt.Fprintf(stdout, "%s=%s\n", config.EnvSessionSecret, secret)
	fmt.Fprintf(stdout, "%s=%s\n", config.EnvAdminPasswordHash, auth.HashPassword(password, secret))
	return 0
}
