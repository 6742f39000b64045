// Command hash-generator prints bcrypt hashes for the passwords given on the
// command line, using the same rules the API applies at signup. It is meant
// for seeding development databases.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-cost N] password [...]\n", os.Args[0])
		os.Exit(2)
	}

	if failed := generate(os.Stdout, os.Stderr, auth.NewBcrypt(*cost), flag.Args()); failed > 0 {
		os.Exit(1)
	}
}

// generate writes one hash per valid password and returns the number of
// passwords that were rejected.
func generate(out, errOut io.Writer, hasher auth.PasswordHasher, passwords []string) int {
	failed := 0
	for i, password := range passwords {
		if err := domain.ValidatePlaintextPassword(password); err != nil {
			fmt.Fprintf(errOut, "password #%d rejected: %v\n", i+1, err)
			failed++
			continue
		}
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Fprintf(errOut, "password #%d: %v\n", i+1, err)
			failed++
			continue
		}
		fmt.Fprintln(out, hash)
	}
	return failed
}
