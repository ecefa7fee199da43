package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JBorrsad/odoonto-mobile/pkg/auth"
)

const hashPasswordCommand = "hash-password"

var errHashPasswordUsage = errors.New("uso: odoonto hash-password <login> < contraseña")

// runHashPassword reads one password line from in and prints the matching
// AUTH_USERS entry. Entries are joined with ';' and should be single-quoted
// in .env files so the '$' separators are not expanded.
func runHashPassword(args []string, in io.Reader, out io.Writer) error {
	if len(args) != 1 {
		return errHashPasswordUsage
	}
	login := strings.TrimSpace(args[0])
	if login == "" || strings.ContainsAny(login, ":; ") {
		return fmt.Errorf("login no válido %q: %w", args[0], errHashPasswordUsage)
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("leer contraseña: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%s:%s\n", login, hash)
	return err
}
