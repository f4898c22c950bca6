/*
File    : monkey-go/main.go
Author  : akashmaji946/monkey-go contributors
*/

// Command monkey-go is the interactive entry point for the Monkey
// front-end: it greets the user by their USER environment variable and
// hands off to the REPL, which tokenizes each line it reads until EOF.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/monkey-go/repl"
)

func main() {
	user, ok := os.LookupEnv("USER")
	if !ok {
		fmt.Fprintln(os.Stderr, "USER environment variable is not set")
		os.Exit(1)
	}

	fmt.Printf("Hello %s! This is the Monkey programming language!\n", user)
	fmt.Println("Feel free to type in commands")

	if err := repl.Start(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
