package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 80

// readInput reads the whole GIF from a file, a url, or stdin when input is empty.
func readInput(input string, stdin io.Reader) ([]byte, error) {
	if input == "" {
		return ioutil.ReadAll(stdin)
	}
	// Is it a file?
	if file, err := os.Open(input); err == nil {
		defer file.Close()
		return ioutil.ReadAll(file)
	}
	// Is it a url?
	resp, err := http.Get(input)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", input, resp.Status)
	}
	return ioutil.ReadAll(resp.Body)
}

func isTerminal(f *os.File) bool {
	return terminal.IsTerminal(int(f.Fd()))
}

// terminalWidth reports the column count of f, or fallbackWidth when f is not
// a terminal.
func terminalWidth(f *os.File) int {
	if !isTerminal(f) {
		return fallbackWidth
	}
	cols, _, err := terminal.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return fallbackWidth
	}
	return cols
}
