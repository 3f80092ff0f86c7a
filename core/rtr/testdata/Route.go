package testdata

import (
	"bufio"
	"os"
	"strings"
)

// Route represents a single line in a route table test file: name and pattern.
type Route struct {
	Name    string
	Pattern string
}

// Routes loads all routes from a text file. Blank lines and # comments are skipped.
func Routes(fileName string) []Route {
	var routes []Route

	for line := range Lines(fileName) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		routes = append(routes, Route{
			Name:    parts[0],
			Pattern: parts[1],
		})
	}

	return routes
}

// Lines is a utility function to easily read every line in a text file.
func Lines(fileName string) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)
		file, err := os.Open(fileName)

		if err != nil {
			return
		}

		defer file.Close()
		scanner := bufio.NewScanner(file)

		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return lines
}
