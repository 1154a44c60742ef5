// ABOUTME: Main entry point for the Recipe Finder CLI and server
// ABOUTME: Delegates to the cobra command tree

package main

func main() {
	Execute()
}
