// Package main provides the entry point for the sfac CLI.
//
// sfac finds subdomains of a domain and checks which of them answer over
// HTTP. Results are written to a CSV report; accessible subdomains can be
// screenshotted and summarized in Markdown.
//
// Usage:
//
//	sfac scan example.com
//	sfac scan --textfile subdomains.txt
//
// See --help for all available options.
package main

// main is the entry point for sfac.
func main() {
	Execute()
}
