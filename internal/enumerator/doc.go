// Package enumerator discovers subdomain candidates for a target domain.
//
// Each source implements Enumerator: the in-process subfinder runner,
// external tools such as Sublist3r run as commands, and the crt.sh and
// HackerTarget HTTP APIs. Multi fans a domain out to several sources,
// then normalizes, scopes and de-duplicates what they return. ReadList
// loads candidates from a file instead.
package enumerator
