//go:build fairydebug

package rules

const debugChecks = true
