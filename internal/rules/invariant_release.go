//go:build !fairydebug

package rules

const debugChecks = false
