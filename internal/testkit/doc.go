// Package testkit holds invariant checkers shared by lexer, driver and fuzz tests.
package testkit
