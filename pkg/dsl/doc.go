/*
Package dsl provides a fluent builder for Turing machine definitions.

States are declared under local aliases and wired together before the
registry assigns names, which keeps test fixtures and examples readable.
Build replays the declarations against a fresh machine.Machine, so every
registry rule (alphabet, single initial state) still applies.

Example usage:

	b := dsl.New("01")

	b.State("scan").Initial().
		Loop("0", "0", domain.Right).
		Loop("1", "1", domain.Right).
		On("", "", domain.Left, "done")

	b.State("done").Final()

	m, err := b.Build()
*/
package dsl
