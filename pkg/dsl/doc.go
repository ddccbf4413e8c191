/*
Package dsl provides a fluent builder for constructing machines by state name.

States may reference targets that are declared later; names are resolved when
Build is called, and every structural problem found is reported at once.

Example usage:

	package main

	import (
		"github.com/aretw0/automata/pkg/domain"
		"github.com/aretw0/automata/pkg/dsl"
	)

	func main() {
		b := dsl.New("turnstile", domain.Mealy)

		b.State("locked").Initial().
			Emit("coin", "unlocked", "unlock").
			Emit("push", "locked", "alarm")

		b.State("unlocked").
			Emit("push", "locked", "lock").
			On("coin", "unlocked")

		m, err := b.Build()
		// ...
	}
*/
package dsl
