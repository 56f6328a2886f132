// Package values defines the runtime value kinds that inference and coercion
// recognize but Go does not natively distinguish: calendar dates without a
// time component (Date), fixed-shape sequences (Tuple) and unique-member
// collections (Set). It also provides Fields, the attribute-bag adapter that
// reads a struct as a name→value mapping.
package values
