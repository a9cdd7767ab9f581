// Package commands defines the takehome CLI.
//
// Commands
//
//   - tax        Tax on a taxable income, with its parts
//   - salary     Monthly take-home breakdown for an annual gross
//   - estimate   Annual gross needed for a monthly take-home
//   - regime     Print the slab and surcharge tables in use
//
// # Output
//
// Amounts are printed in en-IN grouping with two decimals (₹1,40,633.33).
// Arguments are plain numbers without separators; a bad number or a
// negative amount is a command error and the exit status is 1.
package commands
