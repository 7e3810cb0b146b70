// Package service implements the access-control core of the vault.
//
// The access gate runs the two-factor challenge as a state machine and
// returns a verdict. The vault manager applies the bounded-retry policy on
// top of it: retrieve and delete get a fixed number of consecutive attempts,
// and the final failure destroys the target entry without decrypting it.
// The enroller captures and stores the single enrolled identity.
package service
