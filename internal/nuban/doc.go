// Package nuban implements the CBN NUBAN (Nigeria Uniform Bank Account
// Number) checksum.
//
// A NUBAN account number is ten digits: a nine digit serial followed by a
// check digit derived from the serial and the six digit bank code. The
// package validates an account against a bank code, computes check digits,
// normalizes the three historical bank code encodings (3, 5 and 6 digits)
// and predicts which banks of a list an account number could belong to.
//
// Every function is pure and safe for concurrent use. The weight tables
// are package data and are never modified.
package nuban
