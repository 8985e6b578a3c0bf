// Package model holds the value types shared between the checksum engine,
// the bank registry, storage and the bank directory client.
package model
