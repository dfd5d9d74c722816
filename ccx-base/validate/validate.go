// Package validate holds the predicates used to check rpc arguments before
// anything is sent to a wallet or daemon.
package validate

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

const (
	// AddressLength is the length of a conceal public address.
	AddressLength = 98
	// AddressPrefix starts every conceal public address.
	AddressPrefix = "ccx"
	// Hex64Length is the length of payment ids, transaction and block hashes.
	Hex64Length = 64
)

// IsNonNegativeInteger reports whether n >= 0.
func IsNonNegativeInteger(n int64) bool {
	return n >= 0
}

// IsHex64 reports whether s is exactly 64 hex digits, in any case.
func IsHex64(s string) bool {
	return len(s) == Hex64Length && govalidator.IsHexadecimal(s)
}

// IsHexString reports whether every character of s is a hex digit.
// The empty string passes.
func IsHexString(s string) bool {
	if govalidator.IsNull(s) {
		return true
	}
	return govalidator.IsHexadecimal(s)
}

// IsAddress checks the address shape only, the checksum is left to the wallet.
func IsAddress(s string) bool {
	return len(s) == AddressLength && strings.HasPrefix(s, AddressPrefix)
}

// IsTransfer reports whether a transfer destination is well formed.
func IsTransfer(address string, amount int64) bool {
	return IsAddress(address) && IsNonNegativeInteger(amount)
}

// IsArrayOf reports whether every element of items satisfies pred.
// A nil slice is treated as a missing array and fails.
func IsArrayOf[T any](items []T, pred func(T) bool) bool {
	if items == nil {
		return false
	}
	for _, item := range items {
		if !pred(item) {
			return false
		}
	}
	return true
}

// AllAddresses is IsArrayOf(addrs, IsAddress).
func AllAddresses(addrs []string) bool {
	return IsArrayOf(addrs, IsAddress)
}

// AllHex64 is IsArrayOf(hashes, IsHex64).
func AllHex64(hashes []string) bool {
	return IsArrayOf(hashes, IsHex64)
}
