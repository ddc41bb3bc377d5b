package email

import (
	"errors"
	"fmt"

	"github.com/zostay/go-addr/pkg/addr"
)

// ErrBadAddress is wrapped by the errors ParseAddress and ParseAddressList
// return when the address parser gives up on its input without an error of
// its own.
var ErrBadAddress = errors.New("cannot parse address")

// safeParse runs parse and turns a panic from inside the address parser into
// an error. Some group syntax, such as "Friends: a@x.com;", trips one.
func safeParse[T any](s string, parse func(string) (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w %q: %v", ErrBadAddress, s, r)
		}
	}()

	return parse(s)
}

// ParseAddress strictly parses a single mailbox or address, such as
// "Sally <sally@example.com>".
func ParseAddress(s string) (addr.Address, error) {
	return safeParse(s, addr.ParseEmailAddress)
}

// ParseAddressList strictly parses a comma separated list of addresses. A
// group is kept as a single *addr.Group entry.
func ParseAddressList(s string) (addr.AddressList, error) {
	return safeParse(s, addr.ParseEmailAddressList)
}

// MustParseAddress is ParseAddress, but it panics on error.
func MustParseAddress(s string) addr.Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}
