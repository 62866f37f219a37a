package kernel

import (
	"fmt"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via the NewAddress constructor.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable postal address value object: a street, city and zip
// code triple. The zero value is invalid and fails validation - use NewAddress
// to create instances.
//
// Addresses are copied, never shared: a delivery snapshots the ordering
// member's address at order time, so later changes on the member do not
// retroactively change where a placed order ships.
//
// Example:
//
//	addr, err := kernel.NewAddress("1 Main St", "Springfield", "12345")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(addr) // Output: 1 Main St, Springfield 12345
type Address struct { //nolint:recvcheck //using for validation
	street  string
	city    string
	zipCode string

	guard guard.ConstructorGuard
}

// NewAddress creates a new Address with the given street, city and zip code.
// All three components are required; returns a validation error naming every
// missing component otherwise.
func NewAddress(street string, city string, zipCode string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if zipCode == "" {
		return Address{}, errs.NewValueIsRequiredError("zipCode")
	}

	return Address{
		street:  street,
		city:    city,
		zipCode: zipCode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Street returns the street component of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city component of the address.
func (a Address) City() string {
	return a.city
}

// ZipCode returns the zip code component of the address.
func (a Address) ZipCode() string {
	return a.zipCode
}

// IsEqual compares two addresses component-wise.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.city == other.city && a.zipCode == other.zipCode
}

// String returns a single-line human-readable rendering of the address.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s %s", a.street, a.city, a.zipCode)
}

// Validate checks that the Address was created through NewAddress.
// Returns ErrAddressIsNotConstructed for zero-value addresses.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
