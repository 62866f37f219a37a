// Package memberrepo provides data transfer objects and mapping functions for
// member persistence. Implements the repository pattern for the member
// aggregate, converting between domain entities and database rows.
package memberrepo

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"

	"github.com/google/uuid"
)

// MemberDTO represents the database structure for persisting members.
// The unique index on name backs the name-uniqueness business rule at the
// storage level, closing the race the registration-time check leaves open.
type MemberDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"uniqueIndex"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

// TableName specifies the database table name for member entities.
func (MemberDTO) TableName() string {
	return "members"
}

// AddressDTO represents the embedded postal address columns within the
// members table.
type AddressDTO struct {
	Street  string
	City    string
	ZipCode string
}

// fromDomain converts a member domain aggregate to its database representation.
func fromDomain(aggregate *member.Member) MemberDTO {
	return MemberDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Address: AddressDTO{
			Street:  aggregate.Address().Street(),
			City:    aggregate.Address().City(),
			ZipCode: aggregate.Address().ZipCode(),
		},
	}
}

// toDomain converts a database DTO to a member domain aggregate.
func toDomain(dto MemberDTO) (*member.Member, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.ZipCode)
	if err != nil {
		return nil, err
	}

	return member.RestoreMember(id, dto.Name, address)
}
