package member_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("1 Main St", "Springfield", "12345")
	require.NoError(t, err)
	return addr
}

func TestNewMember(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid member", func(t *testing.T) {
		addr := validAddress(t)

		m, err := member.NewMember(validID, "Alice", addr)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.ID().IsEqual(validID))
		assert.Equal(t, "Alice", m.Name())
		assert.True(t, m.Address().IsEqual(addr))
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		m, err := member.NewMember(invalidID, "Alice", validAddress(t))

		require.Error(t, err)
		assert.Nil(t, m)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		m, err := member.NewMember(validID, "", validAddress(t))

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with unconstructed address", func(t *testing.T) {
		var addr kernel.Address

		m, err := member.NewMember(validID, "Alice", addr)

		require.Error(t, err)
		assert.Nil(t, m)
		assert.Contains(t, err.Error(), "address must be created")
	})
}

func TestMember_Validate(t *testing.T) {
	t.Run("zero value member fails validation", func(t *testing.T) {
		var m member.Member

		require.ErrorIs(t, m.Validate(), member.ErrMemberIsNotConstructed)
	})

	t.Run("nil member fails validation", func(t *testing.T) {
		var m *member.Member

		require.ErrorIs(t, m.Validate(), member.ErrMemberIsNotConstructed)
	})
}

func TestMember_Rename(t *testing.T) {
	t.Run("should change name", func(t *testing.T) {
		m, _ := member.NewMember(kernel.NewUUID(), "Alice", validAddress(t))

		require.NoError(t, m.Rename("Alicia"))
		assert.Equal(t, "Alicia", m.Name())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		m, _ := member.NewMember(kernel.NewUUID(), "Alice", validAddress(t))

		require.Error(t, m.Rename(""))
		assert.Equal(t, "Alice", m.Name())
	})
}

func TestMember_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	m1, _ := member.NewMember(id, "Alice", validAddress(t))
	m2, _ := member.RestoreMember(id, "Alice", validAddress(t))
	m3, _ := member.NewMember(kernel.NewUUID(), "Alice", validAddress(t))

	assert.True(t, m1.IsEqual(m2))
	assert.False(t, m1.IsEqual(m3))
	assert.False(t, m1.IsEqual(nil))
}
