package kernel_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create address with all components", func(t *testing.T) {
		addr, err := kernel.NewAddress("1 Main St", "Springfield", "12345")

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Equal(t, "1 Main St", addr.Street())
		assert.Equal(t, "Springfield", addr.City())
		assert.Equal(t, "12345", addr.ZipCode())
	})

	t.Run("should fail with empty street", func(t *testing.T) {
		_, err := kernel.NewAddress("", "Springfield", "12345")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "street")
	})

	t.Run("should fail with empty city", func(t *testing.T) {
		_, err := kernel.NewAddress("1 Main St", "", "12345")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("should fail with empty zip code", func(t *testing.T) {
		_, err := kernel.NewAddress("1 Main St", "Springfield", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "zipCode")
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero value address fails validation", func(t *testing.T) {
		var addr kernel.Address

		err := addr.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "address must be created")
	})
}

func TestAddress_IsEqual(t *testing.T) {
	addr1, _ := kernel.NewAddress("1 Main St", "Springfield", "12345")
	addr2, _ := kernel.NewAddress("1 Main St", "Springfield", "12345")
	addr3, _ := kernel.NewAddress("2 Oak Ave", "Springfield", "12345")

	assert.True(t, addr1.IsEqual(addr2))
	assert.False(t, addr1.IsEqual(addr3))
}

func TestAddress_String(t *testing.T) {
	addr, _ := kernel.NewAddress("1 Main St", "Springfield", "12345")

	assert.Equal(t, "1 Main St, Springfield 12345", addr.String())
}
