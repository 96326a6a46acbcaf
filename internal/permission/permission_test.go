package permission_test

import (
	"testing"

	"go-attendance/internal/permission"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission_AdminOverridesEveryCapability(t *testing.T) {
	// Semua flag individual false, hanya IsAdmin true
	flags := permission.Flags{IsAdmin: true}

	capabilities := []permission.Capability{
		permission.CapabilityAdmin,
		permission.CapabilityApproveLeaves,
		permission.CapabilityRequestLeaves,
		permission.CapabilityApproveOtherGroup,
		permission.CapabilityManageEmployees,
		permission.CapabilityViewReports,
		permission.CapabilityManageSchedules,
		permission.CapabilityProcessPayroll,
		permission.CapabilityViewAllAttendance,
		permission.CapabilityEditSettings,
	}

	for _, c := range capabilities {
		ok, err := permission.HasPermission(flags, c)
		assert.NoError(t, err, string(c))
		assert.True(t, ok, string(c))
	}
}

func TestHasPermission_IndividualFlag(t *testing.T) {
	flags := permission.Flags{CanViewReports: true}

	ok, err := permission.HasPermission(flags, permission.CapabilityViewReports)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = permission.HasPermission(flags, permission.CapabilityProcessPayroll)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestHasPermission_UnknownCapability(t *testing.T) {
	flags := permission.AllGranted()

	_, err := permission.HasPermission(flags, permission.Capability("aprove_leaves"))
	assert.ErrorIs(t, err, permission.ErrUnknownCapability)
}

func TestCanApproveForGroup(t *testing.T) {
	t.Run("requires approve_leaves", func(t *testing.T) {
		flags := permission.Flags{CanApproveOtherGroup: true}
		ok, err := permission.CanApproveForGroup(flags, []string{"sales"}, "sales")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("own group membership is enough", func(t *testing.T) {
		flags := permission.Flags{CanApproveLeaves: true}
		ok, err := permission.CanApproveForGroup(flags, []string{"sales", "management"}, "sales")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("other group needs approve_other_groups", func(t *testing.T) {
		flags := permission.Flags{CanApproveLeaves: true}
		ok, err := permission.CanApproveForGroup(flags, []string{"sales"}, "warehouse")
		assert.NoError(t, err)
		assert.False(t, ok)

		flags.CanApproveOtherGroup = true
		ok, err = permission.CanApproveForGroup(flags, []string{"sales"}, "warehouse")
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}
