package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidSubdomain(t *testing.T) {
	t.Parallel()

	valid := []string{"greenwood", "green-wood", "abc", "school42"}
	for _, s := range valid {
		require.True(t, IsValidSubdomain(s), s)
	}

	invalid := []string{"", "ab", "-greenwood", "greenwood-", "Green wood", "GREENWOOD"}
	for _, s := range invalid {
		require.False(t, IsValidSubdomain(s), s)
	}
}

func TestIsValidAdmissionNo(t *testing.T) {
	t.Parallel()

	require.True(t, IsValidAdmissionNo("ADM001"))
	require.True(t, IsValidAdmissionNo("2024A17"))
	require.False(t, IsValidAdmissionNo("ad m"))
	require.False(t, IsValidAdmissionNo("ab"))
	require.False(t, IsValidAdmissionNo("adm001"))
}

func TestIsValidAcademicYear(t *testing.T) {
	t.Parallel()

	require.True(t, IsValidAcademicYear("2024-2025"))
	require.False(t, IsValidAcademicYear("2024"))
	require.False(t, IsValidAcademicYear("24-25"))
}
