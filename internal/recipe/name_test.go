package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFromBranch(t *testing.T) {
	tests := []struct {
		branch   string
		expected string
	}{
		{"develop_2Aug2023_update2", "2Aug2023_update2"},
		{"develop_2Aug2023", "2Aug2023"},
		{"release_29Aug2024_update1", "29Aug2024_update1"},
		{"develop", ""},
		{"", ""},
		// The first token is always dropped, even if it looks like a version
		{"2Aug2023_update2", "update2"},
		{"feature-x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			assert.Equal(t, tt.expected, VersionFromBranch(tt.branch))
		})
	}
}

func TestName_String(t *testing.T) {
	name := Name{Component: "LAMMPS", Version: "2Aug2023_update2", Toolchain: "foss-2023a", Suffix: "kokkos"}

	assert.Equal(t, "LAMMPS-2Aug2023_update2-foss-2023a-kokkos.eb", name.String())
	assert.Equal(t, "LAMMPS-2Aug2023_update2-foss-2023a-kokkos-dev_OBMD.eb", name.WithDevSuffix("dev_OBMD"))
}

func TestParseName(t *testing.T) {
	name, err := ParseName("LAMMPS-2Aug2023_update2-foss-2023a-kokkos.eb")
	require.NoError(t, err)
	assert.Equal(t, Name{Component: "LAMMPS", Version: "2Aug2023_update2", Toolchain: "foss-2023a", Suffix: "kokkos"}, name)

	name, err = ParseName("LAMMPS-23Jun2022-intel-kokkos.eb")
	require.NoError(t, err)
	assert.Equal(t, "intel", name.Toolchain)

	for _, bad := range []string{"README.md", "LAMMPS.eb", "LAMMPS-2Aug2023-kokkos.eb"} {
		_, err := ParseName(bad)
		assert.Error(t, err, bad)
	}
}
