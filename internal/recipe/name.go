package recipe

import (
	"fmt"
	"strings"
)

const easyconfigExt = ".eb"

// Name is the parsed form of an easyconfig file name:
//
//	<component>-<version>-<toolchain>-<suffix>.eb
type Name struct {
	Component string
	Version   string
	Toolchain string
	Suffix    string
}

// String returns the easyconfig file name
func (n Name) String() string {
	return strings.Join([]string{n.Component, n.Version, n.Toolchain, n.Suffix}, "-") + easyconfigExt
}

// WithDevSuffix returns the file name with an extra suffix before the extension
func (n Name) WithDevSuffix(suffix string) string {
	return strings.TrimSuffix(n.String(), easyconfigExt) + "-" + suffix + easyconfigExt
}

// ParseName splits an easyconfig file name into its parts.
// The toolchain is everything between the version and the last field, so
// toolchains containing a dash (foss-2023a) survive the round trip.
func ParseName(file string) (Name, error) {
	base, ok := strings.CutSuffix(file, easyconfigExt)
	if !ok {
		return Name{}, fmt.Errorf("%q is not an easyconfig", file)
	}

	parts := strings.Split(base, "-")
	if len(parts) < 4 {
		return Name{}, fmt.Errorf("%q does not follow <component>-<version>-<toolchain>-<suffix>.eb", file)
	}

	return Name{
		Component: parts[0],
		Version:   parts[1],
		Toolchain: strings.Join(parts[2:len(parts)-1], "-"),
		Suffix:    parts[len(parts)-1],
	}, nil
}

// VersionFromBranch extracts the software version from a base branch name.
// Branches are named <prefix>_<version>, where the version itself may contain
// underscores: develop_2Aug2023_update2 yields 2Aug2023_update2. A branch
// without an underscore yields an empty version.
func VersionFromBranch(branch string) string {
	tokens := strings.Split(branch, "_")
	return strings.Join(tokens[1:], "_")
}
