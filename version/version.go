package version

import (
	"fmt"
	"strings"
	"sync"
)

// validBuildCharacters is the set of characters allowed in appBuild
const validBuildCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

const (
	appMajor uint = 0
	appMinor uint = 4
	appPatch uint = 0
)

// appBuild is set at link time with
// '-ldflags "-X github.com/cashnode/cashd/version.appBuild=foo"'.
// A value with characters outside validBuildCharacters is dropped.
var appBuild string

var (
	versionOnce sync.Once
	version     string
)

// Version returns the application version in semantic versioning form, with
// the build metadata appended when there is any.
func Version() string {
	versionOnce.Do(func() {
		version = formatVersion(appMajor, appMinor, appPatch, appBuild)
	})
	return version
}

func formatVersion(major, minor, patch uint, build string) string {
	formatted := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if isValidBuild(build) {
		formatted = fmt.Sprintf("%s+%s", formatted, build)
	}
	return formatted
}

func isValidBuild(build string) bool {
	if build == "" {
		return false
	}
	for _, r := range build {
		if !strings.ContainsRune(validBuildCharacters, r) {
			return false
		}
	}
	return true
}
