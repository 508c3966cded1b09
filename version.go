package nylas

import (
	"fmt"
	"strings"
)

const (
	// Version is the release version of this SDK, sent in the
	// User-Agent and Nylas-SDK-API-Version headers.
	Version = "1.0.0"

	// SupportedAPIVersion is the Nylas API version this SDK was built
	// against. Every request advertises it via the Nylas-API-Version
	// header; responses reporting a different version trigger a
	// compatibility warning.
	SupportedAPIVersion = "2.0"
)

// CheckAPIVersionCompatibility compares the SDK's supported API version
// with the version reported by the server and returns a human-readable
// warning, or an empty string when the versions match or the server did
// not report one.
//
// The warning includes a directional hint when the leading numeric
// components of the two versions differ: the dashboard-side API version
// should be raised when the SDK is ahead, and the SDK should be updated
// when the server is ahead. Versions whose leading component is not
// numeric produce no hint.
func CheckAPIVersionCompatibility(sdkAPIVersion, apiVersion string) string {
	if apiVersion == "" || apiVersion == sdkAPIVersion {
		return ""
	}

	warning := fmt.Sprintf(
		"WARNING: SDK supports API version %s, but the server "+
			"responded with version %s.",
		sdkAPIVersion, apiVersion,
	)

	sdkNum, sdkOK := leadingVersionNumber(sdkAPIVersion)
	apiNum, apiOK := leadingVersionNumber(apiVersion)

	if sdkOK && apiOK && sdkNum > apiNum {
		warning += " Please update your API version via the dashboard."
	} else if sdkOK && apiOK && apiNum > sdkNum {
		warning += " Please update the SDK to the latest version."
	}

	return warning
}

// leadingVersionNumber parses the integer prefix of a version string:
// the text before the first '-' separator, reduced to its leading run
// of digits ("2.1-beta" -> 2). ok is false when no digits lead the
// string.
func leadingVersionNumber(version string) (n int, ok bool) {
	head, _, _ := strings.Cut(version, "-")

	digits := 0
	for digits < len(head) && head[digits] >= '0' && head[digits] <= '9' {
		n = n*10 + int(head[digits]-'0')
		digits++
	}

	return n, digits > 0
}
