package version

import "runtime/debug"

var (
	cliVersionHash = ""
	// overridden at build time with -ldflags "-X github.com/erpbridge/odoorest/version.cliVersion=..."
	cliVersion = "v0.3.0+dev"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	modified := false

	for _, v := range info.Settings {
		if v.Key == "vcs.revision" {
			cliVersionHash = v.Value
		}
		if v.Key == "vcs.modified" {
			modified = v.Value == "true"
		}
	}
	if modified {
		cliVersionHash += "-modified"
	}
}

// Get returns the version of the binary.
func Get() string {
	return cliVersion
}

// GetCommitHash returns the commit the binary was built from, if known.
func GetCommitHash() string {
	return cliVersionHash
}
