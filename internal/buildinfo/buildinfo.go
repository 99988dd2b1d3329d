// Package buildinfo carries the version stamp shown in the window title, the
// caption and -version. Set it with
//
//	-ldflags "-X longbrot/internal/buildinfo.Version=v1.2.0 -X longbrot/internal/buildinfo.Commit=abc1234"
package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the caption and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full stamp, e.g. "longbrot v1.2.0 (abc1234, 2024-06-01)".
func String() string {
	s := "longbrot " + Short()
	known := func(v string) bool { return v != "" && v != "unknown" }
	switch {
	case known(Commit) && known(Date) && Short() != Commit:
		s += " (" + Commit + ", " + Date + ")"
	case known(Commit) && Short() != Commit:
		s += " (" + Commit + ")"
	case known(Date):
		s += " (" + Date + ")"
	}
	return s
}
