package meta

import (
	"fmt"
	"runtime"
)

// Info describes the build of a seymour binary.
type Info struct {
	Version   string
	Build     string
	BuildTime string
	Platform  string
	GoVersion string
}

// These will be filled in using the linker -X flag, e.g.
//
//	go build -ldflags "-X github.com/luma/seymour/internal/meta.Version=v0.1.0"
var (
	Version = "dev"

	// Build is the Git sha from when we are building
	Build string

	// BuildTimeUTC is the build time in UTC (year/month/day hour:min:sec)
	BuildTimeUTC string
)

func GetInfo() Info {
	return Info{
		Version:   Version,
		Build:     Build,
		BuildTime: BuildTimeUTC,
		Platform:  fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH),
		GoVersion: runtime.Version(),
	}
}

func (i Info) String() string {
	s := fmt.Sprintf("seymour %s (%s, %s)", i.Version, i.Platform, i.GoVersion)

	if i.Build != "" {
		s += fmt.Sprintf(" build %s", i.Build)
	}

	if i.BuildTime != "" {
		s += fmt.Sprintf(" at %s", i.BuildTime)
	}

	return s
}
