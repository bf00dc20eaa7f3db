package common

import "github.com/blang/semver/v4"

// version may be overridden at build time with
// -ldflags "-X github.com/milvus-io/pilot/common.version=x.y.z".
var version = "0.3.0"

// Version current version of pilot.
var Version semver.Version

func init() {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		v = semver.MustParse("0.0.0-dev")
	}
	Version = v
}
