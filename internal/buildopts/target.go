package buildopts

// Target is the platform a player build is produced for.
type Target int

const (
	TargetStandalone Target = iota
	TargetWindows
	TargetMacOS
	TargetLinux
	TargetIOS
	TargetAndroid
	TargetWebGL
)

var targetNames = [...]string{
	TargetStandalone: "standalone",
	TargetWindows:    "windows",
	TargetMacOS:      "macos",
	TargetLinux:      "linux",
	TargetIOS:        "ios",
	TargetAndroid:    "android",
	TargetWebGL:      "webgl",
}

// String returns the lowercase target name accepted on the command line.
func (t Target) String() string {
	if t < 0 || int(t) >= len(targetNames) {
		return "unknown"
	}
	return targetNames[t]
}

// Values lists every Target.
func (Target) Values() []Target {
	return []Target{TargetStandalone, TargetWindows, TargetMacOS, TargetLinux, TargetIOS, TargetAndroid, TargetWebGL}
}
