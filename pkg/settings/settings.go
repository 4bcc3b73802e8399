// Package settings holds build metadata and the per-run options shared by
// the folio CLI and TUI.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "folio"

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds the options of a single invocation after flags are parsed.
// Empty strings mean "use the configured value".
type Run struct {
	MinLogLevel  int8
	NoColor      bool
	ExitOnError  bool
	ConfigFile   string
	StoreBackend string
	StorePath    string
	LogFile      string
	Theme        string
	Accent       string
}

// NewCliParams returns the defaults used before flags are applied.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		ExitOnError: true,
	}
}

// Overrides returns the flag values that replace configuration keys, keyed
// by config key. Unset values are omitted.
func (r *Run) Overrides() map[string]string {
	out := make(map[string]string)
	if r == nil {
		return out
	}
	set := func(key, val string) {
		if val != "" {
			out[key] = val
		}
	}
	set("storage.backend", r.StoreBackend)
	set("storage.path", r.StorePath)
	set("ui.theme", r.Theme)
	set("ui.accent", r.Accent)
	return out
}
