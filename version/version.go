package version

var (
	// GitCommit is the current HEAD set using ldflags.
	GitCommit string

	// Version is the built softwares version.
	Version = SemVer
)

func init() {
	if GitCommit != "" {
		Version += "-" + GitCommit
	}
}

const (
	// SemVer is the current version of the client.
	// It's the Semantic Version of the software.
	SemVer = "0.3.0"

	// NodeAPIVersion is the Nimiq node RPC API the client is written against.
	NodeAPIVersion = "1.5"

	// JSONRPCVersion is the JSON-RPC protocol version spoken on the wire.
	JSONRPCVersion = "2.0"
)
