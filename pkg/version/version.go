package version

var (
	// Injected with -ldflags at build time.
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

func GetVersionInfo() string {
	return "cardgen " + Version
}

func GetDetailedVersionInfo() string {
	return "cardgen\n" +
		"Version:  " + Version + "\n" +
		"Commit:   " + CommitSHA + "\n" +
		"Built:    " + BuildDate + "\n"
}
