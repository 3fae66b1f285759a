package build

// Set at link time, e.g.
//
//	go build -ldflags "-X conkyweb/build.ModifiedDate=$(git log -1 --format=%cI) -X conkyweb/build.ModifiedYear=$(date +%Y)"
var (
	Version      = "(unversioned)"
	ModifiedDate = ""
	ModifiedYear = ""
)
