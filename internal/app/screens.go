package app

// Screen represents the current view in the application
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenReleaseList
	ScreenReleaseDetail
	ScreenError
)

func (s Screen) String() string {
	names := []string{
		"Loading",
		"ReleaseList",
		"ReleaseDetail",
		"Error",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}
