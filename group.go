package optext

// Group is a titled container used to organize related options under a
// heading in help output. A group belongs to exactly one parser.
type Group struct {
	Container
	Title string
}

// NewGroup returns a detached group; attach it with Parser.AddGroup, or
// create and attach in one step with Parser.NewGroup.
func NewGroup(title string) *Group {
	return &Group{Title: title}
}
