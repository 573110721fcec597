package domain

// Folder represents a named, colored grouping of tasks in the domain model.
// This is a pure domain model without database-specific concerns.
type Folder struct {
	ID    int64
	Name  string
	Color string
}

// DefaultFolderName is the name of the folder created automatically
// when no folders exist yet.
const DefaultFolderName = "Tasks"

// DefaultColor is the palette color assigned when none is chosen.
const DefaultColor = "blue"

// Palette is the fixed set of color tokens a folder may use.
var Palette = []string{
	"red",
	"orange",
	"yellow",
	"green",
	"teal",
	"blue",
	"purple",
	"pink",
}

// IsValidColor reports whether color is one of the palette tokens.
func IsValidColor(color string) bool {
	for _, c := range Palette {
		if c == color {
			return true
		}
	}
	return false
}

// NewFolder creates a new Folder with the given name and color.
func NewFolder(name, color string) Folder {
	return Folder{
		Name:  name,
		Color: color,
	}
}

// IsValid checks if the folder has valid data.
func (f Folder) IsValid() bool {
	return f.Name != "" && IsValidColor(f.Color)
}

// String returns the folder name for display purposes.
func (f Folder) String() string {
	return f.Name
}
