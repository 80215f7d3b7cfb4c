package topics

import (
	"embed"
	"io/fs"
)

//go:embed embedded/*.md
var embedded embed.FS

// Builtin returns the topics shipped with confc
func Builtin() fs.FS {
	sub, err := fs.Sub(embedded, "embedded")
	if err != nil {
		panic(err)
	}
	return sub
}
