// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"context"
	"io/fs"
	"path"
	"strings"
)

// FileSource reads values from a file in a [fs.FS].
type FileSource struct {
	fsys fs.FS
	name string
}

// File returns a [Source] which reads the named file from fsys each time
// it is read. The decoder is chosen by extension: ".yaml" and ".yml" use
// [Yaml], ".json" uses [Json] and anything else uses [Text].
func File(fsys fs.FS, name string) FileSource {
	return FileSource{
		fsys: fsys,
		name: name,
	}
}

// Name returns the name of the file within its [fs.FS].
func (src FileSource) Name() string {
	return src.name
}

// Read implements the [Source] interface.
func (src FileSource) Read(ctx context.Context) ([]int32, error) {
	f, err := src.fsys.Open(src.name)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(path.Ext(src.name)) {
	case ".yaml", ".yml":
		return Yaml(f).Read(ctx)
	case ".json":
		return Json(f).Read(ctx)
	default:
		return Text(f).Read(ctx)
	}
}
