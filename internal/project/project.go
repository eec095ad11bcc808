// Package project materializes an extraction result as a CMake project
// tree on disk. The tree is assembled in a staging directory and renamed
// into place, so a failed run never leaves a partial project behind.
package project

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"autoproj/internal/cmake"
	"autoproj/internal/markdown"
)

// ErrExists reports a target project directory that already exists and may
// not be overwritten.
var ErrExists = errors.New("project directory already exists")

// Materializer writes one extraction result under OutDir/Name.
type Materializer struct {
	OutDir    string // output root; the project tree is created inside it
	Name      string // project name, the document's base name
	Overwrite bool   // replace an existing tree
}

// Dir returns the target project directory.
func (m *Materializer) Dir() string {
	return filepath.Join(m.OutDir, m.Name)
}

// Check fails with ErrExists when the target directory exists and
// overwriting is not permitted. Callers run it before scanning so the run
// fails before any extraction work.
func (m *Materializer) Check() error {
	if _, err := os.Stat(m.Dir()); err == nil && !m.Overwrite {
		return fmt.Errorf("%s: %w", m.Dir(), ErrExists)
	}
	return nil
}

// Create writes the whole project tree: src/ with every extracted file and
// the src-level descriptor, the top-level descriptor, an empty build/
// directory for out-of-tree builds, and a copy of the source document at
// src/{name}.md.
func (m *Materializer) Create(res *markdown.Result, docPath string) error {
	if err := m.Check(); err != nil {
		return err
	}

	staging := filepath.Join(m.OutDir, ".autoproj-"+uuid.NewString())
	defer os.RemoveAll(staging)

	srcDir := filepath.Join(staging, "src")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", srcDir, err)
	}
	if err := os.Mkdir(filepath.Join(staging, "build"), 0755); err != nil {
		return fmt.Errorf("creating build directory: %w", err)
	}

	for _, f := range res.Files {
		path := filepath.Join(srcDir, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
	}

	srcLevel := cmake.SrcLevel(m.Name, res.Snippets, res.Names(), res.Libraries)
	if err := os.WriteFile(filepath.Join(srcDir, "CMakeLists.txt"), []byte(srcLevel), 0644); err != nil {
		return fmt.Errorf("writing src/CMakeLists.txt: %w", err)
	}
	topLevel := cmake.TopLevel(m.Name)
	if err := os.WriteFile(filepath.Join(staging, "CMakeLists.txt"), []byte(topLevel), 0644); err != nil {
		return fmt.Errorf("writing CMakeLists.txt: %w", err)
	}

	if err := copyFile(docPath, filepath.Join(srcDir, m.Name+markdown.Extension)); err != nil {
		return fmt.Errorf("copying document: %w", err)
	}

	if m.Overwrite {
		if err := os.RemoveAll(m.Dir()); err != nil {
			return fmt.Errorf("removing existing %s: %w", m.Dir(), err)
		}
	}
	if err := os.Rename(staging, m.Dir()); err != nil {
		return fmt.Errorf("moving project into place: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
