// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dictionaries

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/spellcheck/base/errors"
	"cogentcore.org/spellcheck/base/fsx"
	"github.com/h2non/filetype"
	"golang.org/x/sync/errgroup"
)

// installConcurrency is the maximum number of dictionary files
// copied at the same time.
const installConcurrency = 4

// Install is the pending installation of one dictionary file.
// It completes with either the installed dictionary name
// or the error that prevented the installation.
type Install struct {

	// Name is the name of the dictionary being installed.
	Name string

	// Source is the path of the file being installed.
	Source string

	err  error
	done chan struct{}
}

// Done returns a channel that is closed when the installation completes.
func (in *Install) Done() <-chan struct{} {
	return in.done
}

// Wait waits for the installation to complete and returns its error.
func (in *Install) Wait() error {
	<-in.done
	return in.err
}

// InstallDictionariesFromPaths installs the given dictionary files by
// copying them into the dictionary directory as <name><ext>. The name is
// the file's [DictionaryName], so fr-FR.dic is installed as fr_FR.dic.
// A file that is already in place is not copied. Copies run
// in the background; each returned [Install] completes when its file is
// copied, at which point its dictionary is available. A failed file does
// not affect the others.
func (m *Manager) InstallDictionariesFromPaths(paths []string) []*Install {
	ins := make([]*Install, len(paths))
	for i, p := range paths {
		ins[i] = &Install{Name: DictionaryName(p), Source: p, done: make(chan struct{})}
	}
	go func() {
		var g errgroup.Group
		g.SetLimit(installConcurrency)
		for _, in := range ins {
			g.Go(func() error {
				defer close(in.done)
				in.err = m.install(in)
				return in.err
			})
		}
		if err := g.Wait(); err != nil {
			slog.Warn("spell: not all dictionaries were installed", "err", err)
		}
	}()
	return ins
}

// WaitAll waits for all of the given installations and returns the names
// of the installed dictionaries and the joined errors of the failed ones.
func WaitAll(ins []*Install) ([]string, error) {
	var names []string
	var errs []error
	for _, in := range ins {
		if err := in.Wait(); err != nil {
			errs = append(errs, err)
			continue
		}
		names = append(names, in.Name)
	}
	return names, errors.Join(errs...)
}

func (m *Manager) install(in *Install) error {
	ext := strings.ToLower(filepath.Ext(in.Source))
	if in.Name == "" || !fsx.HasExt(in.Source, Extensions...) {
		return errors.Errorf("installing %q: not a dictionary file", in.Source)
	}
	if err := checkDictionaryFile(in.Source); err != nil {
		slog.Error("spell: error copying dictionary file", "dictionary", in.Name, "err", err)
		return err
	}
	dst := filepath.Join(m.dir, in.Name+ext)
	if fsx.SameFile(dst, in.Source) {
		slog.Debug("spell: dictionary file already installed", "dictionary", in.Name, "file", dst)
	} else if err := fsx.CopyFile(dst, in.Source); err != nil {
		slog.Error("spell: error copying dictionary file", "dictionary", in.Name, "err", err)
		return errors.Errorf("installing dictionary %q: %w", in.Name, err)
	}
	if m.addAvailable(in.Name) {
		slog.Info("spell: installed dictionary", "dictionary", in.Name)
	}
	return nil
}

// checkDictionaryFile returns an error if the content of the given file
// is recognized as a binary file type (image, archive, executable...),
// which cannot be a hunspell dictionary.
func checkDictionaryFile(fname string) error {
	f, err := os.Open(fname)
	if err != nil {
		return errors.Errorf("installing %q: %w", fname, err)
	}
	defer f.Close()
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return errors.Errorf("installing %q: %w", fname, err)
	}
	kind, _ := filetype.Match(head[:n])
	if kind != filetype.Unknown {
		return errors.Errorf("installing %q: not a dictionary file (detected %s)", fname, kind.MIME.Value)
	}
	return nil
}
