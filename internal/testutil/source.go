// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

const (
	prefixHead = `<article dict="bg-en" lang="bg" type="word"`
	prefixTail = ` key="`
)

// TaggedPrefix is a 92 byte line prefix as found in tagged-line exports.
var TaggedPrefix = prefixHead + strings.Repeat(" ", 92-len(prefixHead)-len(prefixTail)) + prefixTail

// TaggedSuffix is the 10 byte line suffix as found in tagged-line exports.
const TaggedSuffix = "</article>"

// Pair is a headword and its translation.
type Pair struct {
	Key   string
	Value string
}

// MakeTaggedLine creates a single tagged line.
func MakeTaggedLine(key, value string) string {
	return TaggedPrefix + key + `">` + value + TaggedSuffix
}

// MakeTagged creates the contents of a tagged-line file.
func MakeTagged(pairs []Pair) []byte {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(MakeTaggedLine(p.Key, p.Value))
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// MakePaired creates the contents of a paired-line file with blank separator
// lines.
func MakePaired(pairs []Pair) []byte {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(p.Key)
		b.WriteString("\n")
		b.WriteString(p.Value)
		b.WriteString("\n\n")
	}
	return []byte(b.String())
}

// SourceOptions are options for MakeTempSource.
type SourceOptions struct {
	// Name is the file name. Defaults to "vocab.txt" with the compression
	// extension appended.
	Name string

	// DictZip indicates that the file should be compressed with DictZip.
	DictZip bool

	// Gzip indicates that the file should be compressed with gzip.
	Gzip bool
}

func (o *SourceOptions) name() string {
	if o.Name != "" {
		return o.Name
	}
	switch {
	case o.DictZip:
		return "vocab.txt.dz"
	case o.Gzip:
		return "vocab.txt.gz"
	default:
		return "vocab.txt"
	}
}

// MakeTempSource writes data to a temporary vocabulary file and returns its
// path. The file is removed when the test ends.
func MakeTempSource(t *testing.T, data []byte, opts *SourceOptions) string {
	t.Helper()
	if opts == nil {
		opts = &SourceOptions{}
	}

	path := filepath.Join(t.TempDir(), opts.name())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch {
	case opts.DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case opts.Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
	}

	return path
}
