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

package bgvocab_test

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-bgvocab"
	"github.com/ianlewis/go-bgvocab/internal/testutil"
	"github.com/ianlewis/go-bgvocab/paired"
	"github.com/ianlewis/go-bgvocab/tagged"
	"github.com/ianlewis/go-bgvocab/vocab"
)

// discard returns a logger that drops all output.
func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestLoad_tagged(t *testing.T) {
	t.Parallel()

	data := testutil.MakeTagged([]testutil.Pair{
		{Key: "д\u0301ом", Value: "<b>house</b>"},
		{Key: "вода", Value: "water"},
		{Key: "дом", Value: "<i>home</i>"},
	})

	v, err := bgvocab.Load(bytes.NewReader(data), &bgvocab.Options{
		Format: bgvocab.FormatTagged,
		Logger: discard(),
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	expected := []*vocab.Entry{
		{Key: "вода", Headword: "вода", Translations: []string{"water"}},
		{Key: "дом", Headword: "Дом", Translations: []string{"<b>house</b>", "<i>home</i>"}},
	}
	if diff := cmp.Diff(expected, v.Entries()); diff != "" {
		t.Errorf("Entries (-want, +got):\n%s", diff)
	}
	if want, got := "д\u0301ом", v.Lookup("дом").Stressed(); want != got {
		t.Errorf("Stressed; want: %q, got: %q", want, got)
	}
}

func TestLoad_paired(t *testing.T) {
	t.Parallel()

	data := testutil.MakePaired([]testutil.Pair{
		{Key: "Дом", Value: "house"},
		{Key: "вОда", Value: "water"},
		{Key: "хляб", Value: "bread"},
	})

	v, err := bgvocab.Load(bytes.NewReader(data), &bgvocab.Options{
		Format: bgvocab.FormatPaired,
		Logger: discard(),
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if diff := cmp.Diff([]string{"вода", "дом", "хляб"}, v.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}

	e := v.Lookup("дом")
	if e == nil {
		t.Fatalf("Lookup(%q): not found", "дом")
	}
	if want, got := "д\u0301ом", e.Stressed(); want != got {
		t.Errorf("Stressed; want: %q, got: %q", want, got)
	}
	if want, got := "хляб", v.Lookup("хляб").Stressed(); want != got {
		t.Errorf("Stressed; want: %q, got: %q", want, got)
	}
}

func TestLoad_pairedSeparators(t *testing.T) {
	t.Parallel()

	type entry struct {
		Key          string
		Translations []string
	}

	tests := []struct {
		name     string
		data     string
		opts     *paired.ScannerOptions
		expected []entry
	}{
		{
			name: "dash separator lines",
			data: "Дом\nhouse\n---\nкОтка\ncat\n---\n",
			expected: []entry{
				{Key: "дом", Translations: []string{"house"}},
				{Key: "котка", Translations: []string{"cat"}},
			},
		},
		{
			name: "two line records",
			data: "Дом\nhouse\nкОтка\ncat\n",
			opts: &paired.ScannerOptions{Separator: paired.SeparatorBlank},
			expected: []entry{
				{Key: "дом", Translations: []string{"house"}},
				{Key: "котка", Translations: []string{"cat"}},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			v, err := bgvocab.Load(strings.NewReader(test.data), &bgvocab.Options{
				Format: bgvocab.FormatPaired,
				Logger: discard(),
				Paired: test.opts,
			})
			if err != nil {
				t.Fatalf("Load: %v", err)
			}

			var got []entry
			for _, e := range v.Entries() {
				got = append(got, entry{Key: e.Key, Translations: e.Translations})
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("entries (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_deterministic(t *testing.T) {
	t.Parallel()

	data := testutil.MakeTagged([]testutil.Pair{
		{Key: "я\u0301бълка", Value: "apple"},
		{Key: "вода", Value: "water"},
		{Key: "бя\u0301л", Value: "white"},
		{Key: "вода", Value: "rain"},
	})

	v1, err := bgvocab.Load(bytes.NewReader(data), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	v2, err := bgvocab.Load(bytes.NewReader(data), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if diff := cmp.Diff(v1.Entries(), v2.Entries()); diff != "" {
		t.Errorf("Entries (-first, +second):\n%s", diff)
	}
}

func TestLoad_malformed(t *testing.T) {
	t.Parallel()

	var b bytes.Buffer
	b.WriteString(testutil.MakeTaggedLine("вода", "water") + "\n")
	b.WriteString(testutil.TaggedPrefix + "broken" + testutil.TaggedSuffix + "\n")
	b.WriteString(testutil.MakeTaggedLine("дом", "house") + "\n")
	data := b.Bytes()

	t.Run("abort", func(t *testing.T) {
		t.Parallel()

		_, err := bgvocab.Load(bytes.NewReader(data), &bgvocab.Options{
			Format: bgvocab.FormatTagged,
			Policy: bgvocab.AbortPolicy{},
			Logger: discard(),
		})
		if !errors.Is(err, tagged.ErrMalformedRecord) {
			t.Fatalf("Load; want: %v, got: %v", tagged.ErrMalformedRecord, err)
		}
	})

	t.Run("skip", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		v, err := bgvocab.Load(bytes.NewReader(data), &bgvocab.Options{
			Format: bgvocab.FormatTagged,
			Policy: bgvocab.SkipPolicy{},
			Logger: slog.New(slog.NewTextHandler(&logs, nil)),
		})
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if diff := cmp.Diff([]string{"вода", "дом"}, v.Keys()); diff != "" {
			t.Errorf("Keys (-want, +got):\n%s", diff)
		}
		if !strings.Contains(logs.String(), "line 2") {
			t.Errorf("log output does not name line 2:\n%s", logs.String())
		}
	})
}

func TestLoad_truncated(t *testing.T) {
	t.Parallel()

	data := []byte("Дом\nhouse\n\nвОда\n")

	t.Run("abort", func(t *testing.T) {
		t.Parallel()

		_, err := bgvocab.Load(bytes.NewReader(data), &bgvocab.Options{
			Format: bgvocab.FormatPaired,
			Logger: discard(),
		})
		if !errors.Is(err, paired.ErrTruncatedRecord) {
			t.Fatalf("Load; want: %v, got: %v", paired.ErrTruncatedRecord, err)
		}
	})

	t.Run("skip", func(t *testing.T) {
		t.Parallel()

		v, err := bgvocab.Load(bytes.NewReader(data), &bgvocab.Options{
			Format: bgvocab.FormatPaired,
			Policy: bgvocab.SkipPolicy{},
			Logger: discard(),
		})
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if diff := cmp.Diff([]string{"дом"}, v.Keys()); diff != "" {
			t.Errorf("Keys (-want, +got):\n%s", diff)
		}
	})
}

func TestLoad_skip(t *testing.T) {
	t.Parallel()

	data := testutil.MakePaired([]testutil.Pair{
		{Key: "в", Value: "in"},
		{Key: "а", Value: "and"},
		{Key: "б", Value: "b"},
		{Key: "г", Value: "g"},
	})

	v, err := bgvocab.Load(bytes.NewReader(data), &bgvocab.Options{
		Skip:   2,
		Logger: discard(),
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{"в", "г"}, v.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
}

func TestLoad_dropProperNouns(t *testing.T) {
	t.Parallel()

	data := testutil.MakeTagged([]testutil.Pair{
		{Key: "Со\u0301фия", Value: "Sofia"},
		{Key: "Иван", Value: "Ivan"},
		{Key: "вода", Value: "water"},
	})

	tests := []struct {
		name     string
		drop     bool
		expected []string
	}{
		{
			name:     "keep",
			drop:     false,
			expected: []string{"вода", "иван", "софия"},
		},
		{
			name:     "drop",
			drop:     true,
			expected: []string{"вода"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			v, err := bgvocab.Load(bytes.NewReader(data), &bgvocab.Options{
				Format:          bgvocab.FormatTagged,
				DropProperNouns: test.drop,
				Logger:          discard(),
			})
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if diff := cmp.Diff(test.expected, v.Keys()); diff != "" {
				t.Errorf("Keys (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_sniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "tagged",
			data: testutil.MakeTagged([]testutil.Pair{{Key: "дом", Value: "house"}}),
		},
		{
			name: "paired",
			data: testutil.MakePaired([]testutil.Pair{{Key: "дОм", Value: "house"}}),
		},
		{
			name: "paired with bom",
			data: append([]byte("\ufeff"), testutil.MakePaired([]testutil.Pair{{Key: "дОм", Value: "house"}})...),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			v, err := bgvocab.Load(bytes.NewReader(test.data), &bgvocab.Options{
				Logger: discard(),
			})
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if diff := cmp.Diff([]string{"дом"}, v.Keys()); diff != "" {
				t.Errorf("Keys (-want, +got):\n%s", diff)
			}
			if want, got := []string{"house"}, v.Lookup("дом").Translations; !cmp.Equal(want, got) {
				t.Errorf("Translations; want: %q, got: %q", want, got)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	taggedData := testutil.MakeTagged([]testutil.Pair{
		{Key: "д\u0301ом", Value: "house"},
		{Key: "вода", Value: "water"},
	})
	pairedData := testutil.MakePaired([]testutil.Pair{
		{Key: "Дом", Value: "house"},
		{Key: "вода", Value: "water"},
	})

	tests := []struct {
		name string
		data []byte
		opts *testutil.SourceOptions
	}{
		{
			name: "tagged plain",
			data: taggedData,
			opts: &testutil.SourceOptions{Name: "vocab.xml"},
		},
		{
			name: "tagged gzip",
			data: taggedData,
			opts: &testutil.SourceOptions{Name: "vocab.xml.gz", Gzip: true},
		},
		{
			name: "tagged dictzip",
			data: taggedData,
			opts: &testutil.SourceOptions{Name: "vocab.xml.dz", DictZip: true},
		},
		{
			name: "paired plain",
			data: pairedData,
		},
		{
			name: "paired gzip",
			data: pairedData,
			opts: &testutil.SourceOptions{Gzip: true},
		},
		{
			name: "paired dictzip",
			data: pairedData,
			opts: &testutil.SourceOptions{DictZip: true},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.MakeTempSource(t, test.data, test.opts)
			v, err := bgvocab.LoadFile(path, &bgvocab.Options{
				Logger: discard(),
			})
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}

			expected := []*vocab.Entry{
				{Key: "вода", Headword: "вода", Translations: []string{"water"}},
				{Key: "дом", Headword: "Дом", Translations: []string{"house"}},
			}
			if diff := cmp.Diff(expected, v.Entries()); diff != "" {
				t.Errorf("Entries (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestLoadFile_unreadable(t *testing.T) {
	t.Parallel()

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := bgvocab.LoadFile(filepath.Join(t.TempDir(), "missing.txt"), nil)
		if !errors.Is(err, bgvocab.ErrSourceUnreadable) {
			t.Fatalf("LoadFile; want: %v, got: %v", bgvocab.ErrSourceUnreadable, err)
		}
	})

	t.Run("bad gzip", func(t *testing.T) {
		t.Parallel()

		path := testutil.MakeTempSource(t, []byte("not gzip"), &testutil.SourceOptions{Name: "vocab.txt.gz"})
		_, err := bgvocab.LoadFile(path, nil)
		if !errors.Is(err, bgvocab.ErrSourceUnreadable) {
			t.Fatalf("LoadFile; want: %v, got: %v", bgvocab.ErrSourceUnreadable, err)
		}
	})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected bgvocab.Format
		err      error
	}{
		{name: "", expected: bgvocab.FormatAuto},
		{name: "auto", expected: bgvocab.FormatAuto},
		{name: "Tagged", expected: bgvocab.FormatTagged},
		{name: "xml", expected: bgvocab.FormatTagged},
		{name: "paired", expected: bgvocab.FormatPaired},
		{name: "csv", err: bgvocab.ErrUnknownFormat},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			f, err := bgvocab.ParseFormat(test.name)
			if !errors.Is(err, test.err) {
				t.Fatalf("ParseFormat(%q); want: %v, got: %v", test.name, test.err, err)
			}
			if want, got := test.expected, f; want != got {
				t.Errorf("ParseFormat(%q); want: %v, got: %v", test.name, want, got)
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected bgvocab.ErrorPolicy
		err      error
	}{
		{name: "", expected: bgvocab.AbortPolicy{}},
		{name: "abort", expected: bgvocab.AbortPolicy{}},
		{name: "SKIP", expected: bgvocab.SkipPolicy{}},
		{name: "retry", err: bgvocab.ErrUnknownPolicy},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			p, err := bgvocab.ParsePolicy(test.name)
			if !errors.Is(err, test.err) {
				t.Fatalf("ParsePolicy(%q); want: %v, got: %v", test.name, test.err, err)
			}
			if want, got := test.expected, p; want != got {
				t.Errorf("ParsePolicy(%q); want: %T, got: %T", test.name, want, got)
			}
		})
	}
}
