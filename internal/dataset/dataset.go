package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"tuikit/internal/ui/datatable"
	"tuikit/internal/ui/uiconst"
)

// ColumnSpec is the declarative column description carried by a
// dataset file.
type ColumnSpec struct {
	Key      string `yaml:"key"`
	Header   string `yaml:"header"`
	Sortable bool   `yaml:"sortable"`
	NoSearch bool   `yaml:"no_search"`
	Width    int    `yaml:"width"`
	Align    string `yaml:"align"` // left, right, center
	Sticky   bool   `yaml:"sticky"`
}

// Dataset is a demo fixture: a named set of columns and rows.
type Dataset struct {
	Name    string           `yaml:"name"`
	Columns []ColumnSpec     `yaml:"columns"`
	Rows    []map[string]any `yaml:"rows"`
}

// Load reads and validates a dataset file.
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	if ds.Name == "" {
		ds.Name = filepath.Base(path)
	}
	if err := ds.validate(); err != nil {
		return Dataset{}, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

func (ds Dataset) validate() error {
	if len(ds.Columns) == 0 {
		return fmt.Errorf("no columns defined")
	}
	seen := make(map[string]bool, len(ds.Columns))
	for _, c := range ds.Columns {
		if c.Key == "" {
			return fmt.Errorf("column with empty key")
		}
		if seen[c.Key] {
			return fmt.Errorf("duplicate column key %q", c.Key)
		}
		seen[c.Key] = true
	}
	return nil
}

// LoadAll loads multiple dataset files in parallel. The result keeps
// the input order; any single failure fails the whole load.
func LoadAll(paths []string) ([]Dataset, error) {
	out := make([]Dataset, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			ds, err := Load(path)
			if err != nil {
				return err
			}
			out[i] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// DefaultDir returns the directory scanned for dataset files when
// none are given explicitly: $TUIKIT_DATA_DIR when set, otherwise
// ~/.config/tuikit/datasets.
func DefaultDir() (string, error) {
	if dir := os.Getenv("TUIKIT_DATA_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tuikit", "datasets"), nil
}

// LoadDir loads every .yaml/.yml file in dir. A missing directory is
// not an error; it yields no datasets.
func LoadDir(dir string) ([]Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dataset dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return LoadAll(paths)
}

// TableColumns converts the declarative specs into table columns.
func (ds Dataset) TableColumns() []datatable.Column {
	cols := make([]datatable.Column, len(ds.Columns))
	for i, c := range ds.Columns {
		align := datatable.AlignLeft
		switch c.Align {
		case "right":
			align = datatable.AlignRight
		case "center":
			align = datatable.AlignCenter
		}
		cols[i] = datatable.Column{
			Key:      c.Key,
			Header:   c.Header,
			Sortable: c.Sortable,
			NoSearch: c.NoSearch,
			Width:    c.Width,
			Align:    align,
			Sticky:   c.Sticky,
		}
	}
	return cols
}

// TableRows converts the raw row maps into table rows.
func (ds Dataset) TableRows() []datatable.Row {
	rows := make([]datatable.Row, len(ds.Rows))
	for i, r := range ds.Rows {
		rows[i] = datatable.Row(r)
	}
	return rows
}

// Sample returns the built-in demo dataset used when no fixture
// files are available.
func Sample() Dataset {
	return Dataset{
		Name: "Team",
		Columns: []ColumnSpec{
			{Key: "name", Header: "Name", Sortable: true, Width: uiconst.ColWidthName, Sticky: true},
			{Key: "email", Header: "Email", Width: uiconst.ColWidthEmail},
			{Key: "age", Header: "Age", Sortable: true, Width: uiconst.ColWidthAge, Align: "right"},
			{Key: "city", Header: "City", Sortable: true, Width: uiconst.ColWidthCity},
			{Key: "active", Header: "Active", NoSearch: true, Width: uiconst.ColWidthBool},
		},
		Rows: []map[string]any{
			{"name": "Alice Johnson", "email": "alice@example.com", "age": 34, "city": "Berlin", "active": true},
			{"name": "Bob Martin", "email": "bob@example.com", "age": 28, "city": "Lisbon", "active": true},
			{"name": "Carol White", "email": "carol@example.com", "age": 41, "city": "Oslo", "active": false},
			{"name": "Dan Brown", "email": "dan@example.com", "age": 23, "city": "Madrid", "active": true},
			{"name": "Erin Davis", "email": "erin@example.com", "age": 37, "city": "Berlin", "active": false},
			{"name": "Frank Moore", "email": "frank@example.com", "age": 52, "city": "Vienna", "active": true},
			{"name": "Grace Lee", "email": "grace@example.com", "age": 29, "city": "Lisbon", "active": true},
			{"name": "Hank Green", "email": "hank@example.com", "age": 45, "city": "Prague", "active": false},
			{"name": "Iris Chen", "email": "iris@example.com", "age": 31, "city": "Berlin", "active": true},
			{"name": "Jack Black", "email": "jack@example.com", "age": 26, "city": "Oslo", "active": true},
			{"name": "Kim Novak", "email": "kim@example.com", "age": 39, "city": "Madrid", "active": false},
			{"name": "Leo Wong", "email": "leo@example.com", "age": 33, "city": "Vienna", "active": true},
		},
	}
}
