package plan

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
mappings:
  - source: plan.OrderRequest
    target: "*plan.Order"
    ignore:
      - Customer
      - Discount
  - source: plan.Person
    target: plan.Named
`

	o, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, o.Version)
	require.Len(t, o.Mappings, 2)
	assert.Equal(t, []string{"Customer", "Discount"}, o.Mappings[0].Ignore)
	assert.Empty(t, o.Mappings[1].Ignore)

	m, ok := o.Lookup(reflect.TypeFor[OrderRequest](), reflect.TypeFor[*Order]())
	require.True(t, ok)
	assert.Equal(t, "*plan.Order", m.Target)

	_, ok = o.Lookup(reflect.TypeFor[OrderRequest](), reflect.TypeFor[Order]())
	assert.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{
			name: "missing target",
			yaml: "mappings:\n  - source: a.B\n",
			err:  ErrInvalidOverride,
		},
		{
			name: "duplicate pair",
			yaml: "mappings:\n  - {source: a.B, target: a.C}\n  - {source: a.B, target: a.C, ignore: [X]}\n",
			err:  ErrDuplicateOverride,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := Parse([]byte("mappings: [unterminated"))
	assert.Error(t, err)
}

func TestParse_Strict(t *testing.T) {
	_, err := Parse([]byte("mappings:\n  - source: a.B\n    target: a.C\n    ignores: [X]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ignores")

	_, err = Parse([]byte("version: \"2\"\nmappings: []\n"))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestParse_Empty(t *testing.T) {
	for _, data := range []string{"", "# nothing yet\n"} {
		o, err := Parse([]byte(data))
		require.NoError(t, err)
		assert.Equal(t, CurrentVersion, o.Version)
		assert.Empty(t, o.Mappings)
	}
}

func TestOverrides_LookupQualified(t *testing.T) {
	src, dst := reflect.TypeFor[OrderRequest](), reflect.TypeFor[*Order]()

	o := &Overrides{Mappings: []Override{
		{Source: "plan.OrderRequest", Target: "*plan.Order", Ignore: []string{"Customer"}},
		{Source: "automap/internal/plan.OrderRequest", Target: "*automap/internal/plan.Order", Ignore: []string{"ID"}},
	}}

	m, ok := o.Lookup(src, dst)
	require.True(t, ok)
	assert.Equal(t, []string{"ID"}, m.Ignore, "full import path wins over the short name")

	other := &Overrides{Mappings: []Override{
		{Source: "example.com/other/plan.OrderRequest", Target: "*example.com/other/plan.Order", Ignore: []string{"ID"}},
	}}

	_, ok = other.Lookup(src, dst)
	assert.False(t, ok, "same short name in another package does not match")
}

func TestOverrides_Apply(t *testing.T) {
	o := &Overrides{Mappings: []Override{{
		Source: "plan.OrderRequest",
		Target: "*plan.Order",
		Ignore: []string{"Customer"},
	}}}

	cfg := buildOrder(t)
	assert.True(t, o.Apply(cfg))
	assert.Equal(t, []string{"ID", "Discount"}, cfg.Copied())

	other := NewBuilder(nil).Build(reflect.TypeFor[Person](), reflect.TypeFor[Named]())
	assert.False(t, o.Apply(other))
	assert.Equal(t, []string{"Name"}, other.Copied())

	var none *Overrides
	assert.False(t, none.Apply(buildOrder(t)))
}

func TestExport_RoundTrip(t *testing.T) {
	built := buildOrder(t).Ignore("Customer")

	data, err := ExportYAML(built)
	require.NoError(t, err)
	assert.Contains(t, string(data), "source: plan.OrderRequest")

	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, Export(built).WriteFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	fresh := buildOrder(t)
	require.True(t, loaded.Apply(fresh))
	assert.Equal(t, built.Ignored(), fresh.Ignored())
	assert.Equal(t, built.Copied(), fresh.Copied())
}

func TestExport_SkipsNilAndMergesPairs(t *testing.T) {
	first := buildOrder(t).Ignore("Customer")
	second := buildOrder(t).Ignore("ID")

	o := Export(nil, first, nil, second)
	require.Len(t, o.Mappings, 1)
	assert.Equal(t, []string{"Customer", "Count", "Email", "ID"}, o.Mappings[0].Ignore)

	data, err := o.Encode()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, o.Mappings, parsed.Mappings)

	assert.Empty(t, Export(nil).Mappings)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
