package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	assert.Equal(t, []string{"pagi", "siang", "malam"}, reg.Names())

	pagi, ok := reg.Lookup("pagi")
	require.True(t, ok)
	assert.Equal(t, "07:00", pagi.Start)
	assert.Equal(t, "15:00", pagi.End)
	assert.False(t, pagi.IsOvernight())

	malam, ok := reg.Lookup("malam")
	require.True(t, ok)
	assert.True(t, malam.IsOvernight())
}

func TestDefaultRegistryIsFreshPerCall(t *testing.T) {
	a := DefaultRegistry()
	a.Add(Definition{Name: "subuh", Start: "04:00", End: "07:00"})

	b := DefaultRegistry()
	_, ok := b.Lookup("subuh")
	assert.False(t, ok, "mutating one default registry must not leak into another")
}

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"Pagi":        "pagi",
		"  Shift  A ": "shift_a",
		"MALAM":       "malam",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeName(in))
	}
}

func TestRegistryAdd_DuplicateLastWins(t *testing.T) {
	reg := NewRegistry()
	reg.Add(Definition{Name: "pagi", Start: "07:00", End: "15:00"})
	reg.Add(Definition{Name: "siang", Start: "15:00", End: "23:00"})
	reg.Add(Definition{Name: "Pagi", Start: "08:00", End: "16:00"})

	assert.Equal(t, []string{"pagi", "siang"}, reg.Names(), "duplicate keeps original position")
	pagi, ok := reg.Lookup("pagi")
	require.True(t, ok)
	assert.Equal(t, "08:00", pagi.Start, "last written definition wins")
}

func TestRegistryLookupMiss(t *testing.T) {
	reg := DefaultRegistry()
	_, ok := reg.Lookup("sore")
	assert.False(t, ok)
}

func TestResolve_FallsBackToDefault(t *testing.T) {
	for _, cfg := range []string{
		"",
		"   ",
		"not json",
		`{"name":"pagi"}`, // not a list
		"[]",
		`[{"name":"","start":"07:00","end":"15:00"}]`,
		`[{"name":"pagi","start":"7am","end":"15:00"}]`,
	} {
		reg := Resolve(cfg)
		assert.Equal(t, []string{"pagi", "siang", "malam"}, reg.Names(), "config %q", cfg)
	}
}

func TestResolve_CustomConfiguration(t *testing.T) {
	cfg := `[
		{"name":"Shift Pagi","start":"06:30","end":"14:30"},
		{"name":"Shift Sore","start":"14:30","end":"22:30"},
		{"name":"shift pagi","start":"06:00","end":"14:00"}
	]`
	reg := Resolve(cfg)
	assert.Equal(t, []string{"shift_pagi", "shift_sore"}, reg.Names())

	pagi, ok := reg.Lookup("shift_pagi")
	require.True(t, ok)
	assert.Equal(t, "06:00", pagi.Start, "last duplicate wins")
}

func TestResolve_SkipsBadEntriesKeepsGoodOnes(t *testing.T) {
	cfg := `[
		{"name":"pagi","start":"07:00","end":"15:00"},
		{"name":"rusak","start":"99:99","end":"15:00"}
	]`
	reg := Resolve(cfg)
	assert.Equal(t, []string{"pagi"}, reg.Names())
}
