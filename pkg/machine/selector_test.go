package machine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
)

func TestParse(t *testing.T) {
	assert.Equal(t, machine.ByIndex(3), machine.Parse("3"))
	assert.Equal(t, machine.ByIndex(-1), machine.Parse("-1"))
	assert.Equal(t, machine.ByName("q3"), machine.Parse("q3"))
	assert.Equal(t, machine.ByName(""), machine.Parse(""))
}

func TestSelectorOf(t *testing.T) {
	m := newMachine(t)
	q0, err := m.AddState(false, true)
	require.NoError(t, err)

	for _, v := range []any{"q0", 0, q0, machine.ByName("q0")} {
		sel, err := machine.SelectorOf(v)
		require.NoError(t, err, "%T", v)

		got, err := m.GetState(sel)
		require.NoError(t, err, "%T", v)
		assert.Same(t, q0, got)
	}

	_, err = machine.SelectorOf(1.5)
	assert.ErrorIs(t, err, domain.ErrTypeMismatch)
}

func TestSelector_String(t *testing.T) {
	m := newMachine(t)
	q0, err := m.AddState(false, false)
	require.NoError(t, err)

	assert.Equal(t, `"q0"`, machine.ByName("q0").String())
	assert.Equal(t, "#2", machine.ByIndex(2).String())
	assert.Equal(t, "ref(q0)", machine.Ref(q0).String())
	assert.Equal(t, "ref(*machine.Machine)", machine.Ref(m).String())
	assert.Equal(t, "<none>", machine.Selector{}.String())
}

func TestSelector_ZeroValue(t *testing.T) {
	m := newMachine(t)
	_, err := m.AddState(false, false)
	require.NoError(t, err)

	_, err = m.GetState(machine.Selector{})
	assert.ErrorIs(t, err, domain.ErrTypeMismatch)
}
