package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/dsl"
	"github.com/aretw0/turing/pkg/machine"
)

func TestValidate_CleanMachine(t *testing.T) {
	b := dsl.New("01")
	b.State("scan").Initial().
		Loop("0", "0", domain.Right).
		Loop("1", "1", domain.Right).
		On("", "", domain.Left, "done")
	b.State("done").Final()

	m, err := b.Build()
	require.NoError(t, err)
	assert.NoError(t, validator.Validate(m))
}

func TestValidate_Problems(t *testing.T) {
	m, err := machine.New(machine.Symbols("ab"))
	require.NoError(t, err)

	q0, err := m.AddState(false, true)
	require.NoError(t, err)
	q1, err := m.AddState(true, false)
	require.NoError(t, err)
	q2, err := m.AddState(false, false)
	require.NoError(t, err)

	_, err = m.AddTransition(machine.Ref(q0), machine.Ref(q1), "a", "a", domain.Right)
	require.NoError(t, err)
	_, err = m.AddTransition(machine.Ref(q0), machine.Ref(q0), "a", "b", domain.Stay)
	require.NoError(t, err)
	_, err = m.AddTransition(machine.Ref(q2), machine.Ref(q1), "b", "b", domain.Left)
	require.NoError(t, err)
	_, err = m.DeleteState(machine.Ref(q1))
	require.NoError(t, err)

	err = validator.Validate(m)
	var vErr *validator.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{
		"transition t0 enters deleted state q1",
		"transition t2 enters deleted state q1",
		"state q2 is unreachable from q0",
		`state q0 reads "a" in both t0 and t1`,
	}, vErr.Problems)
	assert.Contains(t, err.Error(), "found 4 problems")
}

func TestValidate_NoInitialState(t *testing.T) {
	m, err := machine.New(machine.Symbols("a"))
	require.NoError(t, err)
	_, err = m.AddState(false, false)
	require.NoError(t, err)

	var vErr *validator.Error
	require.ErrorAs(t, validator.Validate(m), &vErr)
	assert.Equal(t, []string{"machine has no initial state"}, vErr.Problems)
}
