package shellio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"npmcore-go/errcode"
)

func TestCheckSkipsCommandToken(t *testing.T) {
	vals, err := Check([]string{"set", "3", "250"},
		Arg{Kind: Index, Name: "buck"},
		Arg{Kind: Uint, Name: "voltage"},
	)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), vals.Index("buck"))
	assert.Equal(t, uint64(250), vals.Uint("voltage"))
}

func TestCheckExtraTokensIgnored(t *testing.T) {
	vals, err := Check([]string{"set", "1", "trailing", "garbage"},
		Arg{Kind: Index, Name: "buck"},
	)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), vals.Index("buck"))
}

func TestCheckMissingArgumentsCombined(t *testing.T) {
	_, err := Check([]string{"set"},
		Arg{Kind: Uint, Name: "voltage"},
		Arg{Kind: Index, Name: "buck"},
	)
	require.Error(t, err)
	assert.Equal(t, "missing voltage value and buck instance index", err.Error())
	assert.Equal(t, errcode.Validation, errcode.Of(err))
}

func TestCheckMissingThreeArguments(t *testing.T) {
	_, err := Check([]string{"set"},
		Arg{Kind: Uint, Name: "mode"},
		Arg{Kind: Bool, Name: "state"},
		Arg{Kind: Index, Name: "pin"},
	)
	require.Error(t, err)
	assert.Equal(t, "missing mode value, state value and pin instance index", err.Error())
}

func TestCheckPartiallyMissing(t *testing.T) {
	_, err := Check([]string{"set", "4200"},
		Arg{Kind: Uint, Name: "voltage"},
		Arg{Kind: Index, Name: "buck"},
	)
	require.Error(t, err)
	assert.Equal(t, "missing buck instance index", err.Error())
}

func TestCheckIntParsing(t *testing.T) {
	vals, err := Check([]string{"set", "-20"}, Arg{Kind: Int, Name: "temperature"})
	require.NoError(t, err)
	assert.Equal(t, int64(-20), vals.Int("temperature"))

	// Base-0 parsing takes hex and octal forms.
	vals, err = Check([]string{"set", "0x1F"}, Arg{Kind: Uint, Name: "mask"})
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1F), vals.Uint("mask"))

	_, err = Check([]string{"set", "abc"}, Arg{Kind: Int, Name: "temperature"})
	require.Error(t, err)
	assert.Equal(t, "temperature has to be an integer", err.Error())

	_, err = Check([]string{"set", "-5"}, Arg{Kind: Uint, Name: "voltage"})
	require.Error(t, err)
	assert.Equal(t, "voltage has to be a non-negative integer", err.Error())
}

func TestCheckBoolTokens(t *testing.T) {
	truthy := []string{"on", "enable", "true", "1"}
	falsy := []string{"off", "disable", "false", "0"}

	for _, tok := range truthy {
		vals, err := Check([]string{"set", tok}, Arg{Kind: Bool, Name: "state"})
		require.NoError(t, err, "token %q", tok)
		assert.True(t, vals.Bool("state"), "token %q", tok)
	}
	for _, tok := range falsy {
		vals, err := Check([]string{"set", tok}, Arg{Kind: Bool, Name: "state"})
		require.NoError(t, err, "token %q", tok)
		assert.False(t, vals.Bool("state"), "token %q", tok)
	}

	// No loose forms: capitals, t/f shorthands and integers above 1 are out.
	for _, tok := range []string{"On", "t", "yes", "2", "ON"} {
		_, err := Check([]string{"set", tok}, Arg{Kind: Bool, Name: "state"})
		require.Error(t, err, "token %q", tok)
		assert.Equal(t, "invalid state value", err.Error())
	}
}

func TestValuesWrongNamePanics(t *testing.T) {
	vals, err := Check([]string{"set", "1"}, Arg{Kind: Index, Name: "buck"})
	require.NoError(t, err)

	assert.Panics(t, func() { vals.Uint("buck") })  // declared as Index
	assert.Panics(t, func() { vals.Index("boost") }) // undeclared name
}

func TestRangeCheck(t *testing.T) {
	assert.NoError(t, RangeCheck(0, -20, 60, "temperature"))
	assert.NoError(t, RangeCheck(-20, -20, 60, "temperature"))
	assert.NoError(t, RangeCheck(60, -20, 60, "temperature"))

	err := RangeCheck(61, -20, 60, "temperature")
	require.Error(t, err)
	assert.Equal(t, "temperature value out of range", err.Error())
}

func TestIndexCheck(t *testing.T) {
	assert.NoError(t, IndexCheck(1, 2, "buck"))

	err := IndexCheck(2, 2, "buck")
	require.Error(t, err)
	assert.Equal(t, "buck instance index is too high: no such instance", err.Error())
	assert.Equal(t, errcode.Validation, errcode.Of(err))
}
