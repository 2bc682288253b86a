package sqldb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertStatement(t *testing.T) {
	stmt, args, err := insertStatement("veiculos", Fields{
		"placa":  "ABC1D23",
		"modelo": "Volkswagen Gol",
		"ano":    2015,
	})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO veiculos (ano, modelo, placa) VALUES ($1, $2, $3) RETURNING id", stmt)
	assert.Equal(t, []any{2015, "Volkswagen Gol", "ABC1D23"}, args)
}

func TestInsertStatement_Empty(t *testing.T) {
	_, _, err := insertStatement("veiculos", Fields{})

	assert.ErrorIs(t, err, ErrEmptyFields)
}

func TestUpdateStatement(t *testing.T) {
	stmt, args, err := updateStatement("veiculos", 7, Fields{
		"placa":      "XYZ9K88",
		"disponivel": false,
	})
	require.NoError(t, err)

	assert.Equal(t, "UPDATE veiculos SET disponivel = $1, placa = $2 WHERE id = $3", stmt)
	assert.Equal(t, []any{false, "XYZ9K88", int64(7)}, args)
}

func TestUpdateStatement_Empty(t *testing.T) {
	_, _, err := updateStatement("veiculos", 7, nil)

	assert.ErrorIs(t, err, ErrEmptyFields)
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fail("SELECT * FROM veiculos", cause)

	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, serr.Error(), "storage failure")
	assert.Contains(t, serr.Error(), "connection refused")
}

func TestFail_NoRowsPassthrough(t *testing.T) {
	assert.ErrorIs(t, fail("SELECT 1", ErrNoRows), ErrNoRows)
	assert.NoError(t, fail("SELECT 1", nil))
}
