package commands_test

import (
	"testing"

	"pedidofacil/internal/core/application/usecases/commands"
	"pedidofacil/internal/core/domain/model/kernel"
	"pedidofacil/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_ValidInput(t *testing.T) {
	lines := []commands.OrderLine{{Name: "Cadeira", Quantity: 1, Value: kernel.MustParseMoney("800.00")}}

	cmd, err := commands.NewUpdateOrderCommand(3, "Maria Santos", "OfficeMax", lines)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(3), cmd.OrderID())
	assert.Equal(t, "Maria Santos", cmd.Buyer())
	assert.Equal(t, "OfficeMax", cmd.Supplier())
	assert.Equal(t, lines, cmd.Lines())
}

func TestNewUpdateOrderCommand_CollectsAllErrors(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(0, "", "b", []commands.OrderLine{
		{Name: "x", Quantity: -2, Value: kernel.MustParseMoney("1.00")},
	})

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Contains(t, err.Error(), "nomeComprador")
	assert.Contains(t, err.Error(), "produtos[0].quantidadeComprada")
}

func TestNewUpdateOrderCommand_NonPositiveIDIsNotFound(t *testing.T) {
	lines := []commands.OrderLine{{Name: "Mouse Sem Fio", Quantity: 1, Value: kernel.MustParseMoney("50.00")}}

	for _, id := range []int64{0, -1, -3} {
		_, err := commands.NewUpdateOrderCommand(id, "João Silva", "TechStore Ltda", lines)
		require.ErrorIs(t, err, errs.ErrObjectNotFound, id)
		assert.False(t, errs.IsValidation(err))
	}
}

func TestUpdateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.UpdateOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderCommandIsNotConstructed)
}
