package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Asignaciones-api/internal/domain"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want domain.Kind
	}{
		{domain.Validation("x"), domain.KindValidation},
		{domain.NotFound("x"), domain.KindNotFound},
		{domain.Conflict("x"), domain.KindConflict},
		{fmt.Errorf("cascade: %w", domain.NotFound("x")), domain.KindNotFound},
		{domain.ErrDuplicate, domain.KindConflict},
		{domain.ErrInvalidInput, domain.KindValidation},
		{errors.New("connection reset"), domain.KindInternal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.KindOf(tc.err), tc.err.Error())
	}
}

func TestError_IsSentinel(t *testing.T) {
	err := domain.Conflict("las horas asignadas (%d) no pueden superar las horas disponibles del trabajador (%d)", 10, 8)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "10")
	assert.Contains(t, err.Error(), "8")
	assert.Equal(t, "CONFLICT", domain.KindOf(err).String())
}
