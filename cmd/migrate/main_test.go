package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
)

func TestWriteSeedSQL(t *testing.T) {
	var buf bytes.Buffer
	writeSeedSQL(&buf, entity.SectionCatalog{{Name: "Horno", RequiredHours: 8}, {Name: "D'Cajas", RequiredHours: 16}})
	out := buf.String()
	assert.Contains(t, out, "('Horno', 8),\n")
	assert.Contains(t, out, "('D''Cajas', 16)\n")
	assert.Contains(t, out, "ON CONFLICT (name)")
}
