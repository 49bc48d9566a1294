package collation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/catalogo-api/pkg/collation"
)

func TestEqualFold(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Bebidas", "bebidas", true},
		{"BEBIDAS", "bebidas", true},
		{"Lácteos", "lácteos", true},
		{"Ñame", "ñame", true},
		{"Bebidas", "Bebida", false},
		{"", "", true},
		{"Café", "Cafe", false}, // la tilde distingue: solo se ignora la caja
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, collation.EqualFold(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
}

func TestEqualFold_Concurrente(t *testing.T) {
	// El collator se comparte tras un mutex; esto no debe fallar con -race.
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				collation.EqualFold("Gaseosas", "GASEOSAS")
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
