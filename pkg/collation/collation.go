// Package collation centraliza la comparación de nombres insensible a mayúsculas
// con collation español (strength 2: ignora mayúsculas y variantes de caso,
// conserva acentos como letras distintas).
package collation

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	mu  sync.Mutex
	col = collate.New(language.Spanish, collate.IgnoreCase)
)

// EqualFold reporta si a y b son el mismo nombre bajo la collation española
// ignorando mayúsculas. Un collate.Collator no es seguro para uso concurrente,
// por eso el mutex.
func EqualFold(a, b string) bool {
	mu.Lock()
	defer mu.Unlock()
	return col.CompareString(a, b) == 0
}
