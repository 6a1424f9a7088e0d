package translate

// SymbolTable is the set of identifiers declared so far in a translation
// run. A fresh table is created for every run.
type SymbolTable struct {
	names map[string]struct{}
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		names: map[string]struct{}{},
	}
}

// Declare inserts name, reporting whether it was newly declared. Declaring
// the same name again is not an error and leaves the table unchanged.
func (t *SymbolTable) Declare(name string) bool {
	if _, ok := t.names[name]; ok {
		return false
	}
	t.names[name] = struct{}{}
	return true
}

func (t *SymbolTable) Declared(name string) bool {
	_, ok := t.names[name]
	return ok
}
