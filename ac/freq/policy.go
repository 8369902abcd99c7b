package freq

// A Policy adapts a table after each coded symbol.
//
// An encoder and a decoder stay in step only if they start from equal tables
// and run equivalent policies, each with its own state.
type Policy interface {
	Adapt(t *Table, sym byte)
}

// PolicyFunc adapts a function to the Policy interface.
type PolicyFunc func(t *Table, sym byte)

// Adapt calls f.
func (f PolicyFunc) Adapt(t *Table, sym byte) {
	f(t, sym)
}

// Static never changes the table.
var Static Policy = PolicyFunc(func(*Table, byte) {})

// Increment adds Amount to the frequency of every coded symbol.
// Once the table is saturated it is left frozen.
type Increment struct {
	Amount uint32
}

// Adapt implements Policy.
func (p Increment) Adapt(t *Table, sym byte) {
	// A saturated table stays saturated, so failures are final and harmless.
	_ = t.Add(sym, p.Amount)
}
