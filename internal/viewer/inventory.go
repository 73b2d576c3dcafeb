package viewer

type Inventory struct {
	OwnerID string
	Rings   int64
	Items   map[string]int64
}
