// component/mineral.go
package component

// Mineral is a collectible pickup worth Value resources.
type Mineral struct {
	Value int
}
