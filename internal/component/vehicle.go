// component/vehicle.go
package component

// Vehicle хранит характеристики машины игрока.
type Vehicle struct {
	Speed     float64 // Единиц за кадр
	Capacity  int     // Растёт с улучшениями, пока ни на что не влияет
	Resources int     // Накопленные ресурсы, никогда не бывают отрицательными
}
