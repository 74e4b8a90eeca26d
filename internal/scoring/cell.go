package scoring

import (
	"fmt"
	"math"
)

// AreaCellKey возвращает детерминированный идентификатор ячейки ~0.01°
// (около 1 км на средних широтах) для агрегата по району.
// Ключ — чистая функция от (город, координаты).
func AreaCellKey(city string, lat, lng float64) string {
	return fmt.Sprintf("%s_%d_%d", city, int(math.Floor(lat*100)), int(math.Floor(lng*100)))
}

// HotspotCellKey возвращает идентификатор более грубой ячейки ~0.02°
// (около 2 км), используемой при кластеризации горячих точек.
func HotspotCellKey(lat, lng float64) string {
	return fmt.Sprintf("%d_%d", int(math.Floor(lat*50)), int(math.Floor(lng*50)))
}
