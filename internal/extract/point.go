package extract

import (
	"encoding/json"

	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/grasshopper"
	"github.com/lzylstra0325/AMEJoistConverterJSON/internal/model"
)

var zero = json.Number("0")

// Normalize converts a point to the lowercase output form. Absent axes become 0;
// values are otherwise copied unchanged.
func Normalize(p model.Point3) grasshopper.Point {
	return grasshopper.Point{
		X: orZero(p.X),
		Y: orZero(p.Y),
		Z: orZero(p.Z),
	}
}

func orZero(n json.Number) json.Number {
	if n == "" {
		return zero
	}
	return n
}
