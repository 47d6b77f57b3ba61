package chart

// Kind вид диаграммы
type Kind string

const (
	KindLine Kind = "line"
	KindBar  Kind = "bar"
	KindPie  Kind = "pie"
)

// Point точка серии: подпись и значение
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series именованная серия для отрисовки на фронте
type Series struct {
	Name   string  `json:"name"`
	Kind   Kind    `json:"kind"`
	Points []Point `json:"points"`
}

// New собирает серию из параллельных слайсов подписей и значений.
// Лишние элементы более длинного слайса отбрасываются.
func New(name string, kind Kind, labels []string, values []float64) Series {
	n := len(labels)
	if len(values) < n {
		n = len(values)
	}
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = Point{Label: labels[i], Value: values[i]}
	}
	return Series{Name: name, Kind: kind, Points: points}
}

// Total сумма значений серии
func (s Series) Total() float64 {
	var total float64
	for _, p := range s.Points {
		total += p.Value
	}
	return total
}
