package component

// Health — компонент здоровья
type Health struct {
	Value float64
	Max   float64
}
