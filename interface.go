package isoterra

// Generator is anything capable of producing a terrain Grid.
// Generation is pure numeric computation over validated configuration;
// it cannot fail.
type Generator interface {
	// Generate builds & returns a new Grid
	Generate() *Grid
}
