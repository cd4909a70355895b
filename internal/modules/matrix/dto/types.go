package dto

type LoadInput struct {
	URI string
}

type MatrixOutput struct {
	Source   string      `json:"source"`
	Terms    []string    `json:"terms"`
	Rows     [][]float64 `json:"-"`
	NaNCells int         `json:"nan_cells"`
}
