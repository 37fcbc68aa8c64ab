package arith

type Input struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

type Result struct {
	Sum          float64 `json:"sum"`
	Difference   float64 `json:"difference"`
	Product      float64 `json:"product"`
	Quotient     float64 `json:"quotient"`
	DivideByZero bool    `json:"divide_by_zero"`
}

func Calculate(in Input) Result {
	res := Result{
		Sum:        in.A + in.B,
		Difference: in.A - in.B,
		Product:    in.A * in.B,
	}
	if in.B != 0 {
		res.Quotient = in.A / in.B
	} else {
		res.DivideByZero = true
	}
	return res
}
