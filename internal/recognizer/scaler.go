package recognizer

import "gonum.org/v1/gonum/stat"

// scaler standardizes each column to zero mean and unit variance, with the
// train-time transform replayed at predict time.
type scaler struct {
	means []float64
	stds  []float64
}

func fitScaler(matrix [][]float64) *scaler {
	if len(matrix) == 0 {
		return &scaler{}
	}
	width := len(matrix[0])
	sc := &scaler{
		means: make([]float64, width),
		stds:  make([]float64, width),
	}
	column := make([]float64, len(matrix))
	for j := 0; j < width; j++ {
		for i, row := range matrix {
			column[i] = row[j]
		}
		mean, std := stat.MeanStdDev(column, nil)
		if std == 0 || len(matrix) < 2 {
			std = 1 // constant column: leave values centered, not divided by zero
		}
		sc.means[j] = mean
		sc.stds[j] = std
	}
	return sc
}

func (s *scaler) transform(matrix [][]float64) [][]float64 {
	out := make([][]float64, len(matrix))
	for i, row := range matrix {
		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = (v - s.means[j]) / s.stds[j]
		}
		out[i] = scaled
	}
	return out
}
