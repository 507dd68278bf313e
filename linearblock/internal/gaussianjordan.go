package internal

import (
	"context"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/sirupsen/logrus"
)

func denseRows(checkToBits [][]int, bits int) [][]uint8 {
	rows := make([][]uint8, len(checkToBits))
	for i, row := range checkToBits {
		rows[i] = make([]uint8, bits)
		for _, j := range row {
			rows[i][j] = 1
		}
	}
	return rows
}

func findPivot(rows [][]uint8, r int) (row, col int) {
	bits := len(rows[r])
	for c := r; c < bits; c++ {
		for p := r; p < len(rows); p++ {
			if rows[p][c] == 1 {
				return p, c
			}
		}
	}
	return -1, -1
}

func swapColumns(rows [][]uint8, columnOrder []int, i, j int) {
	if i == j {
		return
	}
	for _, row := range rows {
		row[i], row[j] = row[j], row[i]
	}
	columnOrder[i], columnOrder[j] = columnOrder[j], columnOrder[i]
}

func eliminateOtherRows(rows [][]uint8, r int) {
	pivotRow := rows[r]
	for q, row := range rows {
		if q == r || row[r] == 0 {
			continue
		}
		// in GF2 subtract is add
		for c, v := range pivotRow {
			row[c] ^= v
		}
	}
}

//GaussianJordanEliminationGF2 reduces H (given as its check neighbor lists) to the form [I, A]
// swapping columns when no pivot is available in place. It returns only the rank
// independent rows, the column order (reduced column c came from H column columnOrder[c])
// and the rank of H. Dependent rows are dropped, they are zero after elimination.
func GaussianJordanEliminationGF2(ctx context.Context, checkToBits [][]int, bits int, showProgressBar bool) (reduced [][]uint8, columnOrder []int, rank int, err error) {
	rows := denseRows(checkToBits, bits)
	columnOrder = make([]int, bits)
	for c := range columnOrder {
		columnOrder[c] = c
	}

	bar := pb.Full.New(len(rows))
	bar.Set("prefix", "Processing Row ")
	bar.SetWriter(os.Stdout)
	if showProgressBar {
		bar.Start()
	}

	r := 0
	for ; r < len(rows) && r < bits; r++ {
		select {
		case <-ctx.Done():
			return nil, nil, 0, ctx.Err()
		default:
		}
		bar.Increment()

		p, c := findPivot(rows, r)
		if p == -1 {
			//every remaining row is zero
			break
		}
		swapColumns(rows, columnOrder, r, c)
		rows[r], rows[p] = rows[p], rows[r]

		eliminateOtherRows(rows, r)
	}

	if showProgressBar {
		bar.SetTemplateString(`{{string . "prefix"}}{{counters . }}{{string . "suffix"}}`)
		bar.Set("suffix", " Done")
		bar.Finish()
	}

	logrus.Debugf("Gaussian-Jordan Elimination complete, rank %v of %v rows", r, len(rows))
	return rows[:r], columnOrder, r, nil
}

//CalculateRank returns the GF2 rank of H given its check neighbor lists.
func CalculateRank(ctx context.Context, checkToBits [][]int, bits int) (int, error) {
	_, _, rank, err := GaussianJordanEliminationGF2(ctx, checkToBits, bits, false)
	return rank, err
}
