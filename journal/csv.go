package journal

import (
	"encoding/csv"
	"os"
	"strconv"
)

const dateLayout = "2006-01-02"

// CSV writes trades and valuations to two separate CSV files, header first,
// flushing after every record so a crashed session still leaves usable
// output.
type CSV struct {
	trades     *csv.Writer
	valuations *csv.Writer
	tf, vf     *os.File
}

func NewCSV(tradesPath, valuationsPath string) (*CSV, error) {
	tf, err := os.Create(tradesPath)
	if err != nil {
		return nil, err
	}
	vf, err := os.Create(valuationsPath)
	if err != nil {
		tf.Close()
		return nil, err
	}

	tw := csv.NewWriter(tf)
	vw := csv.NewWriter(vf)

	if err := tw.Write([]string{"id", "symbol", "side", "quantity", "price", "total", "date"}); err != nil {
		return nil, err
	}
	if err := vw.Write([]string{"date", "cash", "positions", "total_value"}); err != nil {
		return nil, err
	}

	tw.Flush()
	if err := tw.Error(); err != nil {
		return nil, err
	}
	vw.Flush()
	if err := vw.Error(); err != nil {
		return nil, err
	}

	return &CSV{trades: tw, valuations: vw, tf: tf, vf: vf}, nil
}

func (j *CSV) RecordTrade(t TradeRecord) error {
	err := j.trades.Write([]string{
		t.ID,
		t.Symbol,
		t.Side,
		strconv.Itoa(t.Quantity),
		f(t.Price),
		f(t.Total),
		t.Date.Format(dateLayout),
	})
	if err != nil {
		return err
	}

	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSV) RecordValuation(v ValuationSnapshot) error {
	err := j.valuations.Write([]string{
		v.Date.Format(dateLayout),
		f(v.Cash),
		strconv.Itoa(v.Positions),
		f(v.TotalValue),
	})
	if err != nil {
		return err
	}

	j.valuations.Flush()
	return j.valuations.Error()
}

func (j *CSV) Close() error {
	j.trades.Flush()
	if err := j.trades.Error(); err != nil {
		return err
	}
	j.valuations.Flush()
	if err := j.valuations.Error(); err != nil {
		return err
	}

	if err := j.tf.Close(); err != nil {
		return err
	}
	return j.vf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
