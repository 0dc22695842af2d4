package sim

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteLedgerCSV(path string, rows []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"time",
		"best_bid",
		"best_ask",
		"mid_price",
		"human_bid",
		"action",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		humanBid := ""
		if r.HumanBid != nil {
			humanBid = fmtFloat(*r.HumanBid)
		}
		row := []string{
			strconv.Itoa(r.Index),
			fmtFloat(r.Time),
			fmtFloat(r.BestBid),
			fmtFloat(r.BestAsk),
			fmtFloat(r.MidPrice),
			humanBid,
			string(r.Action),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
