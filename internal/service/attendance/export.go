package attendance

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mhdalhzau/memoor-sub001/internal/domain/attendance"
)

var exportHeaders = []string{
	"Tanggal", "Hari", "Jam Masuk", "Jam Keluar", "Shift", "Status",
	"Terlambat (menit)", "Datang Awal (menit)", "Lembur (menit)", "Catatan",
}

// ExportMonthText renders a reconciled month as a flat tab-delimited
// table for download. Pure formatting, no network or storage.
func ExportMonthText(records []attendance.DayRecord) string {
	var b strings.Builder
	b.WriteString(strings.Join(exportHeaders, "\t"))
	b.WriteByte('\n')
	for _, rec := range records {
		row := []string{
			rec.Date,
			rec.Day,
			rec.CheckIn,
			rec.CheckOut,
			rec.Shift,
			string(rec.Status),
			strconv.Itoa(rec.LatenessMinutes),
			strconv.Itoa(rec.EarlyArrivalMinutes),
			strconv.Itoa(rec.OvertimeMinutes),
			rec.Notes,
		}
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

// ExportMonthExcel renders the same table as an .xlsx workbook.
func ExportMonthExcel(employeeName string, year, month int, records []attendance.DayRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Absensi"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Rekap Absensi %s %04d-%02d", employeeName, year, month))

	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, fmt.Errorf("header cell position: %w", err)
		}
		f.SetCellValue(sheet, cell, header)
	}

	for rowIdx, rec := range records {
		values := []interface{}{
			rec.Date,
			rec.Day,
			rec.CheckIn,
			rec.CheckOut,
			rec.Shift,
			string(rec.Status),
			rec.LatenessMinutes,
			rec.EarlyArrivalMinutes,
			rec.OvertimeMinutes,
			rec.Notes,
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+3)
			if err != nil {
				return nil, fmt.Errorf("data cell position: %w", err)
			}
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
