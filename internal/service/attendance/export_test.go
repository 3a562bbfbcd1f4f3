package attendance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mhdalhzau/memoor-sub001/internal/domain/attendance"
)

func exportFixture() []attendance.DayRecord {
	return []attendance.DayRecord{
		{
			Date:            "2025-01-01",
			Day:             "Rabu",
			CheckIn:         "07:10",
			CheckOut:        "15:20",
			Shift:           "pagi",
			Status:          attendance.StatusPresent,
			LatenessMinutes: 10,
			OvertimeMinutes: 20,
			Notes:           "shift pagi",
		},
		{
			Date:   "2025-01-02",
			Day:    "Kamis",
			Status: attendance.StatusLeave,
			Notes:  "cuti tahunan",
		},
	}
}

func TestExportMonthText(t *testing.T) {
	out := ExportMonthText(exportFixture())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, strings.Join(exportHeaders, "\t"), lines[0])
	assert.Equal(t, "2025-01-01\tRabu\t07:10\t15:20\tpagi\thadir\t10\t0\t20\tshift pagi", lines[1])
	assert.Equal(t, "2025-01-02\tKamis\t\t\t\tcuti\t0\t0\t0\tcuti tahunan", lines[2])
}

func TestExportMonthExcel(t *testing.T) {
	data, err := ExportMonthExcel("Budi Santoso", 2025, 1, exportFixture())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(strings.NewReader(string(data)))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Absensi", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Rekap Absensi Budi Santoso 2025-01", title)

	header, err := f.GetCellValue("Absensi", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Tanggal", header)

	checkIn, err := f.GetCellValue("Absensi", "C3")
	require.NoError(t, err)
	assert.Equal(t, "07:10", checkIn)

	status, err := f.GetCellValue("Absensi", "F4")
	require.NoError(t, err)
	assert.Equal(t, "cuti", status)
}
